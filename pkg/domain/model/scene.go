// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultRootCollectionName はシーン既定のルートコレクション名を表す。
const DefaultRootCollectionName = "Scene Collection"

// Collection はオブジェクトの所属グループを表す。
type Collection struct {
	Name    string
	Objects []ObjectHandle
}

// contains は所属判定を行う。
func (c *Collection) contains(handle ObjectHandle) bool {
	for _, member := range c.Objects {
		if member == handle {
			return true
		}
	}
	return false
}

// Scene はシーングラフ全体を表す。
// Selection は選択された時系列順のハンドル列を保持する。
type Scene struct {
	Name           string
	Objects        map[ObjectHandle]*SceneObject
	Order          []ObjectHandle
	Collections    []*Collection
	NodeGroups     []*NodeGroup
	Payloads       *PayloadRegistry
	Selection      []ObjectHandle
	Active         ObjectHandle
	RootCollection string
}

// NewScene はルートコレクション付きの空シーンを生成する。
func NewScene(name string) *Scene {
	scene := &Scene{
		Name:           name,
		Objects:        map[ObjectHandle]*SceneObject{},
		Payloads:       NewPayloadRegistry(),
		RootCollection: DefaultRootCollectionName,
	}
	scene.EnsureCollection(DefaultRootCollectionName)
	return scene
}

// CreateObject は新規オブジェクトを生成して登録する。
// ペイロード指定時は参照カウントを1増やす。コレクションへは所属させない。
func (s *Scene) CreateObject(name string, payload PayloadID) (*SceneObject, error) {
	if payload != "" {
		if err := s.Payloads.Acquire(payload); err != nil {
			return nil, fmt.Errorf("オブジェクト生成に失敗しました: %w", err)
		}
	}
	object := &SceneObject{
		Handle:    ObjectHandle(uuid.NewString()),
		Name:      s.uniqueName(name),
		Transform: NewTransform(),
		Visible:   true,
		Payload:   payload,
	}
	s.Objects[object.Handle] = object
	s.Order = append(s.Order, object.Handle)
	return object, nil
}

// Object はハンドルに対応するオブジェクトを返す。
func (s *Scene) Object(handle ObjectHandle) (*SceneObject, error) {
	object, ok := s.Objects[handle]
	if !ok {
		return nil, fmt.Errorf("オブジェクトが見つかりません: %s", handle)
	}
	return object, nil
}

// ObjectByName は名前に対応するオブジェクトを返す。
func (s *Scene) ObjectByName(name string) (*SceneObject, error) {
	for _, handle := range s.Order {
		if object := s.Objects[handle]; object != nil && object.Name == name {
			return object, nil
		}
	}
	return nil, fmt.Errorf("オブジェクトが見つかりません: %s", name)
}

// ObjectsInOrder は登録順のオブジェクト列を返す。
func (s *Scene) ObjectsInOrder() []*SceneObject {
	objects := make([]*SceneObject, 0, len(s.Order))
	for _, handle := range s.Order {
		if object, ok := s.Objects[handle]; ok {
			objects = append(objects, object)
		}
	}
	return objects
}

// RemoveObject はオブジェクトをシーンから取り除き、ペイロード参照を解放する。
// ペイロードが破棄された場合は true を返す。
func (s *Scene) RemoveObject(handle ObjectHandle) (bool, error) {
	object, err := s.Object(handle)
	if err != nil {
		return false, err
	}
	s.UnlinkFromAllCollections(handle)
	s.Deselect(handle)
	if s.Active == handle {
		s.Active = ""
	}
	for i, ordered := range s.Order {
		if ordered == handle {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			break
		}
	}
	delete(s.Objects, handle)
	if object.Payload == "" {
		return false, nil
	}
	removed, err := s.Payloads.Release(object.Payload)
	if err != nil {
		return false, fmt.Errorf("ペイロード解放に失敗しました: %w", err)
	}
	return removed, nil
}

// Collection は名前に対応するコレクションを返す。
func (s *Scene) Collection(name string) (*Collection, error) {
	for _, collection := range s.Collections {
		if collection.Name == name {
			return collection, nil
		}
	}
	return nil, fmt.Errorf("コレクションが見つかりません: %s", name)
}

// EnsureCollection は名前に対応するコレクションを返し、無ければ生成する。
func (s *Scene) EnsureCollection(name string) *Collection {
	if collection, err := s.Collection(name); err == nil {
		return collection
	}
	collection := &Collection{Name: name}
	s.Collections = append(s.Collections, collection)
	return collection
}

// LinkToCollection はオブジェクトをコレクションへ所属させる。
func (s *Scene) LinkToCollection(name string, handle ObjectHandle) error {
	if _, err := s.Object(handle); err != nil {
		return err
	}
	collection := s.EnsureCollection(name)
	if collection.contains(handle) {
		return nil
	}
	collection.Objects = append(collection.Objects, handle)
	return nil
}

// UnlinkFromAllCollections はオブジェクトを全コレクションから外す。
func (s *Scene) UnlinkFromAllCollections(handle ObjectHandle) {
	for _, collection := range s.Collections {
		for i, member := range collection.Objects {
			if member == handle {
				collection.Objects = append(collection.Objects[:i], collection.Objects[i+1:]...)
				break
			}
		}
	}
}

// CollectionsOf はオブジェクトが所属するコレクション名列を返す。
func (s *Scene) CollectionsOf(handle ObjectHandle) []string {
	names := []string{}
	for _, collection := range s.Collections {
		if collection.contains(handle) {
			names = append(names, collection.Name)
		}
	}
	return names
}

// Select はオブジェクトを選択状態にし、選択順の末尾へ加える。
func (s *Scene) Select(handle ObjectHandle) error {
	object, err := s.Object(handle)
	if err != nil {
		return err
	}
	if !object.Selected {
		object.Selected = true
		s.Selection = append(s.Selection, handle)
		return nil
	}
	for _, selected := range s.Selection {
		if selected == handle {
			return nil
		}
	}
	s.Selection = append(s.Selection, handle)
	return nil
}

// Deselect はオブジェクトの選択を解除する。
func (s *Scene) Deselect(handle ObjectHandle) {
	if object, ok := s.Objects[handle]; ok {
		object.Selected = false
	}
	for i, selected := range s.Selection {
		if selected == handle {
			s.Selection = append(s.Selection[:i], s.Selection[i+1:]...)
			break
		}
	}
}

// ClearSelection は全オブジェクトの選択を解除する。アクティブは変更しない。
func (s *Scene) ClearSelection() {
	for _, object := range s.Objects {
		object.Selected = false
	}
	s.Selection = nil
}

// SetActive はアクティブオブジェクトを設定する。
func (s *Scene) SetActive(handle ObjectHandle) error {
	if _, err := s.Object(handle); err != nil {
		return err
	}
	s.Active = handle
	return nil
}

// SelectedObjects は選択された時系列順のオブジェクト列を返す。
func (s *Scene) SelectedObjects() []*SceneObject {
	objects := make([]*SceneObject, 0, len(s.Selection))
	for _, handle := range s.Selection {
		if object, ok := s.Objects[handle]; ok && object.Selected {
			objects = append(objects, object)
		}
	}
	return objects
}

// CountReferences は指定オブジェクトを参照しているフィールド数を数える。
// サイト登録簿とは独立に全フィールドを走査し、列挙漏れ検出に使う。
func (s *Scene) CountReferences(handle ObjectHandle) int {
	count := 0
	for _, object := range s.ObjectsInOrder() {
		if object.Handle == handle {
			continue
		}
		if object.Parent != nil && object.Parent.Parent == handle {
			count++
		}
		for _, constraint := range object.Constraints {
			if constraint.Target == handle {
				count++
			}
		}
		for _, modifier := range object.Modifiers {
			for _, input := range modifier.Inputs {
				if input.Object == handle {
					count++
				}
			}
		}
	}
	for _, group := range s.NodeGroups {
		for _, node := range group.Nodes {
			for _, socket := range node.Sockets {
				if socket.Object == handle {
					count++
				}
			}
		}
	}
	return count
}

// uniqueName は既存名と衝突しない名前を返す。衝突時は連番を付与する。
func (s *Scene) uniqueName(base string) string {
	if base == "" {
		base = "Object"
	}
	if !s.nameExists(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", base, i)
		if !s.nameExists(candidate) {
			return candidate
		}
	}
}

// nameExists は名前の使用有無を返す。
func (s *Scene) nameExists(name string) bool {
	for _, object := range s.Objects {
		if object.Name == name {
			return true
		}
	}
	return false
}
