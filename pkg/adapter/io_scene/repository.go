// 指示: miu200521358
package io_scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/port/routput"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// LoadProgressEventType はシーン読込進捗イベント種別を表す。
type LoadProgressEventType string

const (
	// LoadProgressEventTypeFileReadComplete はファイル読込完了イベントを表す。
	LoadProgressEventTypeFileReadComplete LoadProgressEventType = "file_read_complete"
	// LoadProgressEventTypeDocumentParsed はドキュメント解析完了イベントを表す。
	LoadProgressEventTypeDocumentParsed LoadProgressEventType = "document_parsed"
	// LoadProgressEventTypeCompleted はシーン読込完了イベントを表す。
	LoadProgressEventTypeCompleted LoadProgressEventType = "completed"
)

// LoadProgressEvent はシーン読込進捗イベントを表す。
type LoadProgressEvent struct {
	Type          LoadProgressEventType
	FileSizeBytes int
	ObjectCount   int
	PayloadCount  int
}

// SceneRepository はシーンドキュメントの入出力を表す。
// 拡張子に応じてJSONとYAMLの両形式を扱う。
type SceneRepository struct {
	loadProgressReporter func(LoadProgressEvent)
}

// NewSceneRepository はSceneRepositoryを生成する。
func NewSceneRepository() *SceneRepository {
	return &SceneRepository{}
}

// SetLoadProgressReporter はシーン読込進捗受信コールバックを設定する。
func (r *SceneRepository) SetLoadProgressReporter(reporter func(LoadProgressEvent)) {
	if r == nil {
		return
	}
	r.loadProgressReporter = reporter
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SceneRepository) CanLoad(path string) bool {
	return supportedExtension(path)
}

// CanSave は拡張子に応じて書き込み可否を判定する。
func (r *SceneRepository) CanSave(path string) bool {
	return supportedExtension(path)
}

// supportedExtension は対応拡張子かを判定する。
func supportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// InferName はパスから表示名を推定する。
func (r *SceneRepository) InferName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load はシーンドキュメントを読み込み、ドメインモデルへ変換する。
func (r *SceneRepository) Load(path string) (*model.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("シーンファイルの読み込みに失敗しました: %w", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeFileReadComplete,
		FileSizeBytes: len(data),
	})

	document := &sceneDocument{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, document); err != nil {
			return nil, fmt.Errorf("JSONシーンの解析に失敗しました: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, document); err != nil {
			return nil, fmt.Errorf("YAMLシーンの解析に失敗しました: %w", err)
		}
	default:
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:         LoadProgressEventTypeDocumentParsed,
		ObjectCount:  len(document.Objects),
		PayloadCount: len(document.Payloads),
	})

	sceneData, err := document.toDomain(r.InferName(path))
	if err != nil {
		return nil, err
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:         LoadProgressEventTypeCompleted,
		ObjectCount:  len(sceneData.Order),
		PayloadCount: sceneData.Payloads.Len(),
	})
	return sceneData, nil
}

// Save はドメインモデルをシーンドキュメントへ変換して保存する。
func (r *SceneRepository) Save(path string, sceneData *model.Scene, options routput.SaveOptions) error {
	if sceneData == nil {
		return fmt.Errorf("保存対象シーンが未設定です")
	}
	document, err := fromDomain(sceneData)
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if options.Indent {
			data, err = json.MarshalIndent(document, "", "  ")
		} else {
			data, err = json.Marshal(document)
		}
		if err != nil {
			return fmt.Errorf("JSONシーンの生成に失敗しました: %w", err)
		}
	case ".yaml", ".yml":
		data, err = yaml.Marshal(document)
		if err != nil {
			return fmt.Errorf("YAMLシーンの生成に失敗しました: %w", err)
		}
	default:
		return fmt.Errorf("出力形式が未対応です: %s", path)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("シーンファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}

// reportLoadProgress はシーン読込進捗を通知する。
func (r *SceneRepository) reportLoadProgress(event LoadProgressEvent) {
	if r == nil || r.loadProgressReporter == nil {
		return
	}
	r.loadProgressReporter(event)
}

// sceneDocument はシーンファイルの永続化表現を表す。
// オブジェクト間の参照は名前で保持し、読込時にハンドルへ解決する。
type sceneDocument struct {
	Name           string               `json:"name,omitempty" yaml:"name,omitempty"`
	RootCollection string               `json:"root_collection,omitempty" yaml:"root_collection,omitempty"`
	Payloads       []payloadDocument    `json:"payloads" yaml:"payloads"`
	Objects        []objectDocument     `json:"objects" yaml:"objects"`
	Collections    []collectionDocument `json:"collections,omitempty" yaml:"collections,omitempty"`
	NodeGroups     []nodeGroupDocument  `json:"node_groups,omitempty" yaml:"node_groups,omitempty"`
	Selection      []string             `json:"selection,omitempty" yaml:"selection,omitempty"`
	Active         string               `json:"active,omitempty" yaml:"active,omitempty"`
}

// payloadDocument はペイロードの永続化表現を表す。
type payloadDocument struct {
	Name     string       `json:"name" yaml:"name"`
	Kind     string       `json:"kind" yaml:"kind"`
	Vertices [][3]float64 `json:"vertices,omitempty" yaml:"vertices,omitempty"`
}

// transformDocument は変換状態の永続化表現を表す。
type transformDocument struct {
	Location     [3]float64 `json:"location" yaml:"location"`
	RotationMode string     `json:"rotation_mode,omitempty" yaml:"rotation_mode,omitempty"`
	Quaternion   []float64  `json:"quaternion,omitempty" yaml:"quaternion,omitempty"`
	AxisAngle    []float64  `json:"axis_angle,omitempty" yaml:"axis_angle,omitempty"`
	Euler        []float64  `json:"euler,omitempty" yaml:"euler,omitempty"`
	Scale        []float64  `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// parentDocument は親参照の永続化表現を表す。
// Inverse は親子付け時点の逆行列を列優先順の16要素で保持する。単位行列は省略する。
type parentDocument struct {
	Object  string    `json:"object" yaml:"object"`
	Type    string    `json:"type,omitempty" yaml:"type,omitempty"`
	Bone    string    `json:"bone,omitempty" yaml:"bone,omitempty"`
	Inverse []float64 `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}

// constraintDocument はコンストレイントの永続化表現を表す。
type constraintDocument struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Kind      string `json:"kind" yaml:"kind"`
	Target    string `json:"target" yaml:"target"`
	Subtarget string `json:"subtarget,omitempty" yaml:"subtarget,omitempty"`
}

// modifierInputDocument はモディファイア入力の永続化表現を表す。
type modifierInputDocument struct {
	Socket string `json:"socket" yaml:"socket"`
	Object string `json:"object" yaml:"object"`
}

// modifierDocument はモディファイアの永続化表現を表す。
type modifierDocument struct {
	Name   string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Kind   string                  `json:"kind" yaml:"kind"`
	Inputs []modifierInputDocument `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// objectDocument はオブジェクトの永続化表現を表す。
type objectDocument struct {
	Name        string               `json:"name" yaml:"name"`
	Payload     string               `json:"payload,omitempty" yaml:"payload,omitempty"`
	Transform   transformDocument    `json:"transform" yaml:"transform"`
	Parent      *parentDocument      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Visible     *bool                `json:"visible,omitempty" yaml:"visible,omitempty"`
	DisplayType string               `json:"display_type,omitempty" yaml:"display_type,omitempty"`
	CastShadow  bool                 `json:"cast_shadow,omitempty" yaml:"cast_shadow,omitempty"`
	Properties  map[string]any       `json:"properties,omitempty" yaml:"properties,omitempty"`
	Constraints []constraintDocument `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Modifiers   []modifierDocument   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// collectionDocument はコレクションの永続化表現を表す。
type collectionDocument struct {
	Name    string   `json:"name" yaml:"name"`
	Objects []string `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// socketDocument はノード入力ソケットの永続化表現を表す。
type socketDocument struct {
	Name   string `json:"name" yaml:"name"`
	Object string `json:"object" yaml:"object"`
}

// nodeDocument はノードの永続化表現を表す。
type nodeDocument struct {
	Name    string           `json:"name" yaml:"name"`
	Kind    string           `json:"kind,omitempty" yaml:"kind,omitempty"`
	Sockets []socketDocument `json:"sockets,omitempty" yaml:"sockets,omitempty"`
}

// nodeGroupDocument はノードグラフの永続化表現を表す。
type nodeGroupDocument struct {
	Name  string         `json:"name" yaml:"name"`
	Nodes []nodeDocument `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// toDomain はドキュメントをドメインモデルへ変換する。
func (d *sceneDocument) toDomain(fallbackName string) (*model.Scene, error) {
	name := d.Name
	if strings.TrimSpace(name) == "" {
		name = fallbackName
	}
	sceneData := model.NewScene(name)
	if strings.TrimSpace(d.RootCollection) != "" {
		sceneData.RootCollection = d.RootCollection
		sceneData.EnsureCollection(d.RootCollection)
	}

	payloadIDs := map[string]model.PayloadID{}
	for _, payload := range d.Payloads {
		if _, ok := payloadIDs[payload.Name]; ok {
			return nil, fmt.Errorf("ペイロード名が重複しています: %s", payload.Name)
		}
		vertices := make([]r3.Vec, 0, len(payload.Vertices))
		for _, v := range payload.Vertices {
			vertices = append(vertices, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
		}
		registered := sceneData.Payloads.Add(payload.Name, model.PayloadKind(payload.Kind), vertices)
		payloadIDs[payload.Name] = registered.ID
	}

	handles := map[string]model.ObjectHandle{}
	for _, objectDoc := range d.Objects {
		payloadID := model.PayloadID("")
		if objectDoc.Payload != "" {
			id, ok := payloadIDs[objectDoc.Payload]
			if !ok {
				return nil, fmt.Errorf("オブジェクト %s のペイロードが見つかりません: %s", objectDoc.Name, objectDoc.Payload)
			}
			payloadID = id
		}
		object, err := sceneData.CreateObject(objectDoc.Name, payloadID)
		if err != nil {
			return nil, err
		}
		if object.Name != objectDoc.Name {
			return nil, fmt.Errorf("オブジェクト名が重複しています: %s", objectDoc.Name)
		}
		handles[objectDoc.Name] = object.Handle

		transform, err := objectDoc.Transform.toDomain(objectDoc.Name)
		if err != nil {
			return nil, err
		}
		object.Transform = transform
		if objectDoc.Visible != nil {
			object.Visible = *objectDoc.Visible
		}
		object.Settings = model.ObjectSettings{
			DisplayType:      objectDoc.DisplayType,
			CastShadow:       objectDoc.CastShadow,
			CustomProperties: objectDoc.Properties,
		}
	}

	// 参照フィールドは全オブジェクト登録後に名前からハンドルへ解決する。
	for _, objectDoc := range d.Objects {
		object, err := sceneData.ObjectByName(objectDoc.Name)
		if err != nil {
			return nil, err
		}
		if objectDoc.Parent != nil {
			parentHandle, ok := handles[objectDoc.Parent.Object]
			if !ok {
				return nil, fmt.Errorf("オブジェクト %s の親が見つかりません: %s", objectDoc.Name, objectDoc.Parent.Object)
			}
			parentType := model.ParentType(objectDoc.Parent.Type)
			if objectDoc.Parent.Type == "" {
				parentType = model.ParentTypeObject
			}
			parentInverse := mgl64.Ident4()
			switch len(objectDoc.Parent.Inverse) {
			case 0:
			case 16:
				copy(parentInverse[:], objectDoc.Parent.Inverse)
			default:
				return nil, fmt.Errorf("オブジェクト %s の親逆行列が不正です: 要素数=%d", objectDoc.Name, len(objectDoc.Parent.Inverse))
			}
			object.Parent = &model.ParentLink{
				Parent:        parentHandle,
				Type:          parentType,
				Bone:          objectDoc.Parent.Bone,
				ParentInverse: parentInverse,
			}
		}
		for _, constraintDoc := range objectDoc.Constraints {
			targetHandle, ok := handles[constraintDoc.Target]
			if !ok {
				return nil, fmt.Errorf("コンストレイント %s のターゲットが見つかりません: %s", constraintDoc.Name, constraintDoc.Target)
			}
			object.Constraints = append(object.Constraints, model.Constraint{
				Name:      constraintDoc.Name,
				Kind:      constraintDoc.Kind,
				Target:    targetHandle,
				Subtarget: constraintDoc.Subtarget,
			})
		}
		for _, modifierDoc := range objectDoc.Modifiers {
			modifier := model.Modifier{Name: modifierDoc.Name, Kind: modifierDoc.Kind}
			for _, inputDoc := range modifierDoc.Inputs {
				inputHandle, ok := handles[inputDoc.Object]
				if !ok {
					return nil, fmt.Errorf("モディファイア %s の入力が見つかりません: %s", modifierDoc.Name, inputDoc.Object)
				}
				modifier.Inputs = append(modifier.Inputs, model.ModifierInput{
					Socket: inputDoc.Socket,
					Object: inputHandle,
				})
			}
			object.Modifiers = append(object.Modifiers, modifier)
		}
	}

	for _, collectionDoc := range d.Collections {
		sceneData.EnsureCollection(collectionDoc.Name)
		for _, memberName := range collectionDoc.Objects {
			memberHandle, ok := handles[memberName]
			if !ok {
				return nil, fmt.Errorf("コレクション %s のメンバーが見つかりません: %s", collectionDoc.Name, memberName)
			}
			if err := sceneData.LinkToCollection(collectionDoc.Name, memberHandle); err != nil {
				return nil, err
			}
		}
	}

	for _, groupDoc := range d.NodeGroups {
		group := &model.NodeGroup{Name: groupDoc.Name}
		for _, nodeDoc := range groupDoc.Nodes {
			node := &model.ProceduralNode{Name: nodeDoc.Name, Kind: nodeDoc.Kind}
			for _, socketDoc := range nodeDoc.Sockets {
				socketHandle, ok := handles[socketDoc.Object]
				if !ok {
					return nil, fmt.Errorf("ノード %s のソケット参照が見つかりません: %s", nodeDoc.Name, socketDoc.Object)
				}
				node.Sockets = append(node.Sockets, model.ObjectSocket{
					Name:   socketDoc.Name,
					Object: socketHandle,
				})
			}
			group.Nodes = append(group.Nodes, node)
		}
		sceneData.NodeGroups = append(sceneData.NodeGroups, group)
	}

	for _, selectedName := range d.Selection {
		selectedHandle, ok := handles[selectedName]
		if !ok {
			return nil, fmt.Errorf("選択オブジェクトが見つかりません: %s", selectedName)
		}
		if err := sceneData.Select(selectedHandle); err != nil {
			return nil, err
		}
	}
	if d.Active != "" {
		activeHandle, ok := handles[d.Active]
		if !ok {
			return nil, fmt.Errorf("アクティブオブジェクトが見つかりません: %s", d.Active)
		}
		if err := sceneData.SetActive(activeHandle); err != nil {
			return nil, err
		}
	}
	return sceneData, nil
}

// toDomain は変換状態ドキュメントをドメインモデルへ変換する。
func (d transformDocument) toDomain(objectName string) (model.Transform, error) {
	transform := model.NewTransform()
	transform.Location = mgl64.Vec3{d.Location[0], d.Location[1], d.Location[2]}
	switch model.RotationMode(d.RotationMode) {
	case model.RotationModeQuaternion:
		if len(d.Quaternion) != 4 {
			return transform, fmt.Errorf("オブジェクト %s のクォータニオンが不正です", objectName)
		}
		transform.RotationMode = model.RotationModeQuaternion
		transform.RotationQuat = mgl64.Quat{
			W: d.Quaternion[0],
			V: mgl64.Vec3{d.Quaternion[1], d.Quaternion[2], d.Quaternion[3]},
		}
	case model.RotationModeAxisAngle:
		if len(d.AxisAngle) != 4 {
			return transform, fmt.Errorf("オブジェクト %s の軸回転角が不正です", objectName)
		}
		transform.RotationMode = model.RotationModeAxisAngle
		transform.RotationAxisAngle = mgl64.Vec4{d.AxisAngle[0], d.AxisAngle[1], d.AxisAngle[2], d.AxisAngle[3]}
	default:
		transform.RotationMode = model.RotationModeEulerXYZ
		if len(d.Euler) == 3 {
			transform.RotationEuler = mgl64.Vec3{d.Euler[0], d.Euler[1], d.Euler[2]}
		}
	}
	if len(d.Scale) == 3 {
		transform.Scale = mgl64.Vec3{d.Scale[0], d.Scale[1], d.Scale[2]}
	}
	return transform, nil
}

// fromDomain はドメインモデルをドキュメントへ変換する。
func fromDomain(sceneData *model.Scene) (*sceneDocument, error) {
	document := &sceneDocument{
		Name:           sceneData.Name,
		RootCollection: sceneData.RootCollection,
	}

	payloadNames := map[model.PayloadID]string{}
	for _, object := range sceneData.ObjectsInOrder() {
		if object.Payload == "" {
			continue
		}
		if _, ok := payloadNames[object.Payload]; ok {
			continue
		}
		payload, err := sceneData.Payloads.Get(object.Payload)
		if err != nil {
			return nil, err
		}
		payloadName := uniqueDocumentName(payload.Name, payloadNames)
		payloadNames[payload.ID] = payloadName
		vertices := make([][3]float64, 0, len(payload.Vertices))
		for _, v := range payload.Vertices {
			vertices = append(vertices, [3]float64{v.X, v.Y, v.Z})
		}
		document.Payloads = append(document.Payloads, payloadDocument{
			Name:     payloadName,
			Kind:     string(payload.Kind),
			Vertices: vertices,
		})
	}

	objectNames := map[model.ObjectHandle]string{}
	for _, object := range sceneData.ObjectsInOrder() {
		objectNames[object.Handle] = object.Name
	}

	for _, object := range sceneData.ObjectsInOrder() {
		objectDoc := objectDocument{
			Name:        object.Name,
			Transform:   transformFromDomain(object.Transform),
			DisplayType: object.Settings.DisplayType,
			CastShadow:  object.Settings.CastShadow,
			Properties:  object.Settings.CustomProperties,
		}
		if object.Payload != "" {
			objectDoc.Payload = payloadNames[object.Payload]
		}
		if !object.Visible {
			visible := false
			objectDoc.Visible = &visible
		}
		if object.Parent != nil {
			parentName, ok := objectNames[object.Parent.Parent]
			if !ok {
				return nil, fmt.Errorf("オブジェクト %s の親が見つかりません: %s", object.Name, object.Parent.Parent)
			}
			objectDoc.Parent = &parentDocument{
				Object: parentName,
				Type:   string(object.Parent.Type),
				Bone:   object.Parent.Bone,
			}
			if object.Parent.ParentInverse != mgl64.Ident4() {
				inverse := make([]float64, len(object.Parent.ParentInverse))
				copy(inverse, object.Parent.ParentInverse[:])
				objectDoc.Parent.Inverse = inverse
			}
		}
		for _, constraint := range object.Constraints {
			targetName, ok := objectNames[constraint.Target]
			if !ok {
				return nil, fmt.Errorf("コンストレイント %s のターゲットが見つかりません: %s", constraint.Name, constraint.Target)
			}
			objectDoc.Constraints = append(objectDoc.Constraints, constraintDocument{
				Name:      constraint.Name,
				Kind:      constraint.Kind,
				Target:    targetName,
				Subtarget: constraint.Subtarget,
			})
		}
		for _, modifier := range object.Modifiers {
			modifierDoc := modifierDocument{Name: modifier.Name, Kind: modifier.Kind}
			for _, input := range modifier.Inputs {
				inputName, ok := objectNames[input.Object]
				if !ok {
					return nil, fmt.Errorf("モディファイア %s の入力が見つかりません: %s", modifier.Name, input.Object)
				}
				modifierDoc.Inputs = append(modifierDoc.Inputs, modifierInputDocument{
					Socket: input.Socket,
					Object: inputName,
				})
			}
			objectDoc.Modifiers = append(objectDoc.Modifiers, modifierDoc)
		}
		document.Objects = append(document.Objects, objectDoc)
	}

	for _, collection := range sceneData.Collections {
		collectionDoc := collectionDocument{Name: collection.Name}
		for _, memberHandle := range collection.Objects {
			memberName, ok := objectNames[memberHandle]
			if !ok {
				return nil, fmt.Errorf("コレクション %s のメンバーが見つかりません: %s", collection.Name, memberHandle)
			}
			collectionDoc.Objects = append(collectionDoc.Objects, memberName)
		}
		document.Collections = append(document.Collections, collectionDoc)
	}

	for _, group := range sceneData.NodeGroups {
		groupDoc := nodeGroupDocument{Name: group.Name}
		for _, node := range group.Nodes {
			nodeDoc := nodeDocument{Name: node.Name, Kind: node.Kind}
			for _, socket := range node.Sockets {
				socketName, ok := objectNames[socket.Object]
				if !ok {
					return nil, fmt.Errorf("ノード %s のソケット参照が見つかりません: %s", node.Name, socket.Object)
				}
				nodeDoc.Sockets = append(nodeDoc.Sockets, socketDocument{
					Name:   socket.Name,
					Object: socketName,
				})
			}
			groupDoc.Nodes = append(groupDoc.Nodes, nodeDoc)
		}
		document.NodeGroups = append(document.NodeGroups, groupDoc)
	}

	for _, selectedHandle := range sceneData.Selection {
		if selectedName, ok := objectNames[selectedHandle]; ok {
			document.Selection = append(document.Selection, selectedName)
		}
	}
	if sceneData.Active != "" {
		document.Active = objectNames[sceneData.Active]
	}
	return document, nil
}

// transformFromDomain は変換状態をドキュメント表現へ変換する。
func transformFromDomain(transform model.Transform) transformDocument {
	document := transformDocument{
		Location:     [3]float64{transform.Location.X(), transform.Location.Y(), transform.Location.Z()},
		RotationMode: string(transform.RotationMode),
		Scale:        []float64{transform.Scale.X(), transform.Scale.Y(), transform.Scale.Z()},
	}
	switch transform.RotationMode {
	case model.RotationModeQuaternion:
		document.Quaternion = []float64{
			transform.RotationQuat.W,
			transform.RotationQuat.V.X(),
			transform.RotationQuat.V.Y(),
			transform.RotationQuat.V.Z(),
		}
	case model.RotationModeAxisAngle:
		document.AxisAngle = []float64{
			transform.RotationAxisAngle.X(),
			transform.RotationAxisAngle.Y(),
			transform.RotationAxisAngle.Z(),
			transform.RotationAxisAngle.W(),
		}
	default:
		document.Euler = []float64{
			transform.RotationEuler.X(),
			transform.RotationEuler.Y(),
			transform.RotationEuler.Z(),
		}
	}
	return document
}

// uniqueDocumentName は既出名と衝突しないドキュメント内名称を返す。
func uniqueDocumentName(base string, used map[model.PayloadID]string) string {
	exists := func(candidate string) bool {
		for _, name := range used {
			if name == candidate {
				return true
			}
		}
		return false
	}
	if base == "" {
		base = "Payload"
	}
	if !exists(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", base, i)
		if !exists(candidate) {
			return candidate
		}
	}
}
