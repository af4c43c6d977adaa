// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
	"gonum.org/v1/gonum/spatial/r3"
)

// PayloadID はデータペイロードの一意な識別子を表す。
type PayloadID string

// PayloadKind はデータペイロードの種別を表す。
type PayloadKind string

const (
	// PayloadKindMesh はメッシュデータを表す。
	PayloadKindMesh PayloadKind = "MESH"
	// PayloadKindCurve はカーブデータを表す。
	PayloadKindCurve PayloadKind = "CURVE"
	// PayloadKindArmature はアーマチュアデータを表す。
	PayloadKindArmature PayloadKind = "ARMATURE"
	// PayloadKindLibrary は外部ライブラリ参照データを表す。複製は不可。
	PayloadKindLibrary PayloadKind = "LIBRARY"
)

// duplicatablePayloadKinds は複製可能なペイロード種別の集合を表す。
var duplicatablePayloadKinds = map[PayloadKind]struct{}{
	PayloadKindMesh:     {},
	PayloadKindCurve:    {},
	PayloadKindArmature: {},
}

// DataPayload はオブジェクトが参照する形状データを表す。
// Users はホスト管理の参照カウントで、0になった時点で破棄される。
type DataPayload struct {
	ID       PayloadID
	Name     string
	Kind     PayloadKind
	Vertices []r3.Vec
	Users    int
}

// Centroid は頂点群の重心を返す。頂点が無い場合は零ベクトルを返す。
func (p *DataPayload) Centroid() r3.Vec {
	if p == nil || len(p.Vertices) == 0 {
		return r3.Vec{}
	}
	sum := r3.Vec{}
	for _, v := range p.Vertices {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1/float64(len(p.Vertices)), sum)
}

// PayloadRegistry は参照カウント付きのペイロード管理簿を表す。
type PayloadRegistry struct {
	Entries map[PayloadID]*DataPayload
}

// NewPayloadRegistry はペイロード管理簿を生成する。
func NewPayloadRegistry() *PayloadRegistry {
	return &PayloadRegistry{Entries: map[PayloadID]*DataPayload{}}
}

// Add は新規ペイロードを登録して返す。参照カウントは0で開始する。
func (r *PayloadRegistry) Add(name string, kind PayloadKind, vertices []r3.Vec) *DataPayload {
	payload := &DataPayload{
		ID:       PayloadID(uuid.NewString()),
		Name:     name,
		Kind:     kind,
		Vertices: vertices,
	}
	r.Entries[payload.ID] = payload
	return payload
}

// Get は識別子に対応するペイロードを返す。
func (r *PayloadRegistry) Get(id PayloadID) (*DataPayload, error) {
	payload, ok := r.Entries[id]
	if !ok {
		return nil, fmt.Errorf("ペイロードが見つかりません: %s", id)
	}
	return payload, nil
}

// Acquire は参照カウントを1増やす。
func (r *PayloadRegistry) Acquire(id PayloadID) error {
	payload, err := r.Get(id)
	if err != nil {
		return err
	}
	payload.Users++
	return nil
}

// Release は参照カウントを1減らし、0になったペイロードを破棄する。
// 破棄した場合は true を返す。
func (r *PayloadRegistry) Release(id PayloadID) (bool, error) {
	payload, err := r.Get(id)
	if err != nil {
		return false, err
	}
	if payload.Users <= 0 {
		return false, fmt.Errorf("ペイロードの参照カウントが不正です: %s (users=%d)", id, payload.Users)
	}
	payload.Users--
	if payload.Users == 0 {
		delete(r.Entries, id)
		return true, nil
	}
	return false, nil
}

// Users は識別子に対応する参照カウントを返す。未登録の場合は0を返す。
func (r *PayloadRegistry) Users(id PayloadID) int {
	payload, ok := r.Entries[id]
	if !ok {
		return 0
	}
	return payload.Users
}

// Duplicate は既存ペイロードの深い複製を新規登録して返す。
// 複製不可の種別では ErrPayloadDuplicationFailed を返す。
func (r *PayloadRegistry) Duplicate(id PayloadID) (*DataPayload, error) {
	source, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if _, ok := duplicatablePayloadKinds[source.Kind]; !ok {
		return nil, fmt.Errorf("%w: 種別 %s (%s)", ErrPayloadDuplicationFailed, source.Kind, source.Name)
	}
	var vertices []r3.Vec
	if err := deepcopy.Copy(&vertices, source.Vertices); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPayloadDuplicationFailed, source.Name, err)
	}
	return r.Add(source.Name, source.Kind, vertices), nil
}

// Len は登録済みペイロード数を返す。
func (r *PayloadRegistry) Len() int {
	return len(r.Entries)
}
