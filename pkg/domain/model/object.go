// 指示: miu200521358
package model

import "github.com/go-gl/mathgl/mgl64"

// ObjectHandle はシーンオブジェクトの一意な識別子を表す。
type ObjectHandle string

// ParentType は親子付けの方式を表す。
type ParentType string

const (
	// ParentTypeObject はオブジェクト親子付けを表す。
	ParentTypeObject ParentType = "OBJECT"
	// ParentTypeBone はボーン親子付けを表す。
	ParentTypeBone ParentType = "BONE"
)

// ParentLink は親オブジェクトへの参照を表す。
// ParentInverse は親子付け時点の逆行列で、親の変換を打ち消すために保持する。
type ParentLink struct {
	Parent        ObjectHandle
	Type          ParentType
	Bone          string
	ParentInverse mgl64.Mat4
}

// Constraint はオブジェクト参照を持つコンストレイントを表す。
type Constraint struct {
	Name      string
	Kind      string
	Target    ObjectHandle
	Subtarget string
}

// ModifierInput はモディファイアのオブジェクト入力ソケットを表す。
type ModifierInput struct {
	Socket string
	Object ObjectHandle
}

// Modifier はオブジェクト入力を持つモディファイアを表す。
type Modifier struct {
	Name   string
	Kind   string
	Inputs []ModifierInput
}

// ObjectSettings はトランスフォームと階層に依存しないオブジェクト設定を表す。
type ObjectSettings struct {
	DisplayType      string
	CastShadow       bool
	CustomProperties map[string]any
}

// SceneObject はシーン内の1オブジェクトを表す。
// 生成と破棄はシーングラフ側が行い、置換エンジンはフィールドの書き換えのみ行う。
type SceneObject struct {
	Handle      ObjectHandle
	Name        string
	Transform   Transform
	Parent      *ParentLink
	Visible     bool
	Selected    bool
	Payload     PayloadID
	Settings    ObjectSettings
	Constraints []Constraint
	Modifiers   []Modifier
}

// ObjectSocket はオブジェクト参照を受けるノード入力ソケットを表す。
type ObjectSocket struct {
	Name   string
	Object ObjectHandle
}

// ProceduralNode はノードグラフ内の1ノードを表す。
type ProceduralNode struct {
	Name    string
	Kind    string
	Sockets []ObjectSocket
}

// NodeGroup はプロシージャルノードグラフを表す。
type NodeGroup struct {
	Name  string
	Nodes []*ProceduralNode
}
