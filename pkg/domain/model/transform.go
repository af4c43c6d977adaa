// 指示: miu200521358
package model

import "github.com/go-gl/mathgl/mgl64"

// RotationMode は回転値の表現方式を表す。
type RotationMode string

const (
	// RotationModeQuaternion はクォータニオン回転を表す。
	RotationModeQuaternion RotationMode = "QUATERNION"
	// RotationModeAxisAngle は軸回転角回転を表す。
	RotationModeAxisAngle RotationMode = "AXIS_ANGLE"
	// RotationModeEulerXYZ はXYZオイラー回転を表す。
	RotationModeEulerXYZ RotationMode = "XYZ"
)

// Transform はオブジェクトの位置・回転・スケールを表す。
type Transform struct {
	Location          mgl64.Vec3
	RotationMode      RotationMode
	RotationQuat      mgl64.Quat
	RotationAxisAngle mgl64.Vec4
	RotationEuler     mgl64.Vec3
	Scale             mgl64.Vec3
}

// NewTransform は単位変換を生成する。
func NewTransform() Transform {
	return Transform{
		RotationMode: RotationModeEulerXYZ,
		RotationQuat: mgl64.QuatIdent(),
		Scale:        mgl64.Vec3{1, 1, 1},
	}
}

// CopyLocationRotation は回転方式を合わせたうえで位置と回転を複写する。
// スケールは変更しない。
func (t *Transform) CopyLocationRotation(src Transform) {
	t.RotationMode = src.RotationMode
	switch src.RotationMode {
	case RotationModeQuaternion:
		t.RotationQuat = src.RotationQuat
	case RotationModeAxisAngle:
		t.RotationAxisAngle = src.RotationAxisAngle
	default:
		t.RotationEuler = src.RotationEuler
	}
	t.Location = src.Location
}
