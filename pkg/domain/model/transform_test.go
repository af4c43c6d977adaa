// 指示: miu200521358
package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewTransformDefaults(t *testing.T) {
	transform := NewTransform()
	if transform.RotationMode != RotationModeEulerXYZ {
		t.Fatalf("rotation mode should default to XYZ: %s", transform.RotationMode)
	}
	if transform.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("scale should default to identity: %v", transform.Scale)
	}
}

func TestCopyLocationRotationQuaternion(t *testing.T) {
	src := NewTransform()
	src.Location = mgl64.Vec3{1, 2, 3}
	src.RotationMode = RotationModeQuaternion
	src.RotationQuat = mgl64.Quat{W: 0.5, V: mgl64.Vec3{0.5, 0.5, 0.5}}

	dst := NewTransform()
	dst.Scale = mgl64.Vec3{2, 2, 2}
	dst.CopyLocationRotation(src)

	if dst.Location != src.Location {
		t.Fatalf("location should be copied: %v", dst.Location)
	}
	if dst.RotationMode != RotationModeQuaternion {
		t.Fatalf("rotation mode should follow source: %s", dst.RotationMode)
	}
	if dst.RotationQuat != src.RotationQuat {
		t.Fatalf("quaternion should be copied: %v", dst.RotationQuat)
	}
	if dst.Scale != (mgl64.Vec3{2, 2, 2}) {
		t.Fatalf("scale should stay untouched: %v", dst.Scale)
	}
}

func TestCopyLocationRotationAxisAngle(t *testing.T) {
	src := NewTransform()
	src.RotationMode = RotationModeAxisAngle
	src.RotationAxisAngle = mgl64.Vec4{0, 0, 1, 1.57}

	dst := NewTransform()
	dst.CopyLocationRotation(src)
	if dst.RotationMode != RotationModeAxisAngle {
		t.Fatalf("rotation mode should follow source: %s", dst.RotationMode)
	}
	if dst.RotationAxisAngle != src.RotationAxisAngle {
		t.Fatalf("axis angle should be copied: %v", dst.RotationAxisAngle)
	}
}

func TestCopyLocationRotationEuler(t *testing.T) {
	src := NewTransform()
	src.RotationEuler = mgl64.Vec3{0.1, 0.2, 0.3}

	dst := NewTransform()
	dst.RotationMode = RotationModeQuaternion
	dst.CopyLocationRotation(src)
	if dst.RotationMode != RotationModeEulerXYZ {
		t.Fatalf("rotation mode should follow source: %s", dst.RotationMode)
	}
	if dst.RotationEuler != src.RotationEuler {
		t.Fatalf("euler should be copied: %v", dst.RotationEuler)
	}
}
