// 指示: miu200521358
package rinteractor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

func TestTransplantPlacementFollowsTarget(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene
	fixture.decoy1.Visible = false
	parentInverse := mgl64.Translate3D(0, -5, 0)
	fixture.decoy1.Parent = &model.ParentLink{
		Parent:        fixture.hull.Handle,
		Type:          model.ParentTypeObject,
		ParentInverse: parentInverse,
	}

	copyObject, err := materializeCopy(scene, fixture.hull, false)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if err := transplantPlacement(scene, fixture.hull, fixture.decoy1, copyObject, false); err != nil {
		t.Fatalf("transplant failed: %v", err)
	}

	if copyObject.Transform.Location != fixture.decoy1.Transform.Location {
		t.Fatalf("location should follow the target: %v", copyObject.Transform.Location)
	}
	if copyObject.Transform.Scale != fixture.hull.Transform.Scale {
		t.Fatalf("scale should follow the template: %v", copyObject.Transform.Scale)
	}
	if copyObject.Parent == nil || copyObject.Parent.Parent != fixture.hull.Handle {
		t.Fatalf("parent link should follow the target")
	}
	if copyObject.Parent == fixture.decoy1.Parent {
		t.Fatalf("parent link should be copied by value")
	}
	if copyObject.Parent.ParentInverse != parentInverse {
		t.Fatalf("parent inverse should follow the target: %v", copyObject.Parent.ParentInverse)
	}
	if copyObject.Visible {
		t.Fatalf("visibility should follow the target")
	}
	if !copyObject.Selected {
		t.Fatalf("selection flag should follow the target")
	}

	collections := scene.CollectionsOf(copyObject.Handle)
	if len(collections) != 2 {
		t.Fatalf("copy should join the target collections: %v", collections)
	}
}

func TestTransplantPlacementMatchScale(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene

	copyObject, err := materializeCopy(scene, fixture.hull, false)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if err := transplantPlacement(scene, fixture.hull, fixture.decoy1, copyObject, true); err != nil {
		t.Fatalf("transplant failed: %v", err)
	}
	if copyObject.Transform.Scale != (mgl64.Vec3{3, 3, 3}) {
		t.Fatalf("scale should follow the target: %v", copyObject.Transform.Scale)
	}
}

func TestTransplantPlacementUnlinkedTargetFallsBackToRoot(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene
	scene.UnlinkFromAllCollections(fixture.decoy1.Handle)

	copyObject, err := materializeCopy(scene, fixture.hull, false)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if err := transplantPlacement(scene, fixture.hull, fixture.decoy1, copyObject, false); err != nil {
		t.Fatalf("transplant failed: %v", err)
	}

	collections := scene.CollectionsOf(copyObject.Handle)
	if len(collections) != 1 || collections[0] != scene.RootCollection {
		t.Fatalf("unlinked target should fall back to the root collection: %v", collections)
	}
}
