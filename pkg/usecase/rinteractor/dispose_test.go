// 指示: miu200521358
package rinteractor

import (
	"errors"
	"testing"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

func TestDisposeTargetsRemovesAndRenames(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene

	mapping := model.NewReplacementMapping()
	for _, target := range []*model.SceneObject{fixture.decoy1, fixture.decoy2} {
		copyObject, err := materializeCopy(scene, fixture.hull, false)
		if err != nil {
			t.Fatalf("materialize failed: %v", err)
		}
		if err := mapping.Append(target.Handle, copyObject.Handle); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	remapReferences(scene, model.DefaultSiteRegistry(), mapping)

	disposed, err := disposeTargets(scene, mapping)
	if err != nil {
		t.Fatalf("dispose failed: %v", err)
	}
	if disposed != 2 {
		t.Fatalf("unexpected disposed count: %d", disposed)
	}
	if _, err := scene.Object(fixture.decoy1.Handle); err == nil {
		t.Fatalf("decoy1 should be removed")
	}

	// コピーは削除対象の名前を引き継ぐ。
	copy1, err := scene.Object(mapping.CopyHandles()[0])
	if err != nil {
		t.Fatalf("copy not found: %v", err)
	}
	if copy1.Name != "Decoy1" {
		t.Fatalf("copy should take over the target name: %s", copy1.Name)
	}

	// 対象だけが使っていたペイロードは破棄される。
	if scene.Payloads.Users(fixture.decoy1.Payload) != 0 {
		t.Fatalf("decoy payload should be released: %d", scene.Payloads.Users(fixture.decoy1.Payload))
	}
}

func TestDisposeTargetsBlockedByResidualReference(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene

	copyObject, err := materializeCopy(scene, fixture.hull, false)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	mapping := model.NewReplacementMapping()
	if err := mapping.Append(fixture.decoy1.Handle, copyObject.Handle); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	// モディファイア入力サイトを列挙しない登録簿で書き換えると参照が残る。
	partial := model.NewSiteRegistry(
		model.NewParentSiteCollector(),
		model.NewConstraintSiteCollector(),
		model.NewNodeSocketSiteCollector(),
	)
	remapReferences(scene, partial, mapping)

	_, err = disposeTargets(scene, mapping)
	if !errors.Is(err, model.ErrDisposalBlocked) {
		t.Fatalf("expected ErrDisposalBlocked: %v", err)
	}
	if _, objErr := scene.Object(fixture.decoy1.Handle); objErr != nil {
		t.Fatalf("blocked target should stay in the scene: %v", objErr)
	}
}
