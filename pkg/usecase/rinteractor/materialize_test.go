// 指示: miu200521358
package rinteractor

import (
	"errors"
	"testing"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

func TestMaterializeCopyShared(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene
	fixture.hull.Settings = model.ObjectSettings{
		DisplayType:      "WIRE",
		CastShadow:       true,
		CustomProperties: map[string]any{"役割": "旗艦"},
	}
	usersBefore := scene.Payloads.Users(fixture.hull.Payload)

	copyObject, err := materializeCopy(scene, fixture.hull, false)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if copyObject.Payload != fixture.hull.Payload {
		t.Fatalf("copy should share the template payload")
	}
	if scene.Payloads.Users(fixture.hull.Payload) != usersBefore+1 {
		t.Fatalf("payload users should grow by one: %d", scene.Payloads.Users(fixture.hull.Payload))
	}
	if copyObject.Name != "Hull.001" {
		t.Fatalf("copy should get a suffixed name: %s", copyObject.Name)
	}
	if copyObject.Parent != nil {
		t.Fatalf("fresh copy should have no parent")
	}
	if len(scene.CollectionsOf(copyObject.Handle)) != 0 {
		t.Fatalf("fresh copy should not belong to any collection")
	}
	if copyObject.Settings.DisplayType != "WIRE" || !copyObject.Settings.CastShadow {
		t.Fatalf("settings should be copied: %+v", copyObject.Settings)
	}

	// 設定は深い複製でテンプレートから独立する。
	copyObject.Settings.CustomProperties["役割"] = "囮"
	if fixture.hull.Settings.CustomProperties["役割"] != "旗艦" {
		t.Fatalf("template settings should stay untouched")
	}
}

func TestMaterializeCopyUnique(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene

	copyObject, err := materializeCopy(scene, fixture.hull, true)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if copyObject.Payload == fixture.hull.Payload {
		t.Fatalf("unique copy should not share the template payload")
	}
	if scene.Payloads.Users(copyObject.Payload) != 1 {
		t.Fatalf("unique payload should have a single user: %d", scene.Payloads.Users(copyObject.Payload))
	}
}

func TestMaterializeCopyUniqueLibraryFails(t *testing.T) {
	scene := model.NewScene("検証シーン")
	payload := scene.Payloads.Add("外部アセット", model.PayloadKindLibrary, nil)
	template, err := scene.CreateObject("外部テンプレート", payload.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = materializeCopy(scene, template, true)
	if !errors.Is(err, model.ErrPayloadDuplicationFailed) {
		t.Fatalf("expected ErrPayloadDuplicationFailed: %v", err)
	}
}
