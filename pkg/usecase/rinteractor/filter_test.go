// 指示: miu200521358
package rinteractor

import (
	"testing"
)

func TestSelectTargetsByExpressionName(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene
	scene.ClearSelection()

	count, err := SelectTargetsByExpression(scene, `name =~ "Decoy.*"`)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("unexpected match count: %d", count)
	}
	selected := scene.SelectedObjects()
	if len(selected) != 2 || selected[0].Name != "Decoy1" || selected[1].Name != "Decoy2" {
		t.Fatalf("matched objects should be selected in scene order")
	}
}

func TestSelectTargetsByExpressionCollections(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene
	scene.ClearSelection()

	count, err := SelectTargetsByExpression(scene, `collections =~ "ダミー隊"`)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected match count: %d", count)
	}
	if !fixture.decoy1.Selected {
		t.Fatalf("decoy1 should be selected")
	}
}

func TestSelectTargetsByExpressionVisible(t *testing.T) {
	fixture := buildFixtureScene(t)
	scene := fixture.scene
	scene.ClearSelection()
	fixture.turret.Visible = false

	count, err := SelectTargetsByExpression(scene, `visible == false`)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if count != 1 || !fixture.turret.Selected {
		t.Fatalf("hidden object should be the only match: %d", count)
	}
}

func TestSelectTargetsByExpressionInvalid(t *testing.T) {
	fixture := buildFixtureScene(t)
	if _, err := SelectTargetsByExpression(fixture.scene, `name =~ "(`); err == nil {
		t.Fatalf("broken expression should fail")
	}
	if _, err := SelectTargetsByExpression(fixture.scene, `name`); err == nil {
		t.Fatalf("non-boolean expression should fail")
	}
	if _, err := SelectTargetsByExpression(fixture.scene, "  "); err == nil {
		t.Fatalf("empty expression should fail")
	}
}
