// 指示: miu200521358
package model

import "testing"

// buildReferenceScene は全サイト種別を1つずつ持つシーンを構築する。
func buildReferenceScene(t *testing.T) (*Scene, *SceneObject, *SceneObject) {
	t.Helper()
	scene := NewScene("テスト")
	target, err := scene.CreateObject("Target", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	holder, err := scene.CreateObject("Holder", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	holder.Parent = &ParentLink{Parent: target.Handle, Type: ParentTypeObject}
	holder.Constraints = append(holder.Constraints, Constraint{Kind: "COPY_LOCATION", Target: target.Handle})
	holder.Modifiers = append(holder.Modifiers, Modifier{
		Kind:   "BOOLEAN",
		Inputs: []ModifierInput{{Socket: "object", Object: target.Handle}},
	})
	scene.NodeGroups = append(scene.NodeGroups, &NodeGroup{
		Name: "手続きノード",
		Nodes: []*ProceduralNode{
			{Name: "配置", Sockets: []ObjectSocket{{Name: "source", Object: target.Handle}}},
		},
	})
	return scene, target, holder
}

func TestDefaultSiteRegistryCollectsAllKinds(t *testing.T) {
	scene, target, _ := buildReferenceScene(t)
	registry := DefaultSiteRegistry()

	kinds := registry.Kinds()
	if len(kinds) != 4 {
		t.Fatalf("default registry should hold 4 collectors: %d", len(kinds))
	}

	sites := registry.CollectAll(scene)
	if len(sites) != 4 {
		t.Fatalf("unexpected site count: %d", len(sites))
	}
	seen := map[ReferenceSiteKind]int{}
	for _, site := range sites {
		seen[site.Kind()]++
		if site.Target() != target.Handle {
			t.Fatalf("site should point at target: %s", site.Target())
		}
	}
	for _, kind := range []ReferenceSiteKind{ReferenceSiteKindParent, ReferenceSiteKindConstraint, ReferenceSiteKindModifier, ReferenceSiteKindNodeSocket} {
		if seen[kind] != 1 {
			t.Fatalf("kind %s should be collected once: %d", kind, seen[kind])
		}
	}
}

func TestReferenceSiteRewriteMutatesScene(t *testing.T) {
	scene, target, holder := buildReferenceScene(t)
	replacement, err := scene.CreateObject("Replacement", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, site := range DefaultSiteRegistry().CollectAll(scene) {
		if site.Target() == target.Handle {
			site.Rewrite(replacement.Handle)
		}
	}

	if holder.Parent.Parent != replacement.Handle {
		t.Fatalf("parent should be rewritten: %s", holder.Parent.Parent)
	}
	if holder.Constraints[0].Target != replacement.Handle {
		t.Fatalf("constraint target should be rewritten: %s", holder.Constraints[0].Target)
	}
	if holder.Modifiers[0].Inputs[0].Object != replacement.Handle {
		t.Fatalf("modifier input should be rewritten: %s", holder.Modifiers[0].Inputs[0].Object)
	}
	if scene.NodeGroups[0].Nodes[0].Sockets[0].Object != replacement.Handle {
		t.Fatalf("node socket should be rewritten: %s", scene.NodeGroups[0].Nodes[0].Sockets[0].Object)
	}
	if scene.CountReferences(target.Handle) != 0 {
		t.Fatalf("target should have no references left: %d", scene.CountReferences(target.Handle))
	}
}

func TestNewSiteRegistryOmitsUnregisteredKinds(t *testing.T) {
	scene, _, _ := buildReferenceScene(t)
	registry := NewSiteRegistry(NewParentSiteCollector())
	sites := registry.CollectAll(scene)
	if len(sites) != 1 {
		t.Fatalf("partial registry should collect parents only: %d", len(sites))
	}
	if sites[0].Kind() != ReferenceSiteKindParent {
		t.Fatalf("unexpected kind: %s", sites[0].Kind())
	}
}
