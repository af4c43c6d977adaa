// 指示: miu200521358
package model

import "testing"

func TestReplacementMappingAppendAndLookup(t *testing.T) {
	mapping := NewReplacementMapping()
	if err := mapping.Append("target1", "copy1"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := mapping.Append("target2", "copy2"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	copyHandle, ok := mapping.CopyFor("target1")
	if !ok || copyHandle != "copy1" {
		t.Fatalf("unexpected copy for target1: %s", copyHandle)
	}
	if !mapping.HasTarget("target2") {
		t.Fatalf("target2 should be registered")
	}
	if mapping.HasTarget("copy1") {
		t.Fatalf("copies should not be registered as targets")
	}
	if mapping.Len() != 2 {
		t.Fatalf("unexpected length: %d", mapping.Len())
	}

	pairs := mapping.Pairs()
	if pairs[0].Target != "target1" || pairs[1].Target != "target2" {
		t.Fatalf("pairs should keep insertion order: %v", pairs)
	}
	handles := mapping.CopyHandles()
	if len(handles) != 2 || handles[0] != "copy1" || handles[1] != "copy2" {
		t.Fatalf("copy handles should keep insertion order: %v", handles)
	}
}

func TestReplacementMappingRejectsDuplicates(t *testing.T) {
	mapping := NewReplacementMapping()
	if err := mapping.Append("target1", "copy1"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := mapping.Append("target1", "copy2"); err == nil {
		t.Fatalf("duplicate target should fail")
	}
	if err := mapping.Append("target2", "copy1"); err == nil {
		t.Fatalf("duplicate copy should fail")
	}
	if mapping.Len() != 1 {
		t.Fatalf("failed appends should not be registered: %d", mapping.Len())
	}
}
