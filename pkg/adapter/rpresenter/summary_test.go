// 指示: miu200521358
package rpresenter

import "testing"

func TestBuildReplaceSummary(t *testing.T) {
	withCopy := BuildReplaceSummary(3, true, "Hull")
	if withCopy != "3個のオブジェクトを Hull の複製で置き換え" {
		t.Fatalf("unexpected summary: %s", withCopy)
	}
	withReference := BuildReplaceSummary(1, false, "Hull")
	if withReference != "1個のオブジェクトを Hull への参照で置き換え" {
		t.Fatalf("unexpected summary: %s", withReference)
	}
}
