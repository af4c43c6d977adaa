// 指示: miu200521358
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_obj_replace/pkg/adapter/io_scene"
)

const sampleSceneYaml = `name: 検証シーン
payloads:
  - name: Hull
    kind: MESH
  - name: Decoy
    kind: MESH
objects:
  - name: Hull
    payload: Hull
    transform:
      location: [0, 0, 0]
  - name: Decoy1
    payload: Decoy
    transform:
      location: [10, 0, 0]
  - name: Decoy2
    payload: Decoy
    transform:
      location: [0, 10, 0]
selection: [Decoy1, Decoy2, Hull]
active: Hull
`

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{
		"-in", "scene.yaml",
		"-out", "out.json",
		"-template", "Hull",
		"-targets", "Decoy1, Decoy2",
		"-unique",
		"-match-scale",
	}, os.Stderr)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "scene.yaml" || opts.outputPath != "out.json" {
		t.Fatalf("unexpected paths: %+v", opts)
	}
	if opts.templateName != "Hull" {
		t.Fatalf("unexpected template: %s", opts.templateName)
	}
	if len(opts.targetNames) != 2 || opts.targetNames[0] != "Decoy1" || opts.targetNames[1] != "Decoy2" {
		t.Fatalf("targets should be split and trimmed: %v", opts.targetNames)
	}
	if !opts.uniqueData || !opts.matchScale {
		t.Fatalf("flags should be set: %+v", opts)
	}
	if !opts.uniqueSet || !opts.matchScaleSet {
		t.Fatalf("explicit flags should be marked as set: %+v", opts)
	}
	if !opts.activeIsTemplate {
		t.Fatalf("active-template should default to true")
	}
	if opts.activeTemplateSet {
		t.Fatalf("omitted flags should not be marked as set: %+v", opts)
	}
}

func TestParseOptionsOmittedFlagsAreNotMarkedSet(t *testing.T) {
	opts, err := parseOptions([]string{"-in", "scene.yaml"}, os.Stderr)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.uniqueSet || opts.matchScaleSet || opts.activeTemplateSet {
		t.Fatalf("no option flag was given: %+v", opts)
	}
}

func TestParseOptionsPositionalArgs(t *testing.T) {
	opts, err := parseOptions([]string{"scene.json", "out.json"}, os.Stderr)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "scene.json" || opts.outputPath != "out.json" {
		t.Fatalf("positional args should map to in/out: %+v", opts)
	}
}

func TestParseOptionsRequiresInput(t *testing.T) {
	if _, err := parseOptions([]string{}, os.Stderr); err == nil {
		t.Fatalf("missing input should fail")
	}
	if _, err := parseOptions([]string{"-in", "scene.blend"}, os.Stderr); err == nil {
		t.Fatalf("unsupported extension should fail")
	}
}

func TestResolveOutputPath(t *testing.T) {
	path, err := resolveOutputPath(filepath.Join("dir", "scene.yaml"), "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if path != filepath.Join("dir", "scene_replaced.yaml") {
		t.Fatalf("unexpected default output: %s", path)
	}

	path, err = resolveOutputPath("scene.yaml", "custom.json")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if path != "custom.json" {
		t.Fatalf("explicit output should win: %s", path)
	}

	if _, err := resolveOutputPath("scene.yaml", "custom.blend"); err == nil {
		t.Fatalf("unsupported output extension should fail")
	}
}

func TestRunReplacesSceneFile(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "scene.yaml")
	outPath := filepath.Join(tempDir, "out", "scene.json")
	if err := os.WriteFile(inPath, []byte(sampleSceneYaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out, errOut bytes.Buffer
	err := run([]string{
		"-in", inPath,
		"-out", outPath,
		"-prefs", filepath.Join(tempDir, "options.toml"),
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("output not found: %v", err)
	}
	if !strings.Contains(out.String(), "置換完了") {
		t.Fatalf("completion message not printed: %s", out.String())
	}

	reloaded, err := io_scene.NewSceneRepository().Load(outPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Order) != 3 {
		t.Fatalf("object count should stay unchanged: %d", len(reloaded.Order))
	}
	copy1, err := reloaded.ObjectByName("Decoy1")
	if err != nil {
		t.Fatalf("copy not found: %v", err)
	}
	hull, err := reloaded.ObjectByName("Hull")
	if err != nil {
		t.Fatalf("hull not found: %v", err)
	}
	if copy1.Payload != hull.Payload {
		t.Fatalf("shared replacement should link the template payload")
	}
}

func TestRunWithExplicitSelection(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "scene.yaml")
	if err := os.WriteFile(inPath, []byte(sampleSceneYaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out, errOut bytes.Buffer
	err := run([]string{
		"-in", inPath,
		"-out", filepath.Join(tempDir, "out.json"),
		"-prefs", filepath.Join(tempDir, "options.toml"),
		"-template", "Hull",
		"-filter", `name =~ "Decoy.*"`,
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "置換対象: 2件") {
		t.Fatalf("progress message not printed: %s", out.String())
	}
}

func TestRunWithTargetsOnlyUsesActiveTemplate(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "scene.yaml")
	outPath := filepath.Join(tempDir, "out.json")
	if err := os.WriteFile(inPath, []byte(sampleSceneYaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// -template 省略時はシーンのアクティブ(Hull)がテンプレートになる。
	var out, errOut bytes.Buffer
	err := run([]string{
		"-in", inPath,
		"-out", outPath,
		"-prefs", filepath.Join(tempDir, "options.toml"),
		"-targets", "Decoy1,Decoy2",
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "置換対象: 2件") {
		t.Fatalf("progress message not printed: %s", out.String())
	}

	reloaded, err := io_scene.NewSceneRepository().Load(outPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	hull, err := reloaded.ObjectByName("Hull")
	if err != nil {
		t.Fatalf("hull not found: %v", err)
	}
	copy1, err := reloaded.ObjectByName("Decoy1")
	if err != nil {
		t.Fatalf("copy not found: %v", err)
	}
	if copy1.Payload != hull.Payload {
		t.Fatalf("copy should link the active template payload")
	}
	if reloaded.Active != hull.Handle {
		t.Fatalf("active template should stay active")
	}
}

func TestRunAppliesSavedPreferences(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "scene.yaml")
	prefsPath := filepath.Join(tempDir, "options.toml")
	if err := os.WriteFile(inPath, []byte(sampleSceneYaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out, errOut bytes.Buffer
	err := run([]string{
		"-in", inPath,
		"-out", filepath.Join(tempDir, "first.json"),
		"-prefs", prefsPath,
		"-unique",
		"-save-prefs",
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// フラグ未指定の2回目は保存済みの unique_data=true が効く。
	if err := os.WriteFile(inPath, []byte(sampleSceneYaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	outPath := filepath.Join(tempDir, "second.json")
	out.Reset()
	err = run([]string{
		"-in", inPath,
		"-out", outPath,
		"-prefs", prefsPath,
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !strings.Contains(out.String(), "の複製で置き換え") {
		t.Fatalf("saved unique_data should apply: %s", out.String())
	}

	reloaded, err := io_scene.NewSceneRepository().Load(outPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	hull, err := reloaded.ObjectByName("Hull")
	if err != nil {
		t.Fatalf("hull not found: %v", err)
	}
	copy1, err := reloaded.ObjectByName("Decoy1")
	if err != nil {
		t.Fatalf("copy not found: %v", err)
	}
	if copy1.Payload == hull.Payload {
		t.Fatalf("unique replacement should not share the template payload")
	}
}

func TestRunFailsOnMissingTemplate(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "scene.yaml")
	if err := os.WriteFile(inPath, []byte(sampleSceneYaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out, errOut bytes.Buffer
	err := run([]string{
		"-in", inPath,
		"-prefs", filepath.Join(tempDir, "options.toml"),
		"-template", "Missing",
	}, &out, &errOut)
	if err == nil {
		t.Fatalf("missing template should fail")
	}
}
