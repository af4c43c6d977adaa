// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_obj_replace/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/rinteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチ検証の実行設定を表す。
type batchConfig struct {
	OutputRoot string
	DryRun     bool
	FailFast   bool
}

// replaceCase は1ケース分の置換検証設定を表す。
type replaceCase struct {
	Index      int
	Name       string
	Options    model.RunOptions
	ExpectFail bool
	Build      func() (*model.Scene, error)
}

// caseResult は1ケース分の検証結果を表す。
type caseResult struct {
	Case          replaceCase
	Status        string
	Duration      time.Duration
	Err           error
	ProgressStage string
}

// replaceProgressCollector は Replace の進捗イベントを収集する。
type replaceProgressCollector struct {
	eventCounts  map[rinteractor.ReplaceProgressEventType]int
	copyMax      int
	siteTotal    int
	rewriteTotal int
}

// main はオブジェクト置換の一括検証を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括検証を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	cases := buildReplaceCases()
	if len(cases) == 0 {
		fmt.Fprintln(os.Stderr, "検証ケースがありません")
		return 2
	}

	results := executeBatchReplace(config, cases)
	printBatchSummary(results)

	hasFailed := false
	for _, result := range results {
		if result.Status == "failed" {
			hasFailed = true
			break
		}
	}
	if hasFailed {
		return 1
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	outputRoot := flag.String("output-root", filepath.Join(os.TempDir(), "mu_obj_replace_batch"), "検証シーンの出力ルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "実置換せず、ケース一覧のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// buildReplaceCases は検証ケース一覧を生成する。
func buildReplaceCases() []replaceCase {
	cases := []replaceCase{
		{
			Name:    "共有参照で置換",
			Options: model.RunOptions{ActiveIsTemplate: true},
			Build:   buildDemoScene,
		},
		{
			Name:    "データ複製で置換",
			Options: model.RunOptions{UniqueData: true, ActiveIsTemplate: true},
			Build:   buildDemoScene,
		},
		{
			Name:    "スケール引き継ぎ",
			Options: model.RunOptions{MatchScale: true, ActiveIsTemplate: true},
			Build:   buildDemoScene,
		},
		{
			Name:       "選択不足でエラー",
			Options:    model.RunOptions{ActiveIsTemplate: true},
			ExpectFail: true,
			Build:      buildSingleSelectionScene,
		},
		{
			Name:       "複製不可ペイロードでロールバック",
			Options:    model.RunOptions{UniqueData: true, ActiveIsTemplate: true},
			ExpectFail: true,
			Build:      buildLibraryTemplateScene,
		},
	}
	for i := range cases {
		cases[i].Index = i + 1
	}
	return cases
}

// executeBatchReplace は全ケースの置換検証を順次実行する。
func executeBatchReplace(config batchConfig, cases []replaceCase) []caseResult {
	results := make([]caseResult, 0, len(cases))
	total := len(cases)
	for _, testCase := range cases {
		fmt.Printf("[%d/%d] 検証開始: case=%s\n", testCase.Index, total, testCase.Name)
		result := runReplaceCase(config, testCase)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 検証成功: case=%s elapsed=%s\n", testCase.Index, total, testCase.Name, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.ProgressStage) != "" {
				fmt.Printf("[%d/%d] Replace進捗: %s\n", testCase.Index, total, result.ProgressStage)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: case=%s\n", testCase.Index, total, testCase.Name)
		default:
			fmt.Printf("[%d/%d] 検証失敗: case=%s reason=%v\n", testCase.Index, total, testCase.Name, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// runReplaceCase は1ケース分の置換検証を実行する。
func runReplaceCase(config batchConfig, testCase replaceCase) caseResult {
	result := caseResult{
		Case:   testCase,
		Status: "failed",
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}

	sceneData, err := testCase.Build()
	if err != nil {
		result.Err = fmt.Errorf("シーン構築に失敗しました: %w", err)
		return result
	}
	objectCountBefore := len(sceneData.Order)

	startedAt := time.Now()
	progressCollector := newReplaceProgressCollector()
	usecase := rinteractor.NewReplaceUsecase(rinteractor.ReplaceUsecaseDeps{})
	replaceResult, err := usecase.Replace(rinteractor.ReplaceRequest{
		Scene:            sceneData,
		Options:          testCase.Options,
		ProgressReporter: progressCollector,
	})

	if testCase.ExpectFail {
		if err == nil {
			result.Err = errors.New("エラーを期待しましたが成功しました")
			return result
		}
		if len(sceneData.Order) != objectCountBefore {
			result.Err = fmt.Errorf("失敗時にオブジェクト数が変化しました: %d -> %d", objectCountBefore, len(sceneData.Order))
			return result
		}
		result.Status = "succeeded"
		result.Duration = time.Since(startedAt)
		return result
	}
	if err != nil {
		result.Err = fmt.Errorf("Replaceに失敗しました: %w", err)
		return result
	}
	if verifyErr := verifyReplaceOutcome(sceneData, replaceResult, objectCountBefore); verifyErr != nil {
		result.Err = verifyErr
		return result
	}
	if saveErr := saveCaseScene(config, testCase, sceneData, usecase); saveErr != nil {
		result.Err = saveErr
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.ProgressStage = progressCollector.Summary()
	return result
}

// verifyReplaceOutcome は置換後シーンの不変条件を検証する。
func verifyReplaceOutcome(sceneData *model.Scene, replaceResult *rinteractor.ReplaceResult, objectCountBefore int) error {
	if replaceResult == nil {
		return errors.New("Replace結果が空です")
	}
	// 対象が同数のコピーへ置き換わるため総数は変わらない。
	if len(sceneData.Order) != objectCountBefore {
		return fmt.Errorf("オブジェクト数が一致しません: %d -> %d", objectCountBefore, len(sceneData.Order))
	}
	for _, handle := range replaceResult.NewHandles {
		if _, err := sceneData.Object(handle); err != nil {
			return fmt.Errorf("コピーがシーンに存在しません: %w", err)
		}
	}
	template, err := sceneData.Object(replaceResult.Template)
	if err != nil {
		return fmt.Errorf("テンプレートがシーンに存在しません: %w", err)
	}
	if !template.Selected {
		return errors.New("テンプレートが選択されていません")
	}
	if sceneData.Active != template.Handle {
		return errors.New("テンプレートがアクティブではありません")
	}
	return nil
}

// saveCaseScene は検証後シーンをケース別ディレクトリへ保存する。
func saveCaseScene(config batchConfig, testCase replaceCase, sceneData *model.Scene, usecase *rinteractor.ReplaceUsecase) error {
	caseDir := filepath.Join(config.OutputRoot, fmt.Sprintf("%03d_%s", testCase.Index, sanitizePathComponent(testCase.Name)))
	if err := os.MkdirAll(caseDir, batchOutputDirMode); err != nil {
		return fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
	}
	outputPath := filepath.Join(caseDir, "scene.json")
	repository := io_scene.NewSceneRepository()
	if err := usecase.SaveScene(repository, outputPath, sceneData, rinteractor.SaveOptions{Indent: true}); err != nil {
		return fmt.Errorf("シーン保存に失敗しました: %w", err)
	}
	return nil
}

// printBatchSummary は検証結果の集計を標準出力へ表示する。
func printBatchSummary(results []caseResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ検証サマリ: total=%d succeeded=%d failed=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		dryRun,
	)
}

// buildDemoScene は置換検証用の基本シーンを構築する。
// テンプレート1体と、親子・コンストレイント・モディファイア参照を持つ
// ダミー2体を選択済み状態で用意する。
func buildDemoScene() (*model.Scene, error) {
	sceneData := model.NewScene("デモシーン")
	hullPayload := sceneData.Payloads.Add("Hull", model.PayloadKindMesh, nil)
	decoyPayload := sceneData.Payloads.Add("Decoy", model.PayloadKindMesh, nil)

	hull, err := sceneData.CreateObject("Hull", hullPayload.ID)
	if err != nil {
		return nil, err
	}
	decoy1, err := sceneData.CreateObject("Decoy1", decoyPayload.ID)
	if err != nil {
		return nil, err
	}
	decoy2, err := sceneData.CreateObject("Decoy2", decoyPayload.ID)
	if err != nil {
		return nil, err
	}
	turret, err := sceneData.CreateObject("Turret", hullPayload.ID)
	if err != nil {
		return nil, err
	}

	for _, object := range []*model.SceneObject{hull, decoy1, decoy2, turret} {
		if err := sceneData.LinkToCollection(sceneData.RootCollection, object.Handle); err != nil {
			return nil, err
		}
	}

	turret.Parent = &model.ParentLink{Parent: decoy1.Handle, Type: model.ParentTypeObject}
	turret.Constraints = append(turret.Constraints, model.Constraint{
		Name:   "追従",
		Kind:   "COPY_LOCATION",
		Target: decoy2.Handle,
	})
	turret.Modifiers = append(turret.Modifiers, model.Modifier{
		Name: "ブーリアン",
		Kind: "BOOLEAN",
		Inputs: []model.ModifierInput{
			{Socket: "object", Object: decoy1.Handle},
		},
	})

	for _, handle := range []model.ObjectHandle{decoy1.Handle, decoy2.Handle, hull.Handle} {
		if err := sceneData.Select(handle); err != nil {
			return nil, err
		}
	}
	if err := sceneData.SetActive(hull.Handle); err != nil {
		return nil, err
	}
	return sceneData, nil
}

// buildSingleSelectionScene は選択が1体しかないシーンを構築する。
func buildSingleSelectionScene() (*model.Scene, error) {
	sceneData := model.NewScene("選択不足シーン")
	payload := sceneData.Payloads.Add("Hull", model.PayloadKindMesh, nil)
	hull, err := sceneData.CreateObject("Hull", payload.ID)
	if err != nil {
		return nil, err
	}
	if err := sceneData.Select(hull.Handle); err != nil {
		return nil, err
	}
	if err := sceneData.SetActive(hull.Handle); err != nil {
		return nil, err
	}
	return sceneData, nil
}

// buildLibraryTemplateScene は複製不可ペイロードをテンプレートに持つシーンを構築する。
func buildLibraryTemplateScene() (*model.Scene, error) {
	sceneData := model.NewScene("ロールバック検証シーン")
	libraryPayload := sceneData.Payloads.Add("外部アセット", model.PayloadKindLibrary, nil)
	decoyPayload := sceneData.Payloads.Add("Decoy", model.PayloadKindMesh, nil)

	template, err := sceneData.CreateObject("外部テンプレート", libraryPayload.ID)
	if err != nil {
		return nil, err
	}
	decoy, err := sceneData.CreateObject("Decoy1", decoyPayload.ID)
	if err != nil {
		return nil, err
	}
	for _, handle := range []model.ObjectHandle{decoy.Handle, template.Handle} {
		if err := sceneData.Select(handle); err != nil {
			return nil, err
		}
	}
	if err := sceneData.SetActive(template.Handle); err != nil {
		return nil, err
	}
	return sceneData, nil
}

// sanitizePathComponent は出力ディレクトリ名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "case"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*', ' ':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "case"
	}
	return replaced
}

// newReplaceProgressCollector は Replace 進捗収集器を生成する。
func newReplaceProgressCollector() *replaceProgressCollector {
	return &replaceProgressCollector{
		eventCounts: map[rinteractor.ReplaceProgressEventType]int{},
	}
}

// ReportReplaceProgress は Replace の進捗イベントを収集する。
func (collector *replaceProgressCollector) ReportReplaceProgress(event rinteractor.ReplaceProgressEvent) {
	if collector == nil {
		return
	}
	if collector.eventCounts == nil {
		collector.eventCounts = map[rinteractor.ReplaceProgressEventType]int{}
	}
	collector.eventCounts[event.Type]++
	if event.CopyCount > collector.copyMax {
		collector.copyMax = event.CopyCount
	}
	collector.siteTotal += event.SiteCount
	collector.rewriteTotal += event.RewriteCount
}

// Summary は収集した Replace 進捗の要約文字列を返す。
func (collector *replaceProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d copies=%d sites=%d rewrites=%d stages=%s",
		len(collector.eventCounts),
		collector.copyMax,
		collector.siteTotal,
		collector.rewriteTotal,
		strings.Join(types, ","),
	)
}
