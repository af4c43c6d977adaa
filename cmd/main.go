// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_obj_replace/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_obj_replace/pkg/adapter/rpresenter"
	"github.com/miu200521358/mu_obj_replace/pkg/adapter/rpresenter/messages"
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/infra/prefs"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/rinteractor"
	slogmulti "github.com/samber/slog-multi"
)

// options はCLI引数を保持する。
// 各オプションフラグには明示指定の有無を併せて記録し、保存済み設定との
// 優先順位判断に使う。
type options struct {
	inputPath         string
	outputPath        string
	templateName      string
	targetNames       []string
	filterExpression  string
	uniqueData        bool
	uniqueSet         bool
	matchScale        bool
	matchScaleSet     bool
	activeIsTemplate  bool
	activeTemplateSet bool
	savePrefs         bool
	prefsPath         string
	logPath           string
	verbose           bool
}

// main は選択オブジェクトのテンプレート置換を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(errOut, opts.logPath, opts.verbose)
	if err != nil {
		return err
	}
	defer closeLogger()

	repository := io_scene.NewSceneRepository()
	if !repository.CanLoad(opts.inputPath) {
		return fmt.Errorf("入力形式が未対応です: %s", opts.inputPath)
	}

	fmt.Fprintf(out, "[mu_obj_replace] 読み込み開始: %s\n", opts.inputPath)
	sceneData, err := repository.Load(opts.inputPath)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
	}
	logger.Info(messages.LogLoadSuccess,
		slog.String("path", opts.inputPath),
		slog.Int("objects", len(sceneData.Order)))

	runOptions, err := resolveRunOptions(opts, logger)
	if err != nil {
		return err
	}

	if err := applySelection(sceneData, opts, runOptions); err != nil {
		return err
	}

	usecase := rinteractor.NewReplaceUsecase(rinteractor.ReplaceUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})
	request := rinteractor.ReplaceRequest{
		Scene:            sceneData,
		Options:          runOptions,
		ProgressReporter: &consoleProgressReporter{out: out},
	}
	result, err := usecase.Replace(request)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageReplaceFailed, err)
	}

	template, err := sceneData.Object(result.Template)
	if err != nil {
		return err
	}
	summary := rpresenter.BuildReplaceSummary(result.ReplacedCount, runOptions.UniqueData, template.Name)
	fmt.Fprintf(out, "[mu_obj_replace] %s\n", summary)
	logger.Info(messages.LogReplaceSuccess,
		slog.Int("replaced", result.ReplacedCount),
		slog.Bool("linked", result.Linked))

	outputPath, err := resolveOutputPath(opts.inputPath, opts.outputPath)
	if err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "[mu_obj_replace] 保存開始: %s\n", outputPath)
	if err := usecase.SaveScene(repository, outputPath, sceneData, rinteractor.SaveOptions{Indent: true}); err != nil {
		return fmt.Errorf("%s: %w", messages.MessageSaveFailed, err)
	}
	logger.Info(messages.LogSaveSuccess, slog.String("path", outputPath))
	fmt.Fprintf(out, "[mu_obj_replace] 置換完了: %s\n", outputPath)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_obj_replace", flag.ContinueOnError)
	fs.SetOutput(errOut)

	in := fs.String("in", "", "入力シーンファイルパス (.json/.yaml)")
	out := fs.String("out", "", "出力シーンファイルパス")
	template := fs.String("template", "", "テンプレートオブジェクト名 (省略時はシーンのアクティブ)")
	targets := fs.String("targets", "", "置換対象オブジェクト名 (カンマ区切り)")
	filter := fs.String("filter", "", "置換対象選択式 (例: name =~ \"Decoy.*\")")
	unique := fs.Bool("unique", false, "コピーごとにデータを複製する")
	matchScale := fs.Bool("match-scale", false, "対象のスケールをコピーへ引き継ぐ")
	activeTemplate := fs.Bool("active-template", true, "アクティブオブジェクトをテンプレートとする")
	savePrefs := fs.Bool("save-prefs", false, "指定したオプションを設定ファイルへ保存する")
	prefsPath := fs.String("prefs", "", "設定ファイルパス (省略時は既定の場所)")
	logPath := fs.String("log", "", "ログファイルパス (JSON形式で追記)")
	verbose := fs.Bool("verbose", false, "デバッグログを出力する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	explicitFlags := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		explicitFlags[f.Name] = true
	})

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *out == "" && fs.NArg() > 1 {
		*out = fs.Arg(1)
	}
	if *in == "" {
		return options{}, fmt.Errorf("入力シーンファイルを指定してください (-in)")
	}

	switch strings.ToLower(filepath.Ext(*in)) {
	case ".json", ".yaml", ".yml":
	default:
		return options{}, fmt.Errorf("入力拡張子が未対応です: %s", *in)
	}

	targetNames := []string{}
	for _, name := range strings.Split(*targets, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			targetNames = append(targetNames, name)
		}
	}

	return options{
		inputPath:         *in,
		outputPath:        *out,
		templateName:      *template,
		targetNames:       targetNames,
		filterExpression:  *filter,
		uniqueData:        *unique,
		uniqueSet:         explicitFlags["unique"],
		matchScale:        *matchScale,
		matchScaleSet:     explicitFlags["match-scale"],
		activeIsTemplate:  *activeTemplate,
		activeTemplateSet: explicitFlags["active-template"],
		savePrefs:         *savePrefs,
		prefsPath:         *prefsPath,
		logPath:           *logPath,
		verbose:           *verbose,
	}, nil
}

// resolveRunOptions は保存済み設定とCLI引数から実行オプションを決定する。
// 明示指定されたフラグだけが保存済み設定を上書きする。
func resolveRunOptions(opts options, logger *slog.Logger) (model.RunOptions, error) {
	prefsPath := opts.prefsPath
	if prefsPath == "" {
		defaultPath, err := prefs.DefaultPreferencePath()
		if err != nil {
			return model.DefaultRunOptions(), err
		}
		prefsPath = defaultPath
	}
	store := prefs.NewPreferenceStore(prefsPath)
	runOptions, err := store.Load()
	if err != nil {
		logger.Warn("設定ファイルの読み込みに失敗したため既定値を使用します", slog.String("error", err.Error()))
		runOptions = model.DefaultRunOptions()
	}

	if opts.uniqueSet {
		runOptions.UniqueData = opts.uniqueData
	}
	if opts.matchScaleSet {
		runOptions.MatchScale = opts.matchScale
	}
	if opts.activeTemplateSet {
		runOptions.ActiveIsTemplate = opts.activeIsTemplate
	}

	if opts.savePrefs {
		if err := store.Save(runOptions); err != nil {
			return runOptions, err
		}
		logger.Info("設定を保存しました", slog.String("path", store.Path()))
	}
	return runOptions, nil
}

// applySelection はCLI引数に応じてシーンの選択状態を組み立てる。
// 指定がない場合はシーンファイルの選択状態をそのまま使う。
func applySelection(sceneData *model.Scene, opts options, runOptions model.RunOptions) error {
	explicit := opts.templateName != "" || len(opts.targetNames) > 0 || opts.filterExpression != ""
	if !explicit {
		return nil
	}

	sceneData.ClearSelection()

	var template *model.SceneObject
	if opts.templateName != "" {
		object, err := sceneData.ObjectByName(opts.templateName)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.MessageTemplateMissing, err)
		}
		template = object
	} else if runOptions.ActiveIsTemplate && sceneData.Active != "" {
		// -template 省略時はシーンのアクティブオブジェクトをそのまま使う。
		object, err := sceneData.Object(sceneData.Active)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.MessageTemplateMissing, err)
		}
		template = object
	}

	// テンプレート非アクティブ運用では選択順の先頭がテンプレートになる。
	if template != nil && !runOptions.ActiveIsTemplate {
		if err := sceneData.Select(template.Handle); err != nil {
			return err
		}
	}

	for _, name := range opts.targetNames {
		object, err := sceneData.ObjectByName(name)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.MessageTargetMissing, err)
		}
		if err := sceneData.Select(object.Handle); err != nil {
			return err
		}
	}
	if opts.filterExpression != "" {
		count, err := rinteractor.SelectTargetsByExpression(sceneData, opts.filterExpression)
		if err != nil {
			return err
		}
		if count == 0 && len(opts.targetNames) == 0 {
			return fmt.Errorf("選択式に一致するオブジェクトがありません: %s", opts.filterExpression)
		}
	}

	if template != nil && runOptions.ActiveIsTemplate {
		if err := sceneData.Select(template.Handle); err != nil {
			return err
		}
		if err := sceneData.SetActive(template.Handle); err != nil {
			return err
		}
	}
	return nil
}

// newLogger は標準エラーと任意のログファイルへ出力するロガーを生成する。
func newLogger(errOut io.Writer, logPath string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}),
	}
	closeLogger := func() {}

	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("ログファイルを開けません: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
		closeLogger = func() { file.Close() }
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeLogger, nil
}

// resolveOutputPath は出力シーンパスを解決する。
func resolveOutputPath(inputPath string, outputPath string) (string, error) {
	if strings.TrimSpace(outputPath) == "" {
		dir := filepath.Dir(inputPath)
		ext := filepath.Ext(inputPath)
		base := strings.TrimSuffix(filepath.Base(inputPath), ext)
		return filepath.Join(dir, base+"_replaced"+ext), nil
	}
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".json", ".yaml", ".yml":
		return outputPath, nil
	}
	return "", fmt.Errorf("出力拡張子が未対応です: %s", outputPath)
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}

// consoleProgressReporter は置換進捗を標準出力へ流す。
type consoleProgressReporter struct {
	out io.Writer
}

func (r *consoleProgressReporter) ReportReplaceProgress(event rinteractor.ReplaceProgressEvent) {
	switch event.Type {
	case rinteractor.ReplaceProgressEventTypeSelectionClassified:
		fmt.Fprintf(r.out, "[mu_obj_replace] 置換対象: %d件\n", event.TargetCount)
	case rinteractor.ReplaceProgressEventTypeCopiesMaterialized:
		fmt.Fprintf(r.out, "[mu_obj_replace] コピー生成: %d件\n", event.CopyCount)
	case rinteractor.ReplaceProgressEventTypePlacementTransplanted:
		fmt.Fprintf(r.out, "[mu_obj_replace] 配置移植: %d件\n", event.CopyCount)
	case rinteractor.ReplaceProgressEventTypeReferencesRemapped:
		fmt.Fprintf(r.out, "[mu_obj_replace] 参照書き換え: %d/%d件\n", event.RewriteCount, event.SiteCount)
	case rinteractor.ReplaceProgressEventTypeTargetsDisposed:
		fmt.Fprintf(r.out, "[mu_obj_replace] 対象削除: %d件\n", event.TargetCount)
	}
}
