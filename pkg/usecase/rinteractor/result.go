// 指示: miu200521358
package rinteractor

import (
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/port/routput"
)

// SceneData は置換対象シーンを表す。
type SceneData = model.Scene

// SaveOptions は保存時オプションを表す。
type SaveOptions = routput.SaveOptions

// ReplaceProgressEventType は置換処理の進捗イベント種別を表す。
type ReplaceProgressEventType string

const (
	// ReplaceProgressEventTypeSelectionClassified は選択分類完了イベントを表す。
	ReplaceProgressEventTypeSelectionClassified ReplaceProgressEventType = "selection_classified"
	// ReplaceProgressEventTypeCopiesMaterialized はコピー生成完了イベントを表す。
	ReplaceProgressEventTypeCopiesMaterialized ReplaceProgressEventType = "copies_materialized"
	// ReplaceProgressEventTypePlacementTransplanted は配置移植完了イベントを表す。
	ReplaceProgressEventTypePlacementTransplanted ReplaceProgressEventType = "placement_transplanted"
	// ReplaceProgressEventTypeReferencesRemapped は参照書き換え完了イベントを表す。
	ReplaceProgressEventTypeReferencesRemapped ReplaceProgressEventType = "references_remapped"
	// ReplaceProgressEventTypeTargetsDisposed は対象削除完了イベントを表す。
	ReplaceProgressEventTypeTargetsDisposed ReplaceProgressEventType = "targets_disposed"
)

// ReplaceProgressEvent は置換処理の進捗イベントを表す。
type ReplaceProgressEvent struct {
	Type         ReplaceProgressEventType
	TargetCount  int
	CopyCount    int
	SiteCount    int
	RewriteCount int
}

// IReplaceProgressReporter は置換処理の進捗通知契約を表す。
type IReplaceProgressReporter interface {
	// ReportReplaceProgress は置換処理の進捗を通知する。
	ReportReplaceProgress(event ReplaceProgressEvent)
}

// ReplaceRequest はオブジェクト置換要求を表す。
type ReplaceRequest struct {
	Scene            *model.Scene
	Options          model.RunOptions
	ProgressReporter IReplaceProgressReporter
}

// ReplaceResult はオブジェクト置換結果を表す。
type ReplaceResult struct {
	// ReplacedCount は置き換えたオブジェクト数を表す。
	ReplacedCount int
	// Linked はコピーがテンプレートとペイロードを共有しているかを表す。
	Linked bool
	// Template はテンプレートオブジェクトのハンドルを表す。
	Template model.ObjectHandle
	// NewHandles は生成したコピーのハンドル列を対象順で表す。
	NewHandles []model.ObjectHandle
}

// reportReplaceProgress は置換処理の進捗を通知する。
func reportReplaceProgress(reporter IReplaceProgressReporter, event ReplaceProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportReplaceProgress(event)
}
