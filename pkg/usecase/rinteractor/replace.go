// 指示: miu200521358
package rinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

// Replace は選択中のオブジェクトをテンプレートの複製で置き換える。
// 分類→コピー生成→配置移植→参照書き換え→対象削除を1つのアンドゥ記録として
// 実行し、途中で失敗した場合はシーンを編集前状態へ戻す。
func (uc *ReplaceUsecase) Replace(request ReplaceRequest) (*ReplaceResult, error) {
	scene := request.Scene
	if scene == nil {
		return nil, fmt.Errorf("置換対象シーンが未設定です")
	}

	template, targets, err := classifySelection(scene, request.Options)
	if err != nil {
		return nil, err
	}
	reportReplaceProgress(request.ProgressReporter, ReplaceProgressEvent{
		Type:        ReplaceProgressEventTypeSelectionClassified,
		TargetCount: len(targets),
	})

	action := fmt.Sprintf("オブジェクト置換: %d件 (テンプレート: %s)", len(targets), template.Name)
	tx, err := uc.journal.Begin(scene, action)
	if err != nil {
		return nil, fmt.Errorf("編集トランザクションの開始に失敗しました: %w", err)
	}

	result, err := uc.replaceInTransaction(scene, template, targets, request)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return nil, fmt.Errorf("ロールバックに失敗しました: %v (原因: %w)", rollbackErr, err)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("編集トランザクションの確定に失敗しました: %w", err)
	}
	return result, nil
}

// replaceInTransaction はトランザクション内で置換の各段階を順に実行する。
func (uc *ReplaceUsecase) replaceInTransaction(scene *model.Scene, template *model.SceneObject, targets []*model.SceneObject, request ReplaceRequest) (*ReplaceResult, error) {
	mapping := model.NewReplacementMapping()
	for _, target := range targets {
		copyObject, err := materializeCopy(scene, template, request.Options.UniqueData)
		if err != nil {
			return nil, err
		}
		if err := mapping.Append(target.Handle, copyObject.Handle); err != nil {
			return nil, err
		}
	}
	reportReplaceProgress(request.ProgressReporter, ReplaceProgressEvent{
		Type:      ReplaceProgressEventTypeCopiesMaterialized,
		CopyCount: mapping.Len(),
	})

	for _, pair := range mapping.Pairs() {
		target, err := scene.Object(pair.Target)
		if err != nil {
			return nil, err
		}
		copyObject, err := scene.Object(pair.Copy)
		if err != nil {
			return nil, err
		}
		if err := transplantPlacement(scene, template, target, copyObject, request.Options.MatchScale); err != nil {
			return nil, err
		}
	}
	reportReplaceProgress(request.ProgressReporter, ReplaceProgressEvent{
		Type:      ReplaceProgressEventTypePlacementTransplanted,
		CopyCount: mapping.Len(),
	})

	siteCount, rewriteCount := remapReferences(scene, uc.siteRegistry, mapping)
	reportReplaceProgress(request.ProgressReporter, ReplaceProgressEvent{
		Type:         ReplaceProgressEventTypeReferencesRemapped,
		SiteCount:    siteCount,
		RewriteCount: rewriteCount,
	})

	disposed, err := disposeTargets(scene, mapping)
	if err != nil {
		return nil, err
	}
	reportReplaceProgress(request.ProgressReporter, ReplaceProgressEvent{
		Type:        ReplaceProgressEventTypeTargetsDisposed,
		TargetCount: disposed,
	})

	if err := applyResultSelection(scene, template, mapping); err != nil {
		return nil, err
	}

	return &ReplaceResult{
		ReplacedCount: disposed,
		Linked:        !request.Options.UniqueData,
		Template:      template.Handle,
		NewHandles:    mapping.CopyHandles(),
	}, nil
}

// applyResultSelection は置換後の選択状態を整える。
// 選択状態を引き継いだコピーを対象順で選択し直し、テンプレートを
// 選択済みかつアクティブにする。
func applyResultSelection(scene *model.Scene, template *model.SceneObject, mapping *model.ReplacementMapping) error {
	selectedCopies := []model.ObjectHandle{}
	for _, handle := range mapping.CopyHandles() {
		copyObject, err := scene.Object(handle)
		if err != nil {
			return err
		}
		if copyObject.Selected {
			selectedCopies = append(selectedCopies, handle)
		}
	}

	scene.ClearSelection()
	for _, handle := range selectedCopies {
		if err := scene.Select(handle); err != nil {
			return err
		}
	}
	if err := scene.Select(template.Handle); err != nil {
		return err
	}
	return scene.SetActive(template.Handle)
}
