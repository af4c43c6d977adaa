// 指示: miu200521358
package rinteractor

import (
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/port/routput"
)

// ReplaceUsecaseDeps はオブジェクト置換ユースケースの依存を表す。
type ReplaceUsecaseDeps struct {
	SceneReader  routput.ISceneReader
	SceneWriter  routput.ISceneWriter
	SiteRegistry *model.SiteRegistry
	Journal      *model.SceneJournal
}

// ReplaceUsecase はテンプレート複製によるオブジェクト置換処理をまとめたユースケースを表す。
type ReplaceUsecase struct {
	sceneReader  routput.ISceneReader
	sceneWriter  routput.ISceneWriter
	siteRegistry *model.SiteRegistry
	journal      *model.SceneJournal
}

// NewReplaceUsecase はオブジェクト置換ユースケースを生成する。
// サイト登録簿とアンドゥ履歴は未指定なら既定のものを使う。
func NewReplaceUsecase(deps ReplaceUsecaseDeps) *ReplaceUsecase {
	registry := deps.SiteRegistry
	if registry == nil {
		registry = model.DefaultSiteRegistry()
	}
	journal := deps.Journal
	if journal == nil {
		journal = model.NewSceneJournal()
	}
	return &ReplaceUsecase{
		sceneReader:  deps.SceneReader,
		sceneWriter:  deps.SceneWriter,
		siteRegistry: registry,
		journal:      journal,
	}
}

// Journal はアンドゥ履歴を返す。
func (uc *ReplaceUsecase) Journal() *model.SceneJournal {
	return uc.journal
}
