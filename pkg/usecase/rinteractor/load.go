// 指示: miu200521358
package rinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/port/routput"
)

// LoadScene はシーンデータを読み込む。
func (uc *ReplaceUsecase) LoadScene(rep routput.ISceneReader, path string) (*model.Scene, error) {
	repo := rep
	if repo == nil {
		repo = uc.sceneReader
	}
	if repo == nil {
		return nil, fmt.Errorf("シーン読み込みリポジトリが設定されていません")
	}
	return repo.Load(path)
}
