// 指示: miu200521358
package rinteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/miu200521358/mu_obj_replace/pkg/usecase/port/routput"
)

// SaveScene はシーンデータを保存する。
func (uc *ReplaceUsecase) SaveScene(rep routput.ISceneWriter, path string, sceneData *model.Scene, opts SaveOptions) error {
	writer := rep
	if writer == nil {
		writer = uc.sceneWriter
	}
	if writer == nil {
		return fmt.Errorf("シーン保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if sceneData == nil {
		return fmt.Errorf("保存対象シーンが未設定です")
	}
	return writer.Save(path, sceneData, opts)
}
