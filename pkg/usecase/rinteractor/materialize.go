// 指示: miu200521358
package rinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/tiendc/go-deepcopy"
)

// materializeCopy はテンプレートの設定を引き継いだ新規オブジェクトを生成する。
// 生成直後のコピーはコレクション未所属・親なしで、配置は移植段階に委ねる。
// テンプレートと対象は変更しない。
func materializeCopy(scene *model.Scene, template *model.SceneObject, uniqueData bool) (*model.SceneObject, error) {
	payloadID := template.Payload
	if uniqueData && payloadID != "" {
		duplicated, err := scene.Payloads.Duplicate(payloadID)
		if err != nil {
			return nil, err
		}
		payloadID = duplicated.ID
	}

	copyObject, err := scene.CreateObject(template.Name, payloadID)
	if err != nil {
		return nil, err
	}

	copyObject.Transform = template.Transform
	copyObject.Visible = template.Visible
	if err := deepcopy.Copy(&copyObject.Settings, template.Settings); err != nil {
		return nil, fmt.Errorf("オブジェクト設定の複製に失敗しました: %w", err)
	}
	if err := deepcopy.Copy(&copyObject.Constraints, template.Constraints); err != nil {
		return nil, fmt.Errorf("コンストレイントの複製に失敗しました: %w", err)
	}
	if err := deepcopy.Copy(&copyObject.Modifiers, template.Modifiers); err != nil {
		return nil, fmt.Errorf("モディファイアの複製に失敗しました: %w", err)
	}
	return copyObject, nil
}
