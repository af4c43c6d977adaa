// 指示: miu200521358
package rinteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"gopkg.in/Knetic/govaluate.v3"
)

// SelectTargetsByExpression は式に一致するオブジェクトを登録順に選択状態へ加える。
// 式では name / visible / selected / collections / payload_kind を参照できる。
// 例: `name =~ "Decoy.*" && visible`
func SelectTargetsByExpression(scene *model.Scene, expression string) (int, error) {
	if scene == nil {
		return 0, fmt.Errorf("選択対象シーンが未設定です")
	}
	if strings.TrimSpace(expression) == "" {
		return 0, fmt.Errorf("選択式が未指定です")
	}
	evaluable, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return 0, fmt.Errorf("選択式の解析に失敗しました: %w", err)
	}

	count := 0
	for _, object := range scene.ObjectsInOrder() {
		parameters := map[string]interface{}{
			"name":        object.Name,
			"visible":     object.Visible,
			"selected":    object.Selected,
			"collections": strings.Join(scene.CollectionsOf(object.Handle), ","),
		}
		parameters["payload_kind"] = ""
		if payload, err := scene.Payloads.Get(object.Payload); err == nil {
			parameters["payload_kind"] = string(payload.Kind)
		}

		value, err := evaluable.Evaluate(parameters)
		if err != nil {
			return count, fmt.Errorf("選択式の評価に失敗しました (%s): %w", object.Name, err)
		}
		matched, ok := value.(bool)
		if !ok {
			return count, fmt.Errorf("選択式の結果が真偽値ではありません: %v", value)
		}
		if !matched {
			continue
		}
		if err := scene.Select(object.Handle); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
