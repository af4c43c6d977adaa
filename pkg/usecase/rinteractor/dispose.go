// 指示: miu200521358
package rinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

// disposeTargets は書き換え完了後の対象をシーンから削除する。
// 各対象のペイロードは参照カウントを減らし、0になったものだけ破棄される。
// 削除前に独立走査で残存参照を確認し、残っていれば ErrDisposalBlocked を返す。
// コピーは削除された対象の名前を引き継ぐ。
func disposeTargets(scene *model.Scene, mapping *model.ReplacementMapping) (int, error) {
	for _, pair := range mapping.Pairs() {
		target, err := scene.Object(pair.Target)
		if err != nil {
			return 0, err
		}
		if remaining := scene.CountReferences(pair.Target); remaining > 0 {
			return 0, fmt.Errorf("%w: %s への参照が%d件残っています", model.ErrDisposalBlocked, target.Name, remaining)
		}

		targetName := target.Name
		if _, err := scene.RemoveObject(pair.Target); err != nil {
			return 0, err
		}

		copyObject, err := scene.Object(pair.Copy)
		if err != nil {
			return 0, err
		}
		copyObject.Name = targetName
	}
	return mapping.Len(), nil
}
