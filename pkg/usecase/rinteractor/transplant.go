// 指示: miu200521358
package rinteractor

import (
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

// transplantPlacement は対象の配置・階層・所属・フラグを新規コピーへ移植する。
// 位置と回転は常に対象から取り、スケールは matchScale に応じて対象または
// テンプレートから取る。対象自身のフラグは削除段階まで変更しない。
// 対象ごとの移植は互いに独立で、適用順に依存しない。
func transplantPlacement(scene *model.Scene, template, target, copyObject *model.SceneObject, matchScale bool) error {
	copyObject.Transform.CopyLocationRotation(target.Transform)
	if matchScale {
		copyObject.Transform.Scale = target.Transform.Scale
	} else {
		copyObject.Transform.Scale = template.Transform.Scale
	}

	if target.Parent != nil {
		link := *target.Parent
		copyObject.Parent = &link
	} else {
		copyObject.Parent = nil
	}

	scene.UnlinkFromAllCollections(copyObject.Handle)
	collections := scene.CollectionsOf(target.Handle)
	if len(collections) == 0 {
		// 無所属の対象は稀だが、コピーがシーンから浮かないようルートへ入れる。
		collections = []string{scene.RootCollection}
	}
	for _, name := range collections {
		if err := scene.LinkToCollection(name, copyObject.Handle); err != nil {
			return err
		}
	}

	copyObject.Visible = target.Visible
	copyObject.Selected = target.Selected
	return nil
}
