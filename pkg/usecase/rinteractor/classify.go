// 指示: miu200521358
package rinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

// classifySelection は選択集合をテンプレート1つと対象列に分割する。
// 対象列は選択時系列順を保ち、テンプレートを含まない。副作用は無い。
func classifySelection(scene *model.Scene, options model.RunOptions) (*model.SceneObject, []*model.SceneObject, error) {
	selected := scene.SelectedObjects()
	if len(selected) < 2 {
		return nil, nil, fmt.Errorf("%w: 選択数=%d", model.ErrInsufficientSelection, len(selected))
	}

	var template *model.SceneObject
	if options.ActiveIsTemplate {
		for _, object := range selected {
			if object.Handle == scene.Active {
				template = object
				break
			}
		}
		if template == nil {
			return nil, nil, fmt.Errorf("%w: active=%s", model.ErrNoActiveTemplate, scene.Active)
		}
	} else {
		template = selected[0]
	}

	targets := make([]*model.SceneObject, 0, len(selected)-1)
	for _, object := range selected {
		if object.Handle != template.Handle {
			targets = append(targets, object)
		}
	}
	return template, targets, nil
}
