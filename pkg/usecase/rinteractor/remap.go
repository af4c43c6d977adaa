// 指示: miu200521358
package rinteractor

import (
	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
)

// remapReferences は完成済み対応表に基づき全参照サイトを一括で書き換える。
// 走査は全対応確定後の1パスだけ行い、同一サイトを二度書き換えることはない。
// 走査したサイト数と書き換えたサイト数を返す。
func remapReferences(scene *model.Scene, registry *model.SiteRegistry, mapping *model.ReplacementMapping) (int, int) {
	sites := registry.CollectAll(scene)
	rewritten := 0
	for _, site := range sites {
		replacement, ok := mapping.CopyFor(site.Target())
		if !ok {
			continue
		}
		site.Rewrite(replacement)
		rewritten++
	}
	return len(sites), rewritten
}
