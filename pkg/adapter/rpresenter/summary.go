// 指示: miu200521358
// Package rpresenter は置換結果を表示用文字列へ整形する。
package rpresenter

import (
	"fmt"

	"github.com/miu200521358/mu_obj_replace/pkg/adapter/rpresenter/messages"
)

// BuildReplaceSummary は置換結果の要約文を組み立てる。
// データを複製した場合と共有参照のままの場合で文面を切り替える。
func BuildReplaceSummary(targetCount int, uniqueData bool, templateName string) string {
	if uniqueData {
		return fmt.Sprintf(messages.SummaryReplaceWithCopy, targetCount, templateName)
	}
	return fmt.Sprintf(messages.SummaryReplaceWithReference, targetCount, templateName)
}
