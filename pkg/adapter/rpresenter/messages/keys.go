// 指示: miu200521358
// Package messages は置換結果の表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	MessageLoadFailed      = "シーン読み込みに失敗しました"
	MessageSaveFailed      = "シーン保存に失敗しました"
	MessageReplaceFailed   = "置換に失敗しました"
	MessageTemplateMissing = "テンプレートオブジェクトが見つかりません"
	MessageTargetMissing   = "置換対象オブジェクトが見つかりません"

	SummaryReplaceWithCopy      = "%d個のオブジェクトを %s の複製で置き換え"
	SummaryReplaceWithReference = "%d個のオブジェクトを %s への参照で置き換え"

	LogLoadSuccess    = "シーン読み込み成功"
	LogSaveSuccess    = "シーン保存成功"
	LogReplaceSuccess = "置換成功"
)
