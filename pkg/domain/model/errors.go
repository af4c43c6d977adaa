// 指示: miu200521358
package model

import "errors"

// 置換処理の失敗種別。いずれも %w で包んで伝播させる。
var (
	// ErrInsufficientSelection は選択オブジェクト数の不足を表す。
	ErrInsufficientSelection = errors.New("選択オブジェクトが2つ未満です")
	// ErrNoActiveTemplate はアクティブオブジェクトが選択に含まれないことを表す。
	ErrNoActiveTemplate = errors.New("アクティブオブジェクトが選択に含まれていません")
	// ErrPayloadDuplicationFailed はデータペイロードを複製できないことを表す。
	ErrPayloadDuplicationFailed = errors.New("データペイロードを複製できません")
	// ErrDisposalBlocked は書き換え後も削除対象への参照が残っていることを表す。
	ErrDisposalBlocked = errors.New("削除対象オブジェクトへの参照が残っています")
)
