// 指示: miu200521358
package routput

import "github.com/miu200521358/mu_obj_replace/pkg/domain/model"

// ISceneReader はシーン読み込みの契約を表す。
type ISceneReader interface {
	// CanLoad はパスの読み込み可否を判定する。
	CanLoad(path string) bool
	// Load はシーンデータを読み込む。
	Load(path string) (*model.Scene, error)
}

// ISceneWriter はシーン書き込みの契約を表す。
type ISceneWriter interface {
	// CanSave はパスの書き込み可否を判定する。
	CanSave(path string) bool
	// Save はシーンデータを保存する。
	Save(path string, sceneData *model.Scene, options SaveOptions) error
}

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	// Indent はJSON保存時に整形出力を行う。
	Indent bool
}
