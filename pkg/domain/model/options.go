// 指示: miu200521358
package model

// RunOptions は置換実行時のオプションを表す。
// 実行中は読み取り専用として扱う。
type RunOptions struct {
	// UniqueData は true のときコピーごとにペイロードを複製する。
	UniqueData bool `toml:"unique_data" json:"unique_data" yaml:"unique_data"`
	// ActiveIsTemplate は true のときアクティブオブジェクトをテンプレートにする。
	// false のときは最初に選択されたオブジェクトをテンプレートにする。
	ActiveIsTemplate bool `toml:"active_is_template" json:"active_is_template" yaml:"active_is_template"`
	// MatchScale は true のときコピーへ対象のスケールを引き継がせる。
	MatchScale bool `toml:"match_scale" json:"match_scale" yaml:"match_scale"`
}

// DefaultRunOptions は既定の実行オプションを返す。
func DefaultRunOptions() RunOptions {
	return RunOptions{ActiveIsTemplate: true}
}
