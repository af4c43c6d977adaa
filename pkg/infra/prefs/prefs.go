// 指示: miu200521358
// Package prefs は置換オプションの永続化を提供する。
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/miu200521358/mu_obj_replace/pkg/domain/model"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPreferencePath は既定の設定ファイルパスを返す。
func DefaultPreferencePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("ホームディレクトリの解決に失敗しました: %w", err)
	}
	return filepath.Join(home, ".config", "mu_obj_replace", "options.toml"), nil
}

// PreferenceStore は置換オプションをTOMLファイルへ保存する。
type PreferenceStore struct {
	path string
}

// NewPreferenceStore はPreferenceStoreを生成する。
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// Path は設定ファイルパスを返す。
func (s *PreferenceStore) Path() string {
	return s.path
}

// Load は保存済みオプションを読み込む。
// ファイルが存在しない場合は既定値を返す。
func (s *PreferenceStore) Load() (model.RunOptions, error) {
	options := model.DefaultRunOptions()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return options, nil
		}
		return options, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	if err := toml.Unmarshal(data, &options); err != nil {
		return model.DefaultRunOptions(), fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
	}
	return options, nil
}

// Save はオプションを保存する。保存先ディレクトリは必要に応じて作成する。
func (s *PreferenceStore) Save(options model.RunOptions) error {
	data, err := toml.Marshal(options)
	if err != nil {
		return fmt.Errorf("設定の生成に失敗しました: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("設定ディレクトリの作成に失敗しました: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("設定ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}
