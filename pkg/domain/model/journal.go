// 指示: miu200521358
package model

import (
	"fmt"
	"time"

	"github.com/tiendc/go-deepcopy"
)

// SceneRecord は1回の編集に対応するアンドゥ記録を表す。
// Before は編集直前のシーン全体の深い複製を保持する。
type SceneRecord struct {
	Action     string
	Before     *Scene
	RecordedAt time.Time
}

// SceneJournal はシーン編集のアンドゥ履歴を表す。
type SceneJournal struct {
	records []*SceneRecord
}

// NewSceneJournal は空のアンドゥ履歴を生成する。
func NewSceneJournal() *SceneJournal {
	return &SceneJournal{}
}

// Len は記録数を返す。
func (j *SceneJournal) Len() int {
	return len(j.records)
}

// CanUndo はアンドゥ可能かを返す。
func (j *SceneJournal) CanUndo() bool {
	return len(j.records) > 0
}

// Undo は直近の記録を取り出し、シーンを編集前状態へ戻す。
// 戻した編集の説明を返す。
func (j *SceneJournal) Undo(scene *Scene) (string, error) {
	if scene == nil {
		return "", fmt.Errorf("アンドゥ対象シーンが未設定です")
	}
	if len(j.records) == 0 {
		return "", fmt.Errorf("アンドゥ可能な記録がありません")
	}
	record := j.records[len(j.records)-1]
	j.records = j.records[:len(j.records)-1]
	*scene = *record.Before
	return record.Action, nil
}

// Begin は編集前状態を退避してトランザクションを開始する。
func (j *SceneJournal) Begin(scene *Scene, action string) (*SceneTransaction, error) {
	if scene == nil {
		return nil, fmt.Errorf("編集対象シーンが未設定です")
	}
	before, err := CloneScene(scene)
	if err != nil {
		return nil, fmt.Errorf("編集前状態の退避に失敗しました: %w", err)
	}
	return &SceneTransaction{
		journal: j,
		scene:   scene,
		action:  action,
		before:  before,
	}, nil
}

// SceneTransaction は1アンドゥ単位のアトミックな編集区間を表す。
// Commit で履歴へ1記録だけ追加し、Rollback で全変更を破棄する。
type SceneTransaction struct {
	journal *SceneJournal
	scene   *Scene
	action  string
	before  *Scene
	closed  bool
}

// Commit は編集を確定し、アンドゥ記録を1件追加する。
func (tx *SceneTransaction) Commit() error {
	if tx.closed {
		return fmt.Errorf("トランザクションは終了済みです: %s", tx.action)
	}
	tx.closed = true
	tx.journal.records = append(tx.journal.records, &SceneRecord{
		Action:     tx.action,
		Before:     tx.before,
		RecordedAt: time.Now(),
	})
	return nil
}

// Rollback は編集区間内の全変更を破棄し、シーンを編集前状態へ戻す。
func (tx *SceneTransaction) Rollback() error {
	if tx.closed {
		return fmt.Errorf("トランザクションは終了済みです: %s", tx.action)
	}
	tx.closed = true
	*tx.scene = *tx.before
	return nil
}

// CloneScene はシーン全体の深い複製を生成する。
func CloneScene(src *Scene) (*Scene, error) {
	if src == nil {
		return nil, fmt.Errorf("複製対象シーンが未設定です")
	}
	dst := &Scene{}
	if err := deepcopy.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("シーンの複製に失敗しました: %w", err)
	}
	return dst, nil
}
