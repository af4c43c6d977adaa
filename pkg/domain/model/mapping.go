// 指示: miu200521358
package model

import "fmt"

// ReplacementPair は削除対象と新規コピーの対応を表す。
type ReplacementPair struct {
	Target ObjectHandle
	Copy   ObjectHandle
}

// ReplacementMapping は削除対象から新規コピーへの順序付き対応表を表す。
// 各対象は1回だけ登場し、同一コピーの重複登録は許さない。
type ReplacementMapping struct {
	pairs    []ReplacementPair
	byTarget map[ObjectHandle]ObjectHandle
	copies   map[ObjectHandle]struct{}
}

// NewReplacementMapping は空の対応表を生成する。
func NewReplacementMapping() *ReplacementMapping {
	return &ReplacementMapping{
		byTarget: map[ObjectHandle]ObjectHandle{},
		copies:   map[ObjectHandle]struct{}{},
	}
}

// Append は対応を末尾へ追加する。対象またはコピーが重複する場合は失敗する。
func (m *ReplacementMapping) Append(target, copyHandle ObjectHandle) error {
	if _, ok := m.byTarget[target]; ok {
		return fmt.Errorf("削除対象が重複しています: %s", target)
	}
	if _, ok := m.copies[copyHandle]; ok {
		return fmt.Errorf("コピーが重複しています: %s", copyHandle)
	}
	m.pairs = append(m.pairs, ReplacementPair{Target: target, Copy: copyHandle})
	m.byTarget[target] = copyHandle
	m.copies[copyHandle] = struct{}{}
	return nil
}

// CopyFor は対象に対応するコピーを返す。
func (m *ReplacementMapping) CopyFor(target ObjectHandle) (ObjectHandle, bool) {
	copyHandle, ok := m.byTarget[target]
	return copyHandle, ok
}

// HasTarget は対象が登録済みかを返す。
func (m *ReplacementMapping) HasTarget(target ObjectHandle) bool {
	_, ok := m.byTarget[target]
	return ok
}

// Pairs は登録順の対応列を返す。
func (m *ReplacementMapping) Pairs() []ReplacementPair {
	pairs := make([]ReplacementPair, len(m.pairs))
	copy(pairs, m.pairs)
	return pairs
}

// CopyHandles は登録順のコピーハンドル列を返す。
func (m *ReplacementMapping) CopyHandles() []ObjectHandle {
	handles := make([]ObjectHandle, 0, len(m.pairs))
	for _, pair := range m.pairs {
		handles = append(handles, pair.Copy)
	}
	return handles
}

// Len は登録済み対応数を返す。
func (m *ReplacementMapping) Len() int {
	return len(m.pairs)
}
