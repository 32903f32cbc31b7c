package editable

import "github.com/luxkit/gldf/gldf"

// The history is a stack of whole-document JSON snapshots with a cursor.
// historyIndex == len(history) means the live document sits past the last
// snapshot; undo from there first parks the live state so redo can come
// back to it.

// Checkpoint records the current document state. Call it before a change
// that should be undoable. Any redo tail past the cursor is discarded,
// and the oldest snapshot is evicted once the stack exceeds the limit.
func (s *Session) Checkpoint() {
	snapshot, err := s.Product.ToJSON()
	if err != nil {
		s.log.Warn("checkpoint skipped", "error", err)
		return
	}

	if s.historyIndex < len(s.history) {
		s.history = s.history[:s.historyIndex]
	}
	s.history = append(s.history, snapshot)
	s.historyIndex = len(s.history)

	if len(s.history) > s.limit {
		s.history = s.history[1:]
		s.historyIndex = len(s.history)
	}
}

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo or the snapshot cannot be restored.
func (s *Session) Undo() bool {
	if s.historyIndex == 0 {
		return false
	}
	if s.historyIndex == len(s.history) {
		if snapshot, err := s.Product.ToJSON(); err == nil {
			s.history = append(s.history, snapshot)
		}
	}
	s.historyIndex--
	return s.restore(s.historyIndex)
}

// Redo re-applies the next snapshot after an undo. It reports false when
// there is nothing to redo.
func (s *Session) Redo() bool {
	if s.historyIndex >= len(s.history)-1 {
		return false
	}
	s.historyIndex++
	return s.restore(s.historyIndex)
}

func (s *Session) restore(index int) bool {
	if index < 0 || index >= len(s.history) {
		return false
	}
	restored, err := loadSnapshot(s.history[index], s.Product.Path)
	if err != nil {
		s.log.Warn("snapshot restore failed", "index", index, "error", err)
		return false
	}
	s.Product = restored
	s.modified = true
	return true
}

// CanUndo reports whether Undo would restore a state.
func (s *Session) CanUndo() bool { return s.historyIndex > 0 }

// CanRedo reports whether Redo would restore a state.
func (s *Session) CanRedo() bool { return s.historyIndex < len(s.history)-1 }

// ClearHistory drops all snapshots.
func (s *Session) ClearHistory() {
	s.history = nil
	s.historyIndex = 0
}

// HistoryDepth returns the number of snapshots currently held.
func (s *Session) HistoryDepth() int { return len(s.history) }

// loadSnapshot parses a snapshot back into a product, re-attaching the
// origin path which is not part of the serialized form.
func loadSnapshot(snapshot []byte, path string) (*gldf.Product, error) {
	p, err := gldf.FromJSON(snapshot)
	if err != nil {
		return nil, err
	}
	p.Path = path
	return p, nil
}
