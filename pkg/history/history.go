// Package history implements linear undo/redo over whole-document snapshots.
// A snapshot is an opaque serialized copy of the full working document,
// tagged with the page that was being viewed when it was taken; the stack
// never inspects the payload.
package history

// Snapshot is one saved document state.
type Snapshot struct {
	PageIndex int    // page viewed when the snapshot was taken
	Data      []byte // opaque serialized document state
}

// Stack is a linear snapshot history. The pointer addresses the snapshot
// matching the current document state; committing after an undo discards the
// redo future.
type Stack struct {
	snaps []Snapshot
	index int // position of the current snapshot, -1 when empty
}

// New returns an empty history stack.
func New() *Stack {
	return &Stack{index: -1}
}

// Commit truncates any snapshots beyond the pointer, appends snap and moves
// the pointer to it.
func (s *Stack) Commit(snap Snapshot) {
	s.snaps = append(s.snaps[:s.index+1], snap)
	s.index = len(s.snaps) - 1
}

// Undo moves the pointer one snapshot back and returns the state to restore.
// At the first snapshot (or on an empty stack) it reports false and changes
// nothing.
func (s *Stack) Undo() (Snapshot, bool) {
	if s.index <= 0 {
		return Snapshot{}, false
	}
	s.index--
	return s.snaps[s.index], true
}

// Redo moves the pointer one snapshot forward and returns the state to
// restore. At the last snapshot it reports false and changes nothing.
func (s *Stack) Redo() (Snapshot, bool) {
	if s.index < 0 || s.index >= len(s.snaps)-1 {
		return Snapshot{}, false
	}
	s.index++
	return s.snaps[s.index], true
}

// Len returns the number of snapshots retained.
func (s *Stack) Len() int { return len(s.snaps) }

// Index returns the pointer position, -1 when the stack is empty.
func (s *Stack) Index() int { return s.index }

// Reset drops all snapshots, for when a new document is loaded.
func (s *Stack) Reset() {
	s.snaps = nil
	s.index = -1
}
