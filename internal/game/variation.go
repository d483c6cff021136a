package game

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
)

// NodeID addresses a Variation inside its Game.
type NodeID int

// NoNode is the parent of the root variation.
const NoNode NodeID = -1

// HistoryEntry is one ply played inside a variation.
type HistoryEntry struct {
	// Context holds the move and the state it overwrote.
	Context engine.MoveContext

	// Children are the lines branching at this ply: variations replace
	// this move, continuations follow it.
	Children []NodeID

	// Annotations are the comments and glyphs written after this move.
	Annotations []chess.Annotation
}

// Move returns the move played.
func (e *HistoryEntry) Move() chess.Move {
	return e.Context.Move
}

// Variation is one line of play: a position plus the linear history of
// moves made in it. The position always reflects the move under the cursor.
type Variation struct {
	ID     NodeID
	Parent NodeID

	// BranchPly is the index of the parent entry this line hangs from.
	BranchPly int

	// Continuation lines start after the parent entry rather than
	// replacing it.
	Continuation bool

	position *engine.Position
	history  []HistoryEntry
	cursor   int

	// leading holds annotations written before the first move.
	leading []chess.Annotation
}

// newRootVariation creates a parentless variation starting at pos.
func newRootVariation(pos *engine.Position) *Variation {
	return &Variation{
		ID:       0,
		Parent:   NoNode,
		position: pos,
		cursor:   -1,
	}
}

// Position returns the board at the cursor.
func (v *Variation) Position() *engine.Position {
	return v.position
}

// Len returns the number of plies recorded.
func (v *Variation) Len() int {
	return len(v.history)
}

// Cursor returns the index of the selected ply, -1 before the first.
func (v *Variation) Cursor() int {
	return v.cursor
}

// AtTail reports whether the cursor is on the last recorded ply.
func (v *Variation) AtTail() bool {
	return v.cursor == len(v.history)-1
}

// Entry returns the ply at index i.
func (v *Variation) Entry(i int) *HistoryEntry {
	return &v.history[i]
}

// Slot returns the annotations of slot i: slot 0 precedes the first move,
// slot i+1 follows move i.
func (v *Variation) Slot(i int) []chess.Annotation {
	if i == 0 {
		return v.leading
	}
	if i-1 < len(v.history) {
		return v.history[i-1].Annotations
	}
	return nil
}

// annotate appends to the slot after the cursor.
func (v *Variation) annotate(a chess.Annotation) {
	if v.cursor < 0 {
		v.leading = append(v.leading, a)
		return
	}
	v.history[v.cursor].Annotations = append(v.history[v.cursor].Annotations, a)
}

// startsWith reports whether the first ply of the line is m or a wildcard.
func (v *Variation) startsWith(m chess.Move) bool {
	if len(v.history) == 0 {
		return false
	}
	first := v.history[0].Move()
	return first.SAN == m.SAN || first.Wildcard
}

// StartMoveNumber returns the full-move number before the first ply.
func (v *Variation) StartMoveNumber() int {
	if len(v.history) > 0 {
		return v.history[0].Context.MoveNumber
	}
	return v.position.MoveNumber()
}

// PositionAt returns a copy of the board after ply i; -1 gives the start
// of the line. The variation itself is not moved.
func (v *Variation) PositionAt(i int) (*engine.Position, bool) {
	if i < -1 || i > len(v.history)-1 {
		return nil, false
	}
	pos := v.position.Clone()
	walk(pos, v.history, v.cursor, i)
	return pos, true
}

// appendMove plays m after the cursor, dropping any recorded plies beyond it.
func (v *Variation) appendMove(m chess.Move) {
	ctx := v.position.Apply(m)
	v.position.RecordPosition()
	v.history = append(v.history[:v.cursor+1], HistoryEntry{Context: ctx})
	v.cursor++
}

// undoCurrentMove takes back the ply under the cursor and drops it and
// everything after it.
func (v *Variation) undoCurrentMove() bool {
	if v.cursor < 0 {
		return false
	}
	entry := v.history[v.cursor]
	v.history = v.history[:v.cursor]
	v.cursor--

	v.position.ForgetPosition()
	v.position.Undo(entry.Context)
	return true
}

// SelectMove moves the cursor to ply i, replaying or taking back the plies
// in between. It returns false for an index outside -1..Len()-1.
func (v *Variation) SelectMove(i int) bool {
	if i == v.cursor {
		return true
	}
	if i < -1 || i > len(v.history)-1 {
		return false
	}
	return v.ReplayToPly(i + 1)
}

// Next selects the following ply.
func (v *Variation) Next() bool {
	return v.SelectMove(v.cursor + 1)
}

// Prev selects the preceding ply.
func (v *Variation) Prev() bool {
	return v.SelectMove(v.cursor - 1)
}

// ReplayToPly re-homes the cursor so that n plies of this line are on the
// board.
func (v *Variation) ReplayToPly(n int) bool {
	target := n - 1
	if target < -1 || target > len(v.history)-1 {
		return false
	}
	walk(v.position, v.history, v.cursor, target)
	v.cursor = target
	return true
}

// walk takes pos from the state after history[from] to the state after
// history[to]; -1 stands for the state before history[0]. The repetition
// table follows the board.
func walk(pos *engine.Position, history []HistoryEntry, from, to int) {
	for ; from < to; from++ {
		pos.Apply(history[from+1].Move())
		pos.RecordPosition()
	}
	for ; from > to; from-- {
		pos.ForgetPosition()
		pos.Undo(history[from].Context)
	}
}
