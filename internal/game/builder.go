package game

import (
	"fmt"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// The methods in this file grow the tree in reading order, the way PGN
// movetext describes it. Moves are appended at the tail of the selected
// line without the branch matching MakeMove does.

// AppendSAN resolves san on the selected board and appends it.
func (g *Game) AppendSAN(san string) (chess.Move, error) {
	v := g.Current()
	m, err := v.position.FromSAN(san)
	if err != nil {
		return chess.Move{}, err
	}
	v.appendMove(m)
	return m, nil
}

// OpenBranch starts a variation, or a continuation, hanging from the last
// move of the selected line and selects it.
func (g *Game) OpenBranch(continuation bool) error {
	v := g.Current()
	if v.Len() == 0 {
		return fmt.Errorf("no move to branch from: %w", errors.ErrParseFailure)
	}
	if !v.AtTail() {
		v.SelectMove(v.Len() - 1)
	}
	child := g.fork(v.ID, v.Len()-1, continuation)
	g.current = child.ID
	return nil
}

// CloseBranch selects the parent of the selected line. It returns false on
// the main line.
func (g *Game) CloseBranch() bool {
	v := g.Current()
	if v.Parent == NoNode {
		return false
	}
	g.current = v.Parent
	return true
}

// Depth returns how many branches enclose the selected line.
func (g *Game) Depth() int {
	depth := 0
	for v := g.Current(); v.Parent != NoNode; v = g.nodes[v.Parent] {
		depth++
	}
	return depth
}

// Annotate attaches a comment or glyph after the selected move, or before
// the first move when none is selected.
func (g *Game) Annotate(a chess.Annotation) {
	g.Current().annotate(a)
}
