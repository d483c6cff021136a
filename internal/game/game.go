// Package game manages a chess game as a tree of variations: a main line,
// alternative lines replacing a move, and continuations following a move.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/eventlog"
)

// Game owns the PGN header and every variation of one game. Variations live
// in an arena and refer to each other by NodeID.
type Game struct {
	ID     uuid.UUID
	Header *chess.Header

	nodes   []*Variation
	current NodeID
	log     *eventlog.Log
}

// Option configures a new Game.
type Option func(*Game)

// WithHeader seeds the header with key/value pairs.
func WithHeader(pairs ...string) Option {
	return func(g *Game) {
		g.Header.AddAll(pairs...)
	}
}

// WithEventLog shares an existing event log with the game.
func WithEventLog(l *eventlog.Log) Option {
	return func(g *Game) {
		g.log = l
	}
}

// New creates a game starting from fen, or from the standard position when
// fen is empty. A non-standard start is recorded in the SetUp and FEN tags.
func New(fen string, opts ...Option) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:     uuid.New(),
		Header: chess.NewHeader(),
		nodes:  []*Variation{newRootVariation(pos)},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = eventlog.New()
	}

	if fen != engine.InitialFEN {
		g.Header.Set(chess.SetUpTag, "1")
		g.Header.Set(chess.FENTag, fen)
	}
	return g, nil
}

// MustNew is like New but panics on an invalid FEN.
func MustNew(fen string, opts ...Option) *Game {
	g, err := New(fen, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Log returns the game's interaction log.
func (g *Game) Log() *eventlog.Log {
	return g.log
}

// Root returns the main line.
func (g *Game) Root() *Variation {
	return g.nodes[0]
}

// Current returns the selected variation.
func (g *Game) Current() *Variation {
	return g.nodes[g.current]
}

// Node returns the variation with the given id.
func (g *Game) Node(id NodeID) *Variation {
	return g.nodes[id]
}

// NumNodes returns the number of variations created, main line included.
func (g *Game) NumNodes() int {
	return len(g.nodes)
}

// Position returns the board at the cursor of the selected variation.
func (g *Game) Position() *engine.Position {
	return g.Current().position
}

// LoadFEN discards every move and restarts the game from fen. On error the
// game is unchanged.
func (g *Game) LoadFEN(fen string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	g.nodes = []*Variation{newRootVariation(pos)}
	g.current = 0
	g.updateSetup()
	return nil
}

// Put places a piece on the selected board.
func (g *Game) Put(piece chess.Piece, sq chess.Square) bool {
	if !g.Position().Put(piece, sq) {
		return false
	}
	g.updateSetup()
	return true
}

// Remove clears a square of the selected board.
func (g *Game) Remove(sq chess.Square) chess.Piece {
	piece := g.Position().Remove(sq)
	g.updateSetup()
	return piece
}

// Get returns the piece on a square of the selected board.
func (g *Game) Get(sq chess.Square) chess.Piece {
	return g.Position().Get(sq)
}

// updateSetup keeps the SetUp and FEN tags in step with the start position
// while no move has been played.
func (g *Game) updateSetup() {
	if len(g.nodes) > 1 || g.Root().Len() > 0 {
		return
	}
	fen := g.Root().position.FEN()
	if fen != engine.InitialFEN {
		g.Header.Set(chess.SetUpTag, "1")
		g.Header.Set(chess.FENTag, fen)
		return
	}
	g.Header.Remove(chess.SetUpTag)
	g.Header.Remove(chess.FENTag)
}

// MakeMove plays a legal move. The move is matched against the legal moves
// of the selected board by origin, destination and promotion.
func (g *Game) MakeMove(m chess.Move) error {
	pos := g.Position()
	if m.Wildcard {
		w, err := pos.FromSAN(chess.NullMoveString)
		if err != nil {
			return err
		}
		g.makeMove(w)
		return nil
	}

	promotion := chess.NoPieceType
	if m.Promotion != chess.Empty {
		promotion = m.Promotion.Type()
	}
	legal, err := pos.FromAlgebraic(m.From.String(), m.To.String(), promotion)
	if err != nil {
		return err
	}
	g.makeMove(legal)
	return nil
}

// MakeMoveFromSAN plays the move written in SAN.
func (g *Game) MakeMoveFromSAN(san string) error {
	m, err := g.Position().FromSAN(san)
	if err != nil {
		g.log.Addf("makeMoveFromSan(%s) --> invalid move", san)
		return err
	}
	g.log.Addf("makeMoveFromSan(%s) --> %s", san, m.SAN)
	g.makeMove(m)
	return nil
}

// MakeMoveFromAlgebraic plays the move between two squares. A promotion
// defaults to a queen when promotion is NoPieceType.
func (g *Game) MakeMoveFromAlgebraic(from, to string, promotion chess.PieceType) error {
	m, err := g.Position().FromAlgebraic(from, to, promotion)
	if err != nil {
		g.log.Addf("makeMoveFromAlgebraic(%s, %s) --> invalid move", from, to)
		return err
	}
	g.log.Addf("makeMoveFromAlgebraic(%s, %s) --> %s", from, to, m.SAN)
	g.makeMove(m)
	return nil
}

// makeMove plays m at the cursor of the selected variation. A move that is
// already recorded next, or that starts an existing branch, is followed
// rather than duplicated; a new move in the middle of a line starts a new
// variation.
func (g *Game) makeMove(m chess.Move) {
	v := g.Current()

	if !v.AtTail() {
		next := v.Entry(v.cursor + 1)
		if next.Move().SAN == m.SAN || m.Wildcard {
			v.Next()
			return
		}
		for _, id := range next.Children {
			if child := g.nodes[id]; !child.Continuation && child.startsWith(m) {
				g.enter(child)
				return
			}
		}
	}

	if v.cursor >= 0 {
		for _, id := range v.Entry(v.cursor).Children {
			if child := g.nodes[id]; child.Continuation && child.startsWith(m) {
				g.enter(child)
				return
			}
		}
	}

	if !v.AtTail() {
		child := g.fork(v.ID, v.cursor+1, false)
		child.appendMove(m)
		g.current = child.ID
		return
	}

	v.appendMove(m)
}

// fork creates a line hanging from entry of the parent. A variation starts
// from the position before that entry, a continuation from the one after it.
func (g *Game) fork(parentID NodeID, entry int, continuation bool) *Variation {
	parent := g.nodes[parentID]
	pos := parent.position.Clone()

	target := entry
	if !continuation {
		target = entry - 1
	}
	walk(pos, parent.history, parent.cursor, target)

	child := &Variation{
		ID:           NodeID(len(g.nodes)),
		Parent:       parentID,
		BranchPly:    entry,
		Continuation: continuation,
		position:     pos,
		cursor:       -1,
	}
	g.nodes = append(g.nodes, child)
	parent.history[entry].Children = append(parent.history[entry].Children, child.ID)
	return child
}

// discard removes the most recently forked line.
func (g *Game) discard(child *Variation) {
	parent := g.nodes[child.Parent]
	entry := &parent.history[child.BranchPly]
	entry.Children = entry.Children[:len(entry.Children)-1]
	g.nodes = g.nodes[:len(g.nodes)-1]
}

// enter selects the first ply of a non-empty child line.
func (g *Game) enter(child *Variation) bool {
	if child.Len() == 0 {
		return false
	}
	g.current = child.ID
	return child.SelectMove(0)
}

// CreateVariationFromSAN starts a line replacing the selected move with the
// move written in san. It is refused for the wildcard, for the move already
// played and for illegal moves; the tree is then unchanged.
func (g *Game) CreateVariationFromSAN(san string) bool {
	g.log.Addf("createVariationFromSan(%s, false)", san)
	return g.createChild(san, false)
}

// CreateContinuationFromSAN starts a line following the selected move. It is
// refused when san is already the next move, for the wildcard when a next
// move exists, and for illegal moves.
func (g *Game) CreateContinuationFromSAN(san string) bool {
	g.log.Addf("createContinuationFromSan(%s)", san)
	return g.createChild(san, true)
}

func (g *Game) createChild(san string, continuation bool) bool {
	v := g.Current()
	if v.cursor < 0 {
		return false
	}

	if continuation {
		if next := v.cursor + 1; next < v.Len() {
			if v.Entry(next).Move().SAN == san || san == chess.NullMoveString {
				return false
			}
		}
	} else if v.Entry(v.cursor).Move().SAN == san || san == chess.NullMoveString {
		return false
	}

	child := g.fork(v.ID, v.cursor, continuation)
	m, err := child.position.FromSAN(san)
	if err != nil {
		g.discard(child)
		return false
	}
	child.appendMove(m)
	g.current = child.ID
	return true
}

// History returns the moves leading to the selected ply, across variation
// boundaries. Wildcards are written "--".
func (g *Game) History() []string {
	var reversed []string

	v := g.Current()
	upto := v.cursor
	for {
		for i := upto; i >= 0; i-- {
			reversed = append(reversed, v.history[i].Move().Text())
		}
		if v.Parent == NoNode {
			break
		}
		upto = v.BranchPly
		if !v.Continuation {
			upto--
		}
		v = g.nodes[v.Parent]
	}

	out := make([]string, len(reversed))
	for i, san := range reversed {
		out[len(reversed)-1-i] = san
	}
	return out
}

// FEN returns the FEN of the selected board.
func (g *Game) FEN() string {
	return g.Position().FEN()
}

// Moves returns the SAN of every legal move on the selected board.
func (g *Game) Moves() []string {
	return g.Position().SANMoves()
}

// Turn returns the side to move on the selected board.
func (g *Game) Turn() chess.Colour {
	return g.Position().Turn()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.Position().InCheck() }

// IsCheckmate reports checkmate on the selected board.
func (g *Game) IsCheckmate() bool { return g.Position().IsCheckmate() }

// IsStalemate reports stalemate on the selected board.
func (g *Game) IsStalemate() bool { return g.Position().IsStalemate() }

// IsDraw reports any draw condition on the selected board.
func (g *Game) IsDraw() bool { return g.Position().IsDraw() }

// IsInsufficientMaterial reports a dead draw by material.
func (g *Game) IsInsufficientMaterial() bool { return g.Position().IsInsufficientMaterial() }

// IsThreefoldRepetition reports a threefold repetition up to the cursor.
func (g *Game) IsThreefoldRepetition() bool { return g.Position().IsThreefoldRepetition() }

// IsGameOver reports checkmate or a draw.
func (g *Game) IsGameOver() bool { return g.Position().IsGameOver() }

// Result returns the Result tag, or "*" when it is missing.
func (g *Game) Result() string {
	if r, ok := g.Header.Get(chess.ResultTag); ok {
		return r
	}
	return "*"
}

// String identifies the game by its Event tag and id.
func (g *Game) String() string {
	return fmt.Sprintf("%s [%s]", g.Header.Value(chess.EventTag), g.ID)
}

