// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"golang.org/x/exp/maps"
)

// CastlingRights holds the castling availability of one colour.
type CastlingRights uint8

const (
	KingSide CastlingRights = 1 << iota
	QueenSide
)

// rookHome pairs a rook's starting corner with the right it guards.
type rookHome struct {
	square chess.Square
	right  CastlingRights
}

var rookHomes = [2][2]rookHome{
	chess.White: {{chess.A1, QueenSide}, {chess.H1, KingSide}},
	chess.Black: {{chess.A8, QueenSide}, {chess.H8, KingSide}},
}

// Position is the full mutable state of one board: placement, side to move,
// castling rights, en-passant target, clocks and the repetition table.
type Position struct {
	board      [chess.BoardCells]chess.Piece
	turn       chess.Colour
	castling   [2]CastlingRights
	kings      [2]chess.Square
	epSquare   chess.Square
	halfMoves  int
	moveNumber int
	plyCount   int

	// repetitions counts occurrences of each position key (see Key).
	repetitions map[string]int
}

// NewPosition creates an empty board with White to move.
func NewPosition() *Position {
	p := &Position{}
	p.reset()
	return p
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *Position {
	p, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(err) // InitialFEN is a constant
	}
	return p
}

// reset clears the position to an empty board.
func (p *Position) reset() {
	p.board = [chess.BoardCells]chess.Piece{}
	p.turn = chess.White
	p.castling = [2]CastlingRights{}
	p.kings = [2]chess.Square{chess.NoSquare, chess.NoSquare}
	p.epSquare = chess.NoSquare
	p.halfMoves = 0
	p.moveNumber = 1
	p.plyCount = 0
	p.repetitions = make(map[string]int)
}

// Clone returns a deep copy of the position, repetition table included.
func (p *Position) Clone() *Position {
	c := *p
	c.repetitions = make(map[string]int, len(p.repetitions))
	maps.Copy(c.repetitions, p.repetitions)
	return &c
}

// Get returns the piece on a square, Empty for empty or off-board squares.
func (p *Position) Get(sq chess.Square) chess.Piece {
	if !sq.OnBoard() {
		return chess.Empty
	}
	return p.board[sq]
}

// Put places a piece on a square. It refuses to place a second king of a
// colour unless the king already stands on that square.
func (p *Position) Put(piece chess.Piece, sq chess.Square) bool {
	if !sq.OnBoard() || piece == chess.Empty {
		return false
	}
	colour := piece.Colour()
	if piece.Type() == chess.King && p.kings[colour] != chess.NoSquare && p.kings[colour] != sq {
		return false
	}

	if old := p.board[sq]; old.Type() == chess.King && old != piece {
		p.kings[old.Colour()] = chess.NoSquare
	}
	p.board[sq] = piece
	if piece.Type() == chess.King {
		p.kings[colour] = sq
	}
	return true
}

// Remove clears a square and returns what stood on it.
func (p *Position) Remove(sq chess.Square) chess.Piece {
	if !sq.OnBoard() {
		return chess.Empty
	}
	piece := p.board[sq]
	p.board[sq] = chess.Empty
	if piece.Type() == chess.King {
		p.kings[piece.Colour()] = chess.NoSquare
	}
	return piece
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.turn
}

// Castling returns the castling rights of a colour.
func (p *Position) Castling(c chess.Colour) CastlingRights {
	return p.castling[c]
}

// KingSquare returns the square of a colour's king, or NoSquare.
func (p *Position) KingSquare(c chess.Colour) chess.Square {
	return p.kings[c]
}

// EPSquare returns the en-passant target square, or NoSquare.
func (p *Position) EPSquare() chess.Square {
	return p.epSquare
}

// HalfMoves returns the halfmove clock.
func (p *Position) HalfMoves() int {
	return p.halfMoves
}

// MoveNumber returns the fullmove number.
func (p *Position) MoveNumber() int {
	return p.moveNumber
}

// PlyCount returns the number of plies applied since the position was loaded.
func (p *Position) PlyCount() int {
	return p.plyCount
}

// RecordPosition counts one more occurrence of the current position.
func (p *Position) RecordPosition() {
	p.repetitions[p.Key()]++
}

// ForgetPosition removes one occurrence of the current position.
func (p *Position) ForgetPosition() {
	key := p.Key()
	if p.repetitions[key] <= 1 {
		delete(p.repetitions, key)
		return
	}
	p.repetitions[key]--
}

// Repetitions returns how often the current position has occurred.
func (p *Position) Repetitions() int {
	return p.repetitions[p.Key()]
}
