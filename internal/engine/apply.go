package engine

import "github.com/lgbarn/pgn-tree-go/internal/chess"

// MoveContext is a move together with the state it overwrote. It is
// everything Undo needs to restore the position exactly.
type MoveContext struct {
	Move chess.Move

	Turn       chess.Colour
	Castling   [2]CastlingRights
	Kings      [2]chess.Square
	EPSquare   chess.Square
	HalfMoves  int
	MoveNumber int
	PlyCount   int
}

// Snapshot captures the state a move would overwrite.
func (p *Position) Snapshot(m chess.Move) MoveContext {
	return MoveContext{
		Move:       m,
		Turn:       p.turn,
		Castling:   p.castling,
		Kings:      p.kings,
		EPSquare:   p.epSquare,
		HalfMoves:  p.halfMoves,
		MoveNumber: p.moveNumber,
		PlyCount:   p.plyCount,
	}
}

// Apply plays a move without checking it for legality and returns the
// context that undoes it. The repetition table is not updated.
func (p *Position) Apply(m chess.Move) MoveContext {
	ctx := p.Snapshot(m)
	us, them := p.turn, p.turn.Opposite()

	p.board[m.To] = p.board[m.From]
	p.board[m.From] = chess.Empty

	if m.Flags.Has(chess.EPCapture) {
		p.board[epVictim(m.To, us)] = chess.Empty
	}

	if m.Flags.Has(chess.Promotion) {
		p.board[m.To] = chess.MakeColouredPiece(us, m.Promotion.Type())
	}

	if p.board[m.To].Type() == chess.King {
		p.kings[us] = m.To
		switch {
		case m.Flags.Has(chess.KingsideCastle):
			p.board[m.To-1] = p.board[m.To+1]
			p.board[m.To+1] = chess.Empty
		case m.Flags.Has(chess.QueensideCastle):
			p.board[m.To+1] = p.board[m.To-2]
			p.board[m.To-2] = chess.Empty
		}
		p.castling[us] = 0
	}

	// A rook leaving its corner, or captured on it, loses that right.
	for _, home := range rookHomes[us] {
		if m.From == home.square {
			p.castling[us] &^= home.right
		}
	}
	for _, home := range rookHomes[them] {
		if m.To == home.square {
			p.castling[them] &^= home.right
		}
	}

	p.epSquare = chess.NoSquare
	if m.Flags.Has(chess.BigPawn) {
		p.epSquare = epVictim(m.To, us)
	}

	if m.Piece.Type() == chess.Pawn || m.IsCapture() {
		p.halfMoves = 0
	} else {
		p.halfMoves++
	}

	if us == chess.Black {
		p.moveNumber++
	}
	p.plyCount++
	p.turn = them

	return ctx
}

// Undo reverses the move recorded in ctx. The position must be the one Apply
// left behind.
func (p *Position) Undo(ctx MoveContext) {
	m := ctx.Move
	us := ctx.Turn

	p.turn = ctx.Turn
	p.castling = ctx.Castling
	p.kings = ctx.Kings
	p.epSquare = ctx.EPSquare
	p.halfMoves = ctx.HalfMoves
	p.moveNumber = ctx.MoveNumber
	p.plyCount = ctx.PlyCount

	// Restoring the moved piece also reverts a promotion.
	p.board[m.From] = m.Piece
	p.board[m.To] = chess.Empty

	switch {
	case m.Flags.Has(chess.Capture):
		p.board[m.To] = m.Captured
	case m.Flags.Has(chess.EPCapture):
		p.board[epVictim(m.To, us)] = chess.MakeColouredPiece(us.Opposite(), chess.Pawn)
	}

	switch {
	case m.Flags.Has(chess.KingsideCastle):
		p.board[m.To+1] = p.board[m.To-1]
		p.board[m.To-1] = chess.Empty
	case m.Flags.Has(chess.QueensideCastle):
		p.board[m.To-2] = p.board[m.To+1]
		p.board[m.To+1] = chess.Empty
	}
}

// epVictim returns the square behind to, seen from the mover: where an
// en-passant capture removes a pawn, and where a double push leaves its
// target square.
func epVictim(to chess.Square, us chess.Colour) chess.Square {
	if us == chess.White {
		return to + 16
	}
	return to - 16
}
