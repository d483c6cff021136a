package engine

import "github.com/lgbarn/pgn-tree-go/internal/chess"

// FiftyMoveHalfMoves is the halfmove clock value at which the game is drawn.
const FiftyMoveHalfMoves = 100

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsKingAttacked(p.turn)
}

// IsCheckmate returns true if the side to move is in check with no legal move.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check but has no legal move.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsInsufficientMaterial returns true for king against king, king and one
// minor piece against king, and positions where every piece besides the
// kings is a bishop and all bishops stand on squares of one colour.
func (p *Position) IsInsufficientMaterial() bool {
	var counts [chess.King + 1]int
	total := 0
	bishops, lightBishops := 0, 0

	for sq := chess.A8; sq <= chess.H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		piece := p.board[sq]
		if piece == chess.Empty {
			continue
		}
		counts[piece.Type()]++
		total++
		if piece.Type() == chess.Bishop {
			bishops++
			if sq.IsLight() {
				lightBishops++
			}
		}
	}

	switch {
	case total == 2:
		return true
	case total == 3 && (counts[chess.Bishop] == 1 || counts[chess.Knight] == 1):
		return true
	case total == bishops+2:
		return lightBishops == 0 || lightBishops == bishops
	}
	return false
}

// IsThreefoldRepetition returns true if any recorded position has occurred
// at least three times.
func (p *Position) IsThreefoldRepetition() bool {
	for _, n := range p.repetitions {
		if n >= 3 {
			return true
		}
	}
	return false
}

// IsFiftyMoveRule returns true once fifty moves pass without a pawn move or capture.
func (p *Position) IsFiftyMoveRule() bool {
	return p.halfMoves >= FiftyMoveHalfMoves
}

// IsDraw returns true under the fifty-move rule, stalemate, insufficient
// material or threefold repetition.
func (p *Position) IsDraw() bool {
	return p.IsFiftyMoveRule() ||
		p.IsStalemate() ||
		p.IsInsufficientMaterial() ||
		p.IsThreefoldRepetition()
}

// IsGameOver returns true on checkmate or any draw.
func (p *Position) IsGameOver() bool {
	return p.IsCheckmate() || p.IsDraw()
}

// Status summarises the terminal conditions of a position.
type Status struct {
	Check                bool
	Checkmate            bool
	Stalemate            bool
	Draw                 bool
	InsufficientMaterial bool
	ThreefoldRepetition  bool
	FiftyMoveRule        bool
}

// Status evaluates every terminal predicate of the position.
func (p *Position) Status() Status {
	check := p.InCheck()
	noMoves := !p.HasLegalMoves()
	s := Status{
		Check:                check,
		Checkmate:            check && noMoves,
		Stalemate:            !check && noMoves,
		InsufficientMaterial: p.IsInsufficientMaterial(),
		ThreefoldRepetition:  p.IsThreefoldRepetition(),
		FiftyMoveRule:        p.IsFiftyMoveRule(),
	}
	s.Draw = s.Stalemate || s.InsufficientMaterial || s.ThreefoldRepetition || s.FiftyMoveRule
	return s
}
