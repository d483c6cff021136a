package engine

import "github.com/lgbarn/pgn-tree-go/internal/chess"

// promotionTypes lists promotion pieces in generation order.
var promotionTypes = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// generateOptions holds the settings of one GenerateMoves call.
type generateOptions struct {
	square     chess.Square
	singleOnly bool
	pseudo     bool
	san        bool
}

// GenerateOption configures GenerateMoves.
type GenerateOption func(*generateOptions)

// OnlySquare restricts generation to the piece standing on sq.
func OnlySquare(sq chess.Square) GenerateOption {
	return func(o *generateOptions) {
		o.square = sq
		o.singleOnly = true
	}
}

// PseudoLegal skips the king-safety filter.
func PseudoLegal() GenerateOption {
	return func(o *generateOptions) {
		o.pseudo = true
	}
}

// WithSAN fills in the SAN text of each generated move.
func WithSAN() GenerateOption {
	return func(o *generateOptions) {
		o.san = true
	}
}

// GenerateMoves returns the moves of the side to move, legal ones unless
// PseudoLegal is given. Squares are visited from a8 to h1; castling moves
// come last.
func (p *Position) GenerateMoves(opts ...GenerateOption) []chess.Move {
	o := generateOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	first, last := chess.A8, chess.H1
	if o.singleOnly {
		if !o.square.OnBoard() {
			return nil
		}
		first, last = o.square, o.square
	}

	us := p.turn
	var moves []chess.Move

	for i := first; i <= last; i++ {
		if !i.OnBoard() {
			i += 7
			continue
		}
		piece := p.board[i]
		if piece == chess.Empty || piece.Colour() != us {
			continue
		}
		if piece.Type() == chess.Pawn {
			moves = p.appendPawnMoves(moves, i)
		} else {
			moves = p.appendPieceMoves(moves, i)
		}
	}

	if !o.singleOnly || last == p.kings[us] {
		moves = p.appendCastlingMoves(moves)
	}

	if !o.pseudo {
		moves = p.filterLegal(moves)
	}

	if o.san {
		// Disambiguation needs every move of the position, not only those
		// from the requested square.
		pool := moves
		if o.singleOnly {
			pool = p.GenerateMoves(generateFlags(o)...)
		}
		for i := range moves {
			moves[i].SAN = p.san(moves[i], pool)
		}
	}
	return moves
}

// generateFlags returns the options of o that apply to a whole-board call.
func generateFlags(o generateOptions) []GenerateOption {
	if o.pseudo {
		return []GenerateOption{PseudoLegal()}
	}
	return nil
}

// appendPawnMoves adds pushes, double pushes, captures and en-passant
// captures of the pawn on from.
func (p *Position) appendPawnMoves(moves []chess.Move, from chess.Square) []chess.Move {
	us := p.turn
	offsets := pawnOffsets[us]

	to := from + offsets[0]
	if to.OnBoard() && p.board[to] == chess.Empty {
		moves = p.appendMove(moves, from, to, chess.Normal)

		secondRank := chess.SecondRankWhite
		if us == chess.Black {
			secondRank = chess.SecondRankBlack
		}
		to = from + offsets[1]
		if from.Rank() == secondRank && p.board[to] == chess.Empty {
			moves = p.appendMove(moves, from, to, chess.BigPawn)
		}
	}

	for _, off := range offsets[2:] {
		to := from + off
		if !to.OnBoard() {
			continue
		}
		if target := p.board[to]; target != chess.Empty && target.Colour() != us {
			moves = p.appendMove(moves, from, to, chess.Capture)
		} else if to == p.epSquare {
			moves = p.appendMove(moves, from, to, chess.EPCapture)
		}
	}
	return moves
}

// appendPieceMoves adds the moves of a knight, bishop, rook, queen or king.
func (p *Position) appendPieceMoves(moves []chess.Move, from chess.Square) []chess.Move {
	pt := p.board[from].Type()
	for _, off := range pieceOffsets[pt] {
		for to := from + off; to.OnBoard(); to += off {
			target := p.board[to]
			if target == chess.Empty {
				moves = p.appendMove(moves, from, to, chess.Normal)
			} else {
				if target.Colour() != p.turn {
					moves = p.appendMove(moves, from, to, chess.Capture)
				}
				break
			}
			if pt == chess.Knight || pt == chess.King {
				break
			}
		}
	}
	return moves
}

// appendCastlingMoves adds both castles when the rights are held, the squares
// between king and rook are empty and the king does not start in, pass
// through or land on an attacked square.
func (p *Position) appendCastlingMoves(moves []chess.Move) []chess.Move {
	us, them := p.turn, p.turn.Opposite()
	king := p.kings[us]
	if king == chess.NoSquare {
		return moves
	}

	if p.castling[us]&KingSide != 0 {
		to := king + 2
		if p.Get(king+1) == chess.Empty &&
			p.Get(to) == chess.Empty &&
			!p.IsAttacked(them, king) &&
			!p.IsAttacked(them, king+1) &&
			!p.IsAttacked(them, to) {
			moves = p.appendMove(moves, king, to, chess.KingsideCastle)
		}
	}

	if p.castling[us]&QueenSide != 0 {
		to := king - 2
		if p.Get(king-1) == chess.Empty &&
			p.Get(king-2) == chess.Empty &&
			p.Get(king-3) == chess.Empty &&
			!p.IsAttacked(them, king) &&
			!p.IsAttacked(them, king-1) &&
			!p.IsAttacked(them, to) {
			moves = p.appendMove(moves, king, to, chess.QueensideCastle)
		}
	}
	return moves
}

// appendMove adds one move, or four when a pawn reaches the last rank.
func (p *Position) appendMove(moves []chess.Move, from, to chess.Square, flags chess.Flags) []chess.Move {
	m := chess.Move{
		From:     from,
		To:       to,
		Piece:    p.board[from],
		Captured: p.board[to],
		Flags:    flags,
	}
	if flags == chess.EPCapture {
		m.Captured = chess.MakeColouredPiece(p.turn.Opposite(), chess.Pawn)
	}

	if m.Piece.Type() == chess.Pawn && (to.Rank() == 0 || to.Rank() == chess.BoardSize-1) {
		for _, pt := range promotionTypes {
			promo := m
			promo.Flags |= chess.Promotion
			promo.Promotion = chess.MakeColouredPiece(p.turn, pt)
			moves = append(moves, promo)
		}
		return moves
	}
	return append(moves, m)
}

// filterLegal drops moves that leave the mover's king attacked. Each
// candidate is applied and undone before the next is tried; the repetition
// table is not touched.
func (p *Position) filterLegal(moves []chess.Move) []chess.Move {
	us := p.turn
	legal := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		ctx := p.Apply(m)
		if !p.IsKingAttacked(us) {
			legal = append(legal, m)
		}
		p.Undo(ctx)
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	return len(p.GenerateMoves()) > 0
}
