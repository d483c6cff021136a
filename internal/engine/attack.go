package engine

import "github.com/lgbarn/pgn-tree-go/internal/chess"

// Movement offsets on the 0x88 board.
var (
	pawnOffsets = [2][4]chess.Square{
		chess.White: {-16, -32, -17, -15},
		chess.Black: {16, 32, 17, 15},
	}

	pieceOffsets = [...][]chess.Square{
		chess.Knight: {-18, -33, -31, -14, 18, 33, 31, 14},
		chess.Bishop: {-17, -15, 17, 15},
		chess.Rook:   {-16, 1, 16, -1},
		chess.Queen:  {-17, -16, -15, 1, 17, 16, 15, -1},
		chess.King:   {-17, -16, -15, 1, 17, 16, 15, -1},
	}
)

// attackIndexOffset centres the difference of two 0x88 squares, which lies
// in -119..119, on a 240-entry table.
const attackIndexOffset = 119

// attackTable[d] has bit (type-1) set when a piece of that type can reach a
// square at difference d from its own square on an empty board; rayTable[d]
// is the step an attacking slider takes towards the target.
var (
	attackTable [240]uint8
	rayTable    [240]chess.Square
)

func init() {
	for from := chess.A8; from <= chess.H1; from++ {
		if !from.OnBoard() {
			continue
		}

		// Pawn captures; the sign of the difference tells the colour apart.
		for _, off := range []chess.Square{-17, -15, 17, 15} {
			if to := from + off; to.OnBoard() {
				attackTable[int(from-to)+attackIndexOffset] |= attackBit(chess.Pawn)
			}
		}

		for pt := chess.Knight; pt <= chess.King; pt++ {
			slider := pt == chess.Bishop || pt == chess.Rook || pt == chess.Queen
			for _, off := range pieceOffsets[pt] {
				for to := from + off; to.OnBoard(); to += off {
					idx := int(from-to) + attackIndexOffset
					attackTable[idx] |= attackBit(pt)
					if !slider {
						break
					}
					rayTable[idx] = off
				}
			}
		}
	}
}

// attackBit returns the attack table bit of a piece type.
func attackBit(pt chess.PieceType) uint8 {
	return 1 << uint(pt-chess.Pawn)
}

// IsAttacked returns true if the square is attacked by any piece of the given colour.
func (p *Position) IsAttacked(byColour chess.Colour, sq chess.Square) bool {
	if !sq.OnBoard() {
		return false
	}

	for i := chess.A8; i <= chess.H1; i++ {
		if !i.OnBoard() {
			i += 7
			continue
		}

		piece := p.board[i]
		if piece == chess.Empty || piece.Colour() != byColour {
			continue
		}

		difference := int(i - sq)
		idx := difference + attackIndexOffset
		pt := piece.Type()
		if attackTable[idx]&attackBit(pt) == 0 {
			continue
		}

		switch pt {
		case chess.Pawn:
			// White pawns attack towards lower indices.
			if (difference > 0) == (byColour == chess.White) {
				return true
			}
		case chess.Knight, chess.King:
			return true
		default:
			if p.rayClear(i, sq, rayTable[idx]) {
				return true
			}
		}
	}
	return false
}

// rayClear returns true if no piece stands strictly between from and to.
func (p *Position) rayClear(from, to, step chess.Square) bool {
	for j := from + step; j != to; j += step {
		if p.board[j] != chess.Empty {
			return false
		}
	}
	return true
}

// IsKingAttacked returns true if the given colour's king is attacked. A side
// without a king is never in check.
func (p *Position) IsKingAttacked(colour chess.Colour) bool {
	king := p.kings[colour]
	if king == chess.NoSquare {
		return false
	}
	return p.IsAttacked(colour.Opposite(), king)
}
