package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
)

// Fixed seeds keep hashes stable from one run to the next.
const (
	zobristSeed1 = 0x9e3779b97f4a7c15
	zobristSeed2 = 0xd1b54a32d192ed03
)

// zobristKeys holds one random key per piece on each square and per item of
// the position state.
var zobristKeys struct {
	pieces   [12][chess.BoardSize * chess.BoardSize]uint64
	turn     uint64
	castling [2][4]uint64
	epFile   [chess.BoardSize]uint64
}

func init() {
	r := rand.New(rand.NewPCG(zobristSeed1, zobristSeed2))
	for p := range zobristKeys.pieces {
		for sq := range zobristKeys.pieces[p] {
			zobristKeys.pieces[p][sq] = r.Uint64()
		}
	}
	zobristKeys.turn = r.Uint64()
	for c := range zobristKeys.castling {
		for i := range zobristKeys.castling[c] {
			zobristKeys.castling[c][i] = r.Uint64()
		}
	}
	for f := range zobristKeys.epFile {
		zobristKeys.epFile[f] = r.Uint64()
	}
}

// pieceIndex maps a coloured piece to 0..11.
func pieceIndex(p chess.Piece) int {
	return (int(p.Type())-1)*2 + int(p.Colour())
}

// GenerateZobristHash hashes the board, the side to move, the castling
// rights and the en-passant file of pos. The clocks are left out, so
// transpositions hash alike.
func GenerateZobristHash(pos *engine.Position) uint64 {
	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				continue
			}
			hash ^= zobristKeys.pieces[pieceIndex(piece)][rank*chess.BoardSize+file]
		}
	}

	if pos.Turn() == chess.Black {
		hash ^= zobristKeys.turn
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		hash ^= zobristKeys.castling[c][pos.Castling(c)&(engine.KingSide|engine.QueenSide)]
	}
	if ep := pos.EPSquare(); ep != chess.NoSquare {
		hash ^= zobristKeys.epFile[ep.File()]
	}
	return hash
}

// WeakHash is a cheap material signature: the number of pieces of each kind,
// packed four bits apiece. Positions with different material never share it.
func WeakHash(pos *engine.Position) uint64 {
	var counts [12]uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if piece := pos.Get(chess.NewSquare(file, rank)); piece != chess.Empty {
				counts[pieceIndex(piece)]++
			}
		}
	}

	var hash uint64
	for i, n := range counts {
		hash |= (n & 0xf) << (4 * i)
	}
	return hash
}
