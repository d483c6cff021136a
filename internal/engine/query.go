package engine

import "github.com/lgbarn/pgn-tree-go/internal/chess"

// SANMoves returns the SAN text of every legal move.
func (p *Position) SANMoves() []string {
	moves := p.GenerateMoves(WithSAN())
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.SAN
	}
	return out
}

// SquareMoves returns the SAN text of the legal moves of the piece on sq.
// An empty or off-board square yields no moves.
func (p *Position) SquareMoves(sq chess.Square) []string {
	moves := p.GenerateMoves(OnlySquare(sq), WithSAN())
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.SAN
	}
	return out
}

// AlgebraicMoves returns the legal moves of the piece on sq as "e2-e4"
// strings, with promotions collapsed to one entry per destination.
func (p *Position) AlgebraicMoves(sq chess.Square) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range p.GenerateMoves(OnlySquare(sq)) {
		text := m.Algebraic()
		if seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, text)
	}
	return out
}

// Destinations returns the squares the piece on sq can legally move to.
func (p *Position) Destinations(sq chess.Square) []string {
	var out []string
	seen := make(map[chess.Square]bool)
	for _, m := range p.GenerateMoves(OnlySquare(sq)) {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		out = append(out, m.To.String())
	}
	return out
}
