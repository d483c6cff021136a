package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// sanSuffixRegex matches check, mate and annotation marks trailing a SAN move.
var sanSuffixRegex = regexp.MustCompile(`[+#?!=]+$`)

// SAN returns the Standard Algebraic Notation of a legal move in the
// current position.
func (p *Position) SAN(m chess.Move) string {
	if m.Wildcard {
		return chess.NullMoveString
	}
	return p.san(m, p.GenerateMoves())
}

// san renders m, disambiguating against the legal moves of the position.
func (p *Position) san(m chess.Move, legal []chess.Move) string {
	var sb strings.Builder

	switch {
	case m.Flags.Has(chess.KingsideCastle):
		sb.WriteString("O-O")
	case m.Flags.Has(chess.QueensideCastle):
		sb.WriteString("O-O-O")
	default:
		if m.Piece.Type() != chess.Pawn {
			sb.WriteByte(chess.W(m.Piece.Type()).Symbol())
			sb.WriteString(disambiguator(m, legal))
		}
		if m.IsCapture() {
			if m.Piece.Type() == chess.Pawn {
				sb.WriteByte(m.From.FileLetter())
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Flags.Has(chess.Promotion) {
			sb.WriteByte('=')
			sb.WriteByte(chess.W(m.Promotion.Type()).Symbol())
		}
	}

	ctx := p.Apply(m)
	if p.InCheck() {
		if p.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	p.Undo(ctx)

	return sb.String()
}

// disambiguator returns the origin qualifier needed when another piece of the
// same kind can reach the same square: the file if it tells them apart, else
// the rank, else the full square.
func disambiguator(m chess.Move, legal []chess.Move) string {
	ambiguities, sameRank, sameFile := 0, 0, 0
	for _, other := range legal {
		if other.Piece != m.Piece || other.From == m.From || other.To != m.To {
			continue
		}
		ambiguities++
		if other.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if other.From.File() == m.From.File() {
			sameFile++
		}
	}

	switch {
	case ambiguities == 0:
		return ""
	case sameRank > 0 && sameFile > 0:
		return m.From.String()
	case sameFile > 0:
		return string(m.From.RankDigit())
	default:
		return string(m.From.FileLetter())
	}
}

// FromSAN resolves SAN text to a legal move. Check, mate and annotation
// marks are ignored. The text may be a prefix of the move's full SAN, so
// "Nf3" matches "Nf3+". "--" resolves to the first legal move, flagged as a
// wildcard.
func (p *Position) FromSAN(text string) (chess.Move, error) {
	san := sanSuffixRegex.ReplaceAllString(strings.TrimSpace(text), "")
	moves := p.GenerateMoves(WithSAN())

	if strings.TrimSpace(text) == chess.NullMoveString {
		if len(moves) == 0 {
			return chess.Move{}, fmt.Errorf("no move to stand for %q: %w", text, errors.ErrIllegalMove)
		}
		m := moves[0]
		m.Wildcard = true
		return m, nil
	}

	if san != "" {
		// An exact match wins so that "O-O" never resolves to "O-O-O".
		for _, m := range moves {
			if sanSuffixRegex.ReplaceAllString(m.SAN, "") == san {
				return m, nil
			}
		}
		// Truncated input such as "N" resolves to the first legal move it
		// prefixes.
		for _, m := range moves {
			if strings.HasPrefix(m.SAN, san) {
				return m, nil
			}
		}
	}
	return chess.Move{}, fmt.Errorf("%q in %s: %w", text, p.FEN(), errors.ErrIllegalMove)
}

// FromAlgebraic resolves a move given by its origin and destination squares.
// A promotion defaults to a queen when promotion is NoPieceType.
func (p *Position) FromAlgebraic(from, to string, promotion chess.PieceType) (chess.Move, error) {
	fromSq, ok := chess.ParseSquare(from)
	if !ok {
		return chess.Move{}, fmt.Errorf("%q: %w", from, errors.ErrInvalidSquare)
	}
	toSq, ok := chess.ParseSquare(to)
	if !ok {
		return chess.Move{}, fmt.Errorf("%q: %w", to, errors.ErrInvalidSquare)
	}
	if promotion == chess.NoPieceType {
		promotion = chess.Queen
	}

	for _, m := range p.GenerateMoves(OnlySquare(fromSq), WithSAN()) {
		if m.To != toSq {
			continue
		}
		if m.Promotion == chess.Empty || m.Promotion.Type() == promotion {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s-%s in %s: %w", from, to, p.FEN(), errors.ErrIllegalMove)
}
