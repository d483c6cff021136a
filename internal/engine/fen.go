package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN validation messages, in the order the checks are made.
const (
	fenErrFieldCount   = "FEN string must contain six space-delimited fields."
	fenErrMoveNumber   = "6th field (move number) must be a positive integer."
	fenErrHalfMoves    = "5th field (half move counter) must be a non-negative integer."
	fenErrEnPassant    = "4th field (en-passant square) is invalid."
	fenErrCastling     = "3rd field (castling availability) is invalid."
	fenErrSideToMove   = "2nd field (side to move) is invalid."
	fenErrRowCount     = "1st field (piece positions) does not contain 8 '/'-delimited rows."
	fenErrConsecutive  = "1st field (piece positions) is invalid [consecutive numbers]."
	fenErrInvalidPiece = "1st field (piece positions) is invalid [invalid piece]."
	fenErrRowSize      = "1st field (piece positions) is invalid [row too large]."
)

var (
	epFieldRegex       = regexp.MustCompile(`^(-|[a-h][36])$`)
	castlingFieldRegex = regexp.MustCompile(`^(KQ?k?q?|Qk?q?|kq?|q|-)$`)
)

// ValidateFEN performs the syntactic checks on a FEN string. It knows
// nothing of board semantics such as king counts or checks.
func ValidateFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fenError(fenErrFieldCount)
	}

	if n, err := strconv.Atoi(fields[5]); err != nil || n <= 0 {
		return fenError(fenErrMoveNumber)
	}
	if n, err := strconv.Atoi(fields[4]); err != nil || n < 0 {
		return fenError(fenErrHalfMoves)
	}
	if !epFieldRegex.MatchString(fields[3]) {
		return fenError(fenErrEnPassant)
	}
	if !castlingFieldRegex.MatchString(fields[2]) {
		return fenError(fenErrCastling)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return fenError(fenErrSideToMove)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return fenError(fenErrRowCount)
	}
	for _, row := range rows {
		if err := validateFENRow(row); err != nil {
			return err
		}
	}
	return nil
}

// validateFENRow checks one rank of the placement field.
func validateFENRow(row string) error {
	sum := 0
	previousWasNumber := false
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c >= '0' && c <= '9' {
			if previousWasNumber {
				return fenError(fenErrConsecutive)
			}
			sum += int(c - '0')
			previousWasNumber = true
			continue
		}
		if chess.PieceFromSymbol(c) == chess.Empty {
			return fenError(fenErrInvalidPiece)
		}
		sum++
		previousWasNumber = false
	}
	if sum != 8 {
		return fenError(fenErrRowSize)
	}
	return nil
}

// fenError wraps a validation message around ErrInvalidFEN.
func fenError(msg string) error {
	return fmt.Errorf("%s: %w", msg, errors.ErrInvalidFEN)
}

// NewPositionFromFEN creates a position from a FEN string.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := NewPosition()
	if err := p.LoadFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFEN replaces the position with the one described by fen and seeds the
// repetition table with it. On error the position is left unchanged.
func (p *Position) LoadFEN(fen string) error {
	if err := ValidateFEN(fen); err != nil {
		return err
	}
	fields := strings.Fields(fen)

	next := NewPosition()
	if err := next.parsePiecePositions(fields[0]); err != nil {
		return err
	}
	if fields[1] == "b" {
		next.turn = chess.Black
	}
	next.parseCastlingRights(fields[2])
	if fields[3] != "-" {
		next.epSquare, _ = chess.ParseSquare(fields[3])
	}
	next.halfMoves, _ = strconv.Atoi(fields[4])
	next.moveNumber, _ = strconv.Atoi(fields[5])
	next.RecordPosition()

	*p = *next
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func (p *Position) parsePiecePositions(positions string) error {
	sq := chess.A8
	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			sq += 8
		case c >= '0' && c <= '9':
			sq += chess.Square(c - '0')
		default:
			if !p.Put(chess.PieceFromSymbol(c), sq) {
				return fmt.Errorf("second %s king on %s: %w", chess.PieceFromSymbol(c).Colour(), sq, errors.ErrInvalidFEN)
			}
			sq++
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func (p *Position) parseCastlingRights(field string) {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			p.castling[chess.White] |= KingSide
		case 'Q':
			p.castling[chess.White] |= QueenSide
		case 'k':
			p.castling[chess.Black] |= KingSide
		case 'q':
			p.castling[chess.Black] |= QueenSide
		}
	}
}

// FEN returns the six-field FEN string of the position.
func (p *Position) FEN() string {
	return fmt.Sprintf("%s %d %d", p.Key(), p.halfMoves, p.moveNumber)
}

// Key returns the position without its clocks: placement, side to move,
// castling and en-passant fields. Repetition counting uses it.
func (p *Position) Key() string {
	var sb strings.Builder
	sb.WriteString(p.placement())
	sb.WriteByte(' ')
	sb.WriteString(p.turn.Symbol())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingField())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	return sb.String()
}

// placement returns the piece placement field.
func (p *Position) placement() string {
	var sb strings.Builder
	empty := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.board[chess.NewSquare(file, rank)]
			if piece == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
			empty = 0
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// castlingField returns the castling availability field.
func (p *Position) castlingField() string {
	var sb strings.Builder
	if p.castling[chess.White]&KingSide != 0 {
		sb.WriteByte('K')
	}
	if p.castling[chess.White]&QueenSide != 0 {
		sb.WriteByte('Q')
	}
	if p.castling[chess.Black]&KingSide != 0 {
		sb.WriteByte('k')
	}
	if p.castling[chess.Black]&QueenSide != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
