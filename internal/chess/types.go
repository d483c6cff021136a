// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NoColour
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Symbol returns the FEN side-to-move letter.
func (c Colour) Symbol() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// PieceType represents a chess piece kind without colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	if p >= 0 && int(p) < len(pieceTypeNames) {
		return pieceTypeNames[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (lowercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case to a PieceType.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoPieceType
}

// Piece is a coloured piece. The zero value is Empty.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// Empty is the content of an unoccupied square.
const Empty Piece = 0

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece PieceType) Piece {
	if piece == NoPieceType || colour == NoColour {
		return Empty
	}
	return Piece(int(piece)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(piece PieceType) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece PieceType) Piece {
	return MakeColouredPiece(Black, piece)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// Colour extracts the colour, NoColour for Empty.
func (p Piece) Colour() Colour {
	if p == Empty {
		return NoColour
	}
	return Colour(p & 0x01)
}

// Symbol returns the FEN letter of the piece: uppercase for white.
func (p Piece) Symbol() byte {
	if p == Empty {
		return ' '
	}
	letter := p.Type().Letter()
	if p.Colour() == White {
		letter -= 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// PieceFromSymbol converts a FEN letter to a coloured piece.
func PieceFromSymbol(c byte) Piece {
	pt := PieceTypeFromLetter(c)
	if pt == NoPieceType {
		return Empty
	}
	if c >= 'a' && c <= 'z' {
		return B(pt)
	}
	return W(pt)
}

// NullMoveString is the PGN representation of a wildcard (null) move.
const NullMoveString = "--"
