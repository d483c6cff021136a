package chess

// Square is an index into a 0x88 board: a8 = 0, h8 = 7, a1 = 112, h1 = 119.
// Any index with a bit of 0x88 set lies off the board.
type Square int

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares used by castling and rook tracking.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 112
	B1 Square = 113
	C1 Square = 114
	D1 Square = 115
	E1 Square = 116
	F1 Square = 117
	G1 Square = 118
	H1 Square = 119
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	BoardCells = 128

	// Rank index (0 = rank 8) of each side's pawn starting row.
	SecondRankWhite = 6
	SecondRankBlack = 1
)

// NewSquare builds a square from a file (0 = a) and a rank index (0 = rank 8).
func NewSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

// ParseSquare converts algebraic text such as "e4" into a square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return NewSquare(int(f-'a'), int('8'-r)), true
}

// OnBoard reports whether the square lies on the 8x8 playing area.
func (s Square) OnBoard() bool {
	return s >= 0 && s&0x88 == 0
}

// File returns the file index, 0 = a.
func (s Square) File() int {
	return int(s) & 15
}

// Rank returns the rank index, 0 = rank 8.
func (s Square) Rank() int {
	return int(s) >> 4
}

// FileLetter returns the file character.
func (s Square) FileLetter() byte {
	return "abcdefgh"[s.File()]
}

// RankDigit returns the rank character.
func (s Square) RankDigit() byte {
	return "87654321"[s.Rank()]
}

// String returns the algebraic name, or "-" for squares off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 0
}
