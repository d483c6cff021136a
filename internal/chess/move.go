package chess

import "strings"

// Flags classifies a move. A move may carry several flags, e.g.
// Capture|Promotion.
type Flags int

const (
	Normal      Flags = 1 << iota // Quiet move
	Capture                       // Ordinary capture
	BigPawn                       // Double pawn push
	EPCapture                     // En-passant capture
	Promotion                     // Pawn promotion
	KingsideCastle
	QueensideCastle
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

var flagLetters = []struct {
	flag   Flags
	letter byte
}{
	{Normal, 'n'},
	{Capture, 'c'},
	{BigPawn, 'b'},
	{EPCapture, 'e'},
	{Promotion, 'p'},
	{KingsideCastle, 'k'},
	{QueensideCastle, 'q'},
}

// String returns the compact letter form, e.g. "cp" for a capturing promotion.
func (f Flags) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			sb.WriteByte(fl.letter)
		}
	}
	return sb.String()
}

// Move represents a single generated chess move. Moves are values and are
// not modified once generated.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	Flags Flags

	// SAN text, filled only when requested at generation time.
	SAN string

	// Wildcard marks a "pick any legal move" placeholder; it is written as
	// "--" in PGN.
	Wildcard bool
}

// IsCastle reports whether the move is either castle.
func (m Move) IsCastle() bool {
	return m.Flags&(KingsideCastle|QueensideCastle) != 0
}

// IsCapture reports whether the move captures, en passant included.
func (m Move) IsCapture() bool {
	return m.Flags&(Capture|EPCapture) != 0
}

// Algebraic returns the move as "from-to", e.g. "e2-e4".
func (m Move) Algebraic() string {
	return m.From.String() + "-" + m.To.String()
}

// Text returns the PGN text of the move: "--" for a wildcard, else the SAN.
func (m Move) Text() string {
	if m.Wildcard {
		return NullMoveString
	}
	return m.SAN
}

// AnnotationKind distinguishes comments from glyphs.
type AnnotationKind int

const (
	CommentAnnotation AnnotationKind = iota
	GlyphAnnotation
)

// Annotation is a PGN comment ("{...}", braces included) or a numeric
// annotation glyph ("$N"), kept verbatim.
type Annotation struct {
	Kind AnnotationKind
	Text string
}

// Comment creates a comment annotation.
func Comment(text string) Annotation {
	return Annotation{Kind: CommentAnnotation, Text: text}
}

// Glyph creates a glyph annotation.
func Glyph(text string) Annotation {
	return Annotation{Kind: GlyphAnnotation, Text: text}
}
