// Package parser provides PGN lexing and parsing functionality.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	CommentToken
	NAGToken
	MoveNumber
	RAVStart
	ContinuationStart
	RAVEnd
	MoveToken
	NullMoveToken
	TerminatingResult

	// Internal classes used for identification
	Whitespace
	Skip
	CommentStart
	Annotate
	Digit
	Symbol
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	ContinuationStart: "CONTINUATION_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	NullMoveToken:     "NULL_MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	Whitespace:        "WHITESPACE",
	Skip:              "SKIP",
	CommentStart:      "COMMENT_START",
	Annotate:          "ANNOTATE",
	Digit:             "DIGIT",
	Symbol:            "SYMBOL",
	ErrorToken:        "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the token as written: comment text with its braces, the
	// glyph, the SAN or the result
	Text string

	// Line and column for error reporting
	Line   int
	Column int
}

// NewToken creates a new token of the given type.
func NewToken(tokenType TokenType) *Token {
	return &Token{Type: tokenType}
}

// Results that end a game.
var terminatingResults = []string{"1-0", "0-1", "1/2-1/2", "*"}

// escapedNullMove is the "<>" null move after HTML escaping.
const escapedNullMove = "&lt;&gt;"
