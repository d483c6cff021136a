package parser

import "strings"

// Lexer tokenizes normalized PGN movetext.
type Lexer struct {
	text   string
	pos    int
	line   int
	column int
}

// Character classification table
var chTab [256]TokenType

// moveDelimiters are the characters that end a SAN symbol.
var moveDelimiters [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	// Anything unclassified starts a move
	for i := range chTab {
		chTab[i] = Symbol
	}

	// Whitespace
	for _, c := range []byte{' ', '\t', '\r', '\n', '\b', '\f'} {
		chTab[c] = Whitespace
		moveDelimiters[c] = true
	}

	// Rest-of-line comments are not supported; the marker alone is dropped
	chTab[';'] = Skip

	chTab['{'] = CommentStart
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}

	for _, c := range []byte{'$', '{', ';', '!', '?', '(', ')'} {
		moveDelimiters[c] = true
	}
}

// NewLexer creates a new lexer over movetext starting on line 1.
func NewLexer(text string) *Lexer {
	return newLexerAt(text, 1)
}

// newLexerAt creates a lexer whose first character is on the given line.
func newLexerAt(text string, line int) *Lexer {
	if line < 1 {
		line = 1
	}
	return &Lexer{
		text:   text,
		line:   line,
		column: 1,
	}
}

// currentChar returns the current character or 0 at end of input.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.text) {
		return 0
	}
	return l.text[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos >= len(l.text) {
		return
	}
	if l.text[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// advanceBy moves n characters forward.
func (l *Lexer) advanceBy(n int) {
	for ; n > 0; n-- {
		l.advance()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for l.pos < len(l.text) {
		switch chTab[l.currentChar()] {
		case Whitespace, Skip:
			l.advance()
			continue
		}

		line, column := l.line, l.column
		token := l.getNextSymbol()
		token.Line = line
		token.Column = column
		return token
	}
	return &Token{Type: EOFToken, Line: l.line, Column: l.column}
}

// getNextSymbol identifies the symbol at the current position.
func (l *Lexer) getNextSymbol() *Token {
	switch chTab[l.currentChar()] {
	case CommentStart:
		return l.gatherComment()
	case RAVStart:
		l.advance()
		if l.currentChar() == '*' {
			l.advance()
			return &Token{Type: ContinuationStart, Text: "(*"}
		}
		return &Token{Type: RAVStart, Text: "("}
	case RAVEnd:
		l.advance()
		return &Token{Type: RAVEnd, Text: ")"}
	case NAGToken:
		return l.gatherNAG()
	case Annotate:
		return l.gatherAnnotation()
	}

	rest := l.text[l.pos:]
	for _, result := range terminatingResults {
		if strings.HasPrefix(rest, result) {
			l.advanceBy(len(result))
			return &Token{Type: TerminatingResult, Text: result}
		}
	}
	for _, null := range []string{"--", escapedNullMove} {
		if strings.HasPrefix(rest, null) {
			l.advanceBy(len(null))
			return &Token{Type: NullMoveToken, Text: null}
		}
	}

	if chTab[l.currentChar()] == Digit {
		if token := l.gatherMoveNumber(); token != nil {
			return token
		}
	}
	return l.gatherMove()
}

// gatherComment reads a {...} comment, braces included. An unterminated
// comment yields an ErrorToken holding the rest of the input.
func (l *Lexer) gatherComment() *Token {
	end := strings.IndexByte(l.text[l.pos:], '}')
	if end < 0 {
		text := l.text[l.pos:]
		l.advanceBy(len(text))
		return &Token{Type: ErrorToken, Text: text}
	}
	text := l.text[l.pos : l.pos+end+1]
	l.advanceBy(len(text))
	return &Token{Type: CommentToken, Text: text}
}

// gatherNAG reads a $N glyph.
func (l *Lexer) gatherNAG() *Token {
	start := l.pos
	l.advance()
	for l.pos < len(l.text) && !moveDelimiters[l.currentChar()] {
		l.advance()
	}
	return &Token{Type: NAGToken, Text: l.text[start:l.pos]}
}

// gatherAnnotation reads a run of ! and ? and converts it to its glyph.
func (l *Lexer) gatherAnnotation() *Token {
	start := l.pos
	for chTab[l.currentChar()] == Annotate {
		l.advance()
	}
	return &Token{Type: NAGToken, Text: annotationToNAG(l.text[start:l.pos])}
}

// gatherMoveNumber reads digits followed by dots. It returns nil, consuming
// nothing, when the digits belong to a move such as 0-0.
func (l *Lexer) gatherMoveNumber() *Token {
	end := l.pos
	for end < len(l.text) && chTab[l.text[end]] == Digit {
		end++
	}
	if end < len(l.text) && l.text[end] != '.' && !moveDelimiters[l.text[end]] {
		return nil
	}
	for end < len(l.text) && l.text[end] == '.' {
		end++
	}

	text := l.text[l.pos:end]
	l.advanceBy(len(text))
	return &Token{Type: MoveNumber, Text: text}
}

// gatherMove reads SAN text up to the next delimiter.
func (l *Lexer) gatherMove() *Token {
	start := l.pos
	for l.pos < len(l.text) && !moveDelimiters[l.currentChar()] {
		l.advance()
	}
	text := l.text[start:l.pos]

	// Castling written with zeros
	if strings.HasPrefix(text, "0-0") {
		text = strings.ReplaceAll(text, "0", "O")
	}
	return &Token{Type: MoveToken, Text: text}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.line
}
