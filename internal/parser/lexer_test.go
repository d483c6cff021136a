package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lexAll returns every token of text up to, not including, EOF.
func lexAll(text string) []*Token {
	var tokens []*Token
	l := NewLexer(text)
	for {
		tok := l.NextToken()
		if tok.Type == EOFToken {
			return tokens
		}
		tokens = append(tokens, tok)
		if tok.Type == ErrorToken {
			return tokens
		}
	}
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []TokenType
		texts []string
	}{
		{
			name:  "compact move numbers",
			input: "1.e4 e5 2.Nf3",
			types: []TokenType{MoveNumber, MoveToken, MoveToken, MoveNumber, MoveToken},
			texts: []string{"1.", "e4", "e5", "2.", "Nf3"},
		},
		{
			name:  "black move number",
			input: "12... Qxd4+",
			types: []TokenType{MoveNumber, MoveToken},
			texts: []string{"12...", "Qxd4+"},
		},
		{
			name:  "castling with zeros",
			input: "0-0 0-0-0",
			types: []TokenType{MoveToken, MoveToken},
			texts: []string{"O-O", "O-O-O"},
		},
		{
			name:  "suffix annotations",
			input: "e4! d5?? Nc3!?",
			types: []TokenType{MoveToken, NAGToken, MoveToken, NAGToken, MoveToken, NAGToken},
			texts: []string{"e4", "$1", "d5", "$4", "Nc3", "$5"},
		},
		{
			name:  "unknown annotation run",
			input: "e4!!!",
			types: []TokenType{MoveToken, NAGToken},
			texts: []string{"e4", "$0"},
		},
		{
			name:  "glyphs",
			input: "e4 $1 $011",
			types: []TokenType{MoveToken, NAGToken, NAGToken},
			texts: []string{"e4", "$1", "$011"},
		},
		{
			name:  "variations and continuations",
			input: "(e4) (* e4)",
			types: []TokenType{RAVStart, MoveToken, RAVEnd, ContinuationStart, MoveToken, RAVEnd},
			texts: []string{"(", "e4", ")", "(*", "e4", ")"},
		},
		{
			name:  "comments keep their braces",
			input: "{ a comment } e4 {another}",
			types: []TokenType{CommentToken, MoveToken, CommentToken},
			texts: []string{"{ a comment }", "e4", "{another}"},
		},
		{
			name:  "semicolon is dropped",
			input: "e4 ; ignored\ne5",
			types: []TokenType{MoveToken, MoveToken, MoveToken},
			texts: []string{"e4", "ignored", "e5"},
		},
		{
			name:  "results",
			input: "1-0 0-1 1/2-1/2 *",
			types: []TokenType{TerminatingResult, TerminatingResult, TerminatingResult, TerminatingResult},
			texts: []string{"1-0", "0-1", "1/2-1/2", "*"},
		},
		{
			name:  "null moves",
			input: "-- &lt;&gt;",
			types: []TokenType{NullMoveToken, NullMoveToken},
			texts: []string{"--", "&lt;&gt;"},
		},
		{
			name:  "unterminated comment",
			input: "e4 {never closed",
			types: []TokenType{MoveToken, ErrorToken},
			texts: []string{"e4", "{never closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := lexAll(tt.input)
			var types []TokenType
			var texts []string
			for _, tok := range tokens {
				types = append(types, tok.Type)
				texts = append(texts, tok.Text)
			}
			assert.Equal(t, tt.types, types)
			assert.Equal(t, tt.texts, texts)
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := lexAll("1. e4\n  {note\nmore} e5")

	want := []struct{ line, column int }{
		{1, 1}, // 1.
		{1, 4}, // e4
		{2, 3}, // {note...}
		{3, 7}, // e5
	}
	if assert.Len(t, tokens, len(want)) {
		for i, w := range want {
			assert.Equal(t, w.line, tokens[i].Line, "token %d line", i)
			assert.Equal(t, w.column, tokens[i].Column, "token %d column", i)
		}
	}
}

func TestLexerStartLine(t *testing.T) {
	l := newLexerAt("e4\ne5", 10)
	assert.Equal(t, 10, l.NextToken().Line)
	assert.Equal(t, 11, l.NextToken().Line)
	assert.Equal(t, 11, l.LineNumber())
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "MOVE", MoveToken.String())
	assert.Equal(t, "CONTINUATION_START", ContinuationStart.String())
	assert.Equal(t, "UNKNOWN", TokenType(99).String())
	assert.Equal(t, NAGToken, NewToken(NAGToken).Type)
}
