// Package output renders game trees as PGN text and JSON.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// moveCursorMarker follows the selected move when the cursor is shown.
const moveCursorMarker = " ^"

// Options control PGN rendering.
type Options struct {
	// MaxWidth wraps the movetext at this many characters; 0 keeps it on
	// one line
	MaxWidth int

	// Newline separates header lines and wrapped movetext lines
	Newline string

	// ShowMoveCursor writes " ^" after the selected move
	ShowMoveCursor bool

	// ShowHeaders writes the tag pairs before the movetext
	ShowHeaders bool
}

// DefaultOptions returns single-line movetext with headers.
func DefaultOptions() Options {
	return Options{
		Newline:     "\n",
		ShowHeaders: true,
	}
}

// OptionsFromConfig reads the rendering options from the output config.
func OptionsFromConfig(cfg *config.OutputConfig) Options {
	return Options{
		MaxWidth:       int(cfg.MaxLineLength),
		Newline:        cfg.Newline,
		ShowMoveCursor: cfg.ShowMoveCursor,
		ShowHeaders:    cfg.ShowHeaders,
	}
}

// OutputWriter joins tokens with spaces, breaking the line before a token
// that would pass the maximum width. A token is never split.
type OutputWriter struct {
	sb            *strings.Builder
	lineLength    int
	maxLineLength int
	newline       string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of 0 never
// breaks lines.
func NewOutputWriter(sb *strings.Builder, maxLineLength int, newline string) *OutputWriter {
	return &OutputWriter{
		sb:            sb,
		maxLineLength: maxLineLength,
		newline:       newline,
	}
}

// Write writes a token, preceded by a space or a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace {
		if o.maxLineLength > 0 && o.lineLength+len(s) > o.maxLineLength {
			o.sb.WriteString(o.newline)
			o.lineLength = 0
		} else {
			o.sb.WriteByte(' ')
			o.lineLength++
		}
	}

	o.sb.WriteString(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// PGN renders the game: tag pairs, then the movetext of every line, then
// the Result tag value.
func PGN(g *game.Game, opts Options) string {
	if opts.Newline == "" {
		opts.Newline = "\n"
	}

	var sb strings.Builder
	if opts.ShowHeaders {
		outputTags(g.Header, opts, &sb)
	}

	tokens := variationTokens(g, g.Root(), g.Root().StartMoveNumber(), opts)
	if result, ok := g.Header.Get(chess.ResultTag); ok && result != "" {
		tokens = append(tokens, result)
	}

	ow := NewOutputWriter(&sb, opts.MaxWidth, opts.Newline)
	for _, token := range tokens {
		ow.Write(token)
	}
	return sb.String()
}

// outputTags writes one line per tag pair and a blank line after them.
func outputTags(h *chess.Header, opts Options, sb *strings.Builder) {
	for i := 0; i < h.Len(); i++ {
		key, value := h.At(i)
		fmt.Fprintf(sb, "[%s \"%s\"]%s", key, value, opts.Newline)
	}
	if h.Len() > 0 {
		sb.WriteString(opts.Newline)
	}
}

// variationTokens lists the movetext tokens of one line and, depth first,
// of the lines branching from it. moveNum is the number of the first move
// of the line.
func variationTokens(g *game.Game, v *game.Variation, moveNum int, opts Options) []string {
	var tokens []string
	tokens = appendAnnotations(tokens, v.Slot(0))

	afterChild := false
	for i := 0; i < v.Len(); i++ {
		entry := v.Entry(i)
		move := entry.Move()
		black := move.Piece.Colour() == chess.Black

		switch {
		case i == 0 && black:
			tokens = append(tokens, strconv.Itoa(moveNum)+"...")
			moveNum++
		case afterChild && black && !v.Continuation:
			tokens = append(tokens, strconv.Itoa(moveNum-1)+"...")
		case !black:
			tokens = append(tokens, strconv.Itoa(moveNum)+".")
			moveNum++
		}

		tokens = append(tokens, move.Text())
		if opts.ShowMoveCursor && g.Current() == v && v.Cursor() == i {
			tokens = append(tokens, moveCursorMarker)
		}
		tokens = appendAnnotations(tokens, v.Slot(i+1))

		afterChild = false
		for _, id := range entry.Children {
			child := g.Node(id)
			childTokens := variationTokens(g, child, child.StartMoveNumber(), opts)
			if len(childTokens) == 0 {
				tokens = append(tokens, "()")
			} else {
				open := "("
				if child.Continuation {
					open = "(* "
				}
				childTokens[0] = open + childTokens[0]
				childTokens[len(childTokens)-1] += ")"
				tokens = append(tokens, childTokens...)
			}
			afterChild = true
		}
	}
	return tokens
}

// appendAnnotations appends comments and glyphs verbatim.
func appendAnnotations(tokens []string, annotations []chess.Annotation) []string {
	for _, a := range annotations {
		tokens = append(tokens, a.Text)
	}
	return tokens
}
