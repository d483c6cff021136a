package parser

import (
	"regexp"
	"strings"
)

// GameText is the raw text of one game: its tag pairs and its movetext.
type GameText struct {
	HeaderText string
	MoveText   string

	// Number is the 1-based position of the game in the input
	Number int

	// Line is where MoveText starts in the normalized input
	Line int
}

var (
	lineEndRegex       = regexp.MustCompile(`\r?\n`)
	unicodeSpaceRegex  = regexp.MustCompile(`[\x{00A0}\x{180E}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]`)
	unicodeDashRegex   = regexp.MustCompile(`[\x{2010}-\x{2015}]`)
	unicodeEllipsis    = regexp.MustCompile(`[\x{2025}\x{2026}]`)
	escapeLineRegex    = regexp.MustCompile(`(?m)^%.*(?:\n|$)`)
	headerBlockRegex   = regexp.MustCompile(`\s*(\[\s*\w+\s*"[^"]*"\s*\]\s*)+`)
	headerKeyRegex     = regexp.MustCompile(`^\[([A-Z][A-Za-z]*)\s.*\]$`)
	headerValueRegex   = regexp.MustCompile(`^\[[A-Za-z]+\s"(.*)"\]$`)
	punctuationFolding = strings.NewReplacer(
		"\u00bd", "1/2",
		"\u2024", ".",
		`\"`, "'",
	)
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// Normalize folds the punctuation variants found in PGN files in the wild
// to ASCII, escapes the characters that are unsafe in HTML and drops the
// %-escaped lines.
func Normalize(text string) string {
	text = lineEndRegex.ReplaceAllString(text, "\n")
	text = unicodeSpaceRegex.ReplaceAllString(text, " ")
	text = unicodeDashRegex.ReplaceAllString(text, "-")
	text = unicodeEllipsis.ReplaceAllString(text, "...")
	text = punctuationFolding.Replace(text)
	text = htmlEscaper.Replace(text)
	return escapeLineRegex.ReplaceAllString(text, "")
}

// SplitGames cuts normalized text into games at each block of tag pairs.
// A block that appears inside an open { comment belongs to the movetext.
// Text without any tag pairs is a single game.
func SplitGames(text string) []GameText {
	var games []GameText

	emit := func(head string, moveStart, moveEnd int) {
		games = append(games, GameText{
			HeaderText: head,
			MoveText:   text[moveStart:moveEnd],
			Number:     len(games) + 1,
			Line:       1 + strings.Count(text[:moveStart], "\n"),
		})
	}

	var head string
	haveHead := false
	moveStart, searchFrom := 0, 0
	for {
		loc := headerBlockRegex.FindStringIndex(text[searchFrom:])
		if loc == nil {
			break
		}
		start, end := searchFrom+loc[0], searchFrom+loc[1]
		searchFrom = end

		if insideComment(text[moveStart:start]) {
			continue
		}
		if haveHead {
			emit(head, moveStart, start)
		}
		head = text[start:end]
		haveHead = true
		moveStart = end
	}

	if !haveHead {
		return []GameText{{MoveText: text, Number: 1, Line: 1}}
	}
	emit(head, moveStart, len(text))
	return games
}

// insideComment reports whether text ends inside an unclosed { comment.
func insideComment(text string) bool {
	open := strings.LastIndexByte(text, '{')
	return open >= 0 && strings.LastIndexByte(text, '}') < open
}

// ParseHeader reads one tag pair per line into key/value pairs. Lines that
// are not tag pairs are ignored. The FEN tag, if any, is returned as well.
func ParseHeader(text string) (pairs []string, fen string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		key := headerKeyRegex.FindStringSubmatch(line)
		if key == nil {
			continue
		}
		var value string
		if m := headerValueRegex.FindStringSubmatch(line); m != nil {
			value = m[1]
		}
		pairs = append(pairs, key[1], value)
		if strings.EqualFold(key[1], "FEN") {
			fen = value
		}
	}
	return pairs, fen
}
