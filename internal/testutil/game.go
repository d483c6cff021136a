// Package testutil provides shared test utilities for the pgn-tree-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/parser"
)

// Games shared by tests across packages.
const (
	FoolsMate = `[Event "Fool's mate"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1`

	ScholarsMate = `[Event "Scholar's mate"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0`

	// ScholarsMateByTransposition reaches the final position of
	// ScholarsMate through another move order.
	ScholarsMateByTransposition = `[Event "Transposed"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0`

	WithVariations = `[Event "Variations"]
[Result "*"]

1. e4 e5 (1... c5 2. Nf3 (* 2... d6)) 2. Nf3 {Developing} Nc6 *`
)

// ParseTestGame parses a PGN string and returns the first game, or nil if
// parsing fails. Use this for tests where parse failure is an acceptable
// outcome.
func ParseTestGame(pgn string) *game.Game {
	if games := ParseTestGames(pgn); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames parses a PGN string and returns all games found.
// Returns nil if parsing fails.
func ParseTestGames(pgn string) []*game.Game {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	games, err := parser.Parse(pgn, cfg)
	if err != nil {
		return nil
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if parsing fails.
func MustParseGame(t testing.TB, pgn string) *game.Game {
	t.Helper()
	g := ParseTestGame(pgn)
	if g == nil {
		t.Fatalf("failed to parse test game:\n%s", pgn)
	}
	return g
}

// MustParseGames parses a PGN string and returns all games found.
// It calls t.Fatal if parsing fails.
func MustParseGames(t testing.TB, pgn string) []*game.Game {
	t.Helper()
	games := ParseTestGames(pgn)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgn)
	}
	return games
}

// PlayGame starts a game from fen, the standard position when empty, and
// plays sans on its main line. It calls t.Fatal on an illegal move.
func PlayGame(t testing.TB, fen string, sans ...string) *game.Game {
	t.Helper()
	g, err := game.New(fen)
	if err != nil {
		t.Fatalf("game.New(%q): %v", fen, err)
	}
	for _, san := range sans {
		if err := g.MakeMoveFromSAN(san); err != nil {
			t.Fatalf("MakeMoveFromSAN(%q): %v", san, err)
		}
	}
	return g
}
