package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/output"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertErrorIs fails unless err wraps target.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror %v does not wrap %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertFEN fails unless the selected board of g is fen.
func AssertFEN(t testing.TB, g *game.Game, fen string) {
	t.Helper()
	if got := g.FEN(); got != fen {
		t.Errorf("FEN() = %q, want %q", got, fen)
	}
}

// AssertHistory fails unless the moves leading to the selected ply are sans.
func AssertHistory(t testing.TB, g *game.Game, sans ...string) {
	t.Helper()
	if diff := cmp.Diff(sans, g.History()); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}

// AssertMovetext fails unless g renders, without tag pairs or line breaks,
// as want.
func AssertMovetext(t testing.TB, g *game.Game, want string) {
	t.Helper()
	opts := output.DefaultOptions()
	opts.ShowHeaders = false
	opts.MaxWidth = 0
	if diff := cmp.Diff(want, output.PGN(g, opts)); diff != "" {
		t.Errorf("movetext mismatch (-want +got):\n%s", diff)
	}
}

// prefix formats optional message arguments as "msg: ".
func prefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprintf("%v: ", msgAndArgs[0])
}
