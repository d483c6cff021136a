package testutil

import (
	"fmt"
	"testing"

	pgnerrors "github.com/lgbarn/pgn-tree-go/internal/errors"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, []string{"e4", "e5"}, []string{"e4", "e5"})
	AssertEqual(t, map[string]int{"plies": 3}, map[string]int{"plies": 3}, "with %s", "context")
}

func TestAssertErrorIs(t *testing.T) {
	err := fmt.Errorf("bad tag: %w", pgnerrors.ErrInvalidFEN)
	AssertErrorIs(t, err, pgnerrors.ErrInvalidFEN)
}

func TestAssertMovetextWithVariations(t *testing.T) {
	g := MustParseGame(t, WithVariations)
	AssertMovetext(t, g, "1. e4 e5 (1... c5 2. Nf3 (* 2... d6)) 2. Nf3 {Developing} Nc6 *")
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		args []interface{}
		want string
	}{
		{nil, ""},
		{[]interface{}{"plain"}, "plain: "},
		{[]interface{}{"ply %d", 3}, "ply 3: "},
		{[]interface{}{42}, "42: "},
	}
	for _, tt := range tests {
		if got := prefix(tt.args...); got != tt.want {
			t.Errorf("prefix(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
