package matching

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/testutil"
)

func TestBoardRanks_InitialPosition(t *testing.T) {
	pos, err := engine.NewPositionFromFEN(engine.InitialFEN)
	if err != nil {
		t.Fatal(err)
	}

	want := [8]string{
		"rnbqkbnr", "pppppppp", "________", "________",
		"________", "________", "PPPPPPPP", "RNBQKBNR",
	}
	if diff := cmp.Diff(want, boardRanks(pos)); diff != "" {
		t.Errorf("boardRanks() mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchRank(t *testing.T) {
	tests := []struct {
		rank    string
		pattern string
		want    bool
	}{
		{"rnbqkbnr", "rnbqkbnr", true},
		{"________", "8", true},
		{"____P___", "4P3", true},
		{"____P___", "3P4", false},
		{"____P___", "*P*", true},
		{"____P___", "*p*", false},
		{"____P___", "????!???", true},
		{"____P___", "???!????", false},
		{"____P___", "____A___", true},
		{"____p___", "____A___", false},
		{"____p___", "4a3", true},
		{"R___K__R", "R*R", true},
		{"R___K__R", "R*", true},
		{"R___K__R", "*", true},
		{"R___K__R", "R3K2R", true},
		{"R___K__R", "R3K2", false},
		{"R___K__R", "9", false},
		{"________", "9", false},
		{"_", "", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.rank+" "+tt.pattern, func(t *testing.T) {
			if got := matchRank(tt.rank, tt.pattern); got != tt.want {
				t.Errorf("matchRank(%q, %q) = %v; want %v", tt.rank, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestInvertPattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"8/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/8"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"*/*/*/*/4A3/*/*/*", "*/*/*/4a3/*/*/*/*"},
	}
	for _, tt := range tests {
		if got := invertPattern(tt.in); got != tt.want {
			t.Errorf("invertPattern(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestPositionMatcher_Add(t *testing.T) {
	pm := NewPositionMatcher()
	if pm.PatternCount() != 0 {
		t.Fatalf("PatternCount() = %d; want 0", pm.PatternCount())
	}

	if err := pm.Add(engine.InitialFEN, "start"); err != nil {
		t.Errorf("Add(FEN): %v", err)
	}
	if err := pm.Add("*/*/*/*/4P3/*/*/*", "e4"); err != nil {
		t.Errorf("Add(pattern): %v", err)
	}
	if err := pm.AddPattern("8/8/8/8/8/8/8/4K3", "king", true); err != nil {
		t.Errorf("AddPattern: %v", err)
	}
	if pm.PatternCount() != 4 {
		t.Errorf("PatternCount() = %d; want 4", pm.PatternCount())
	}

	if err := pm.AddFEN("not a fen at all", ""); err == nil {
		t.Error("AddFEN(invalid) = nil; want error")
	}
	if err := pm.AddPattern("8/8/8", "", false); err == nil {
		t.Error("AddPattern(3 ranks) = nil; want error")
	}
}

func TestPositionMatcher_Find(t *testing.T) {
	const tree = "1. e4 e5 (1... c5 2. Nf3) 2. Nf3 Nc6 *"

	tests := []struct {
		name    string
		fen     string
		pattern string
		want    Location
		found   bool
	}{
		{
			name:  "start position",
			fen:   engine.InitialFEN,
			want:  Location{Node: 0, Ply: -1},
			found: true,
		},
		{
			name:  "main line ignores clocks",
			fen:   "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 7 30",
			want:  Location{Node: 0, Ply: 2},
			found: true,
		},
		{
			name:  "inside a variation",
			fen:   "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
			want:  Location{Node: 1, Ply: 1},
			found: true,
		},
		{
			name:    "pattern",
			pattern: "*/*/*/2p5/*/*/*/*",
			want:    Location{Node: 1, Ply: 0},
			found:   true,
		},
		{
			name:    "absent",
			pattern: "*/*/*/*/*/*/*/*Q*Q*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustParseGame(t, tree)
			pm := NewPositionMatcher()
			var err error
			if tt.fen != "" {
				err = pm.AddFEN(tt.fen, tt.name)
			} else {
				err = pm.AddPattern(tt.pattern, tt.name, false)
			}
			if err != nil {
				t.Fatal(err)
			}

			p, loc, ok := pm.Find(g)
			if ok != tt.found {
				t.Fatalf("Find() found = %v; want %v", ok, tt.found)
			}
			if !ok {
				return
			}
			if loc != tt.want {
				t.Errorf("Find() location = %+v; want %+v", loc, tt.want)
			}
			if p.Label != tt.name {
				t.Errorf("Find() label = %q; want %q", p.Label, tt.name)
			}
			if pm.Match(g) != tt.found {
				t.Errorf("Match() = %v; want %v", !tt.found, tt.found)
			}
		})
	}
}

func TestPositionMatcher_SetUpGame(t *testing.T) {
	g := testutil.MustParseGame(t, `[SetUp "1"]
[FEN "4k3/8/8/8/8/8/8/4K2R w K - 0 1"]

1. O-O *`)

	pm := NewPositionMatcher()
	if err := pm.AddPattern("4k3/8/8/8/8/8/8/5RK1", "castled", false); err != nil {
		t.Fatal(err)
	}
	_, loc, ok := pm.Find(g)
	if !ok || loc != (Location{Node: 0, Ply: 0}) {
		t.Errorf("Find() = %+v, %v; want ply 0 of the main line", loc, ok)
	}
}

func TestPositionMatcher_InvertMatchesFlipped(t *testing.T) {
	g := testutil.MustParseGame(t, "1. e4 e5 *")

	pm := NewPositionMatcher()
	if err := pm.AddPattern("*/*/*/*/*/*/*/*", "anything", false); err != nil {
		t.Fatal(err)
	}
	if !pm.Match(g) {
		t.Error("all-wildcard pattern should match the start position")
	}

	pm = NewPositionMatcher()
	if err := pm.AddPattern("*/*/*/4p3/*/*/8/*", "no second rank", true); err != nil {
		t.Fatal(err)
	}
	if pm.PatternCount() != 2 {
		t.Fatalf("PatternCount() = %d; want 2", pm.PatternCount())
	}
	if pm.Match(g) {
		t.Error("neither pattern nor its inversion occurs in the game")
	}
}

func TestPositionMatcher_Empty(t *testing.T) {
	g := testutil.MustParseGame(t, "1. e4 *")
	if NewPositionMatcher().Match(g) {
		t.Error("matcher without patterns should not match")
	}
}
