package matching

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/game"
)

func headerGame(pairs ...string) *game.Game {
	return game.MustNew("", game.WithHeader(pairs...))
}

func TestSoundex(t *testing.T) {
	tests := []struct {
		name1, name2 string
		shouldMatch  bool
	}{
		{"Fischer", "Fisher", true},
		{"Kasparov", "Kasparov", true},
		{"Carlsen", "Carlson", true},
		{"Fischer", "Kasparov", false},
		{"Smith", "Smyth", true},
		{"Robert", "Rupert", true},
		{"Alekhine", "Aljechin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name1+" vs "+tt.name2, func(t *testing.T) {
			s1 := Soundex(tt.name1)
			s2 := Soundex(tt.name2)
			if (s1 == s2) != tt.shouldMatch {
				t.Errorf("Soundex(%s)=%s, Soundex(%s)=%s, want match=%v",
					tt.name1, s1, tt.name2, s2, tt.shouldMatch)
			}
		})
	}
}

func TestSoundexShape(t *testing.T) {
	if got := Soundex("Tal"); got != "T40000" {
		t.Errorf("Soundex(Tal) = %q; want T40000", got)
	}
	if got := Soundex("  "); got != "" {
		t.Errorf("Soundex(blank) = %q; want empty", got)
	}
	if !SoundexMatch("fischer", "FISCHER") {
		t.Error("SoundexMatch should ignore case")
	}
}

type constMatcher bool

func (c constMatcher) Match(*game.Game) bool { return bool(c) }
func (c constMatcher) Name() string {
	if c {
		return "yes"
	}
	return "no"
}

func TestCompositeMatcher(t *testing.T) {
	g := headerGame()
	tests := []struct {
		name     string
		mode     MatchMode
		matchers []GameMatcher
		want     bool
	}{
		{"and all true", MatchAll, []GameMatcher{constMatcher(true), constMatcher(true)}, true},
		{"and one false", MatchAll, []GameMatcher{constMatcher(true), constMatcher(false)}, false},
		{"or one true", MatchAny, []GameMatcher{constMatcher(false), constMatcher(true)}, true},
		{"or all false", MatchAny, []GameMatcher{constMatcher(false), constMatcher(false)}, false},
		{"empty and", MatchAll, nil, true},
		{"empty or", MatchAny, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompositeMatcher(tt.mode, tt.matchers...)
			if got := c.Match(g); got != tt.want {
				t.Errorf("Match() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeMatcher_Name(t *testing.T) {
	c := NewCompositeMatcher(MatchAny)
	if got := c.Name(); got != "CompositeMatcher(empty)" {
		t.Errorf("Name() = %q", got)
	}

	c.Add(constMatcher(true))
	c.Add(NewTagMatcher())
	if got, want := c.Name(), "CompositeMatcher(OR: yes, TagMatcher(0))"; got != want {
		t.Errorf("Name() = %q; want %q", got, want)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}
}

func TestGameMatcherInterface(t *testing.T) {
	var _ GameMatcher = NewTagMatcher()
	var _ GameMatcher = NewPositionMatcher()
	var _ GameMatcher = NewCompositeMatcher(MatchAll)
}
