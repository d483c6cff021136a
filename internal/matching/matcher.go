// Package matching selects games by their header tags and by the positions
// reached anywhere in their variation tree.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// GameMatcher is implemented by every game selection criterion.
type GameMatcher interface {
	// Match reports whether the game satisfies the criterion.
	Match(g *game.Game) bool

	// Name describes the criterion for diagnostics.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher. An empty AND composite accepts every game;
// an empty OR composite accepts none.
func (c *CompositeMatcher) Match(g *game.Game) bool {
	for _, m := range c.matchers {
		if m.Match(g) == (c.mode == MatchAny) {
			return c.mode == MatchAny
		}
	}
	return c.mode == MatchAll
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}
	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add appends a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers combined.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}
