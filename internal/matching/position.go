package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/hashing"
)

// FENPattern is a board to look for, either an exact FEN or the placement
// field of a FEN extended with wildcards:
//   - ? matches any square
//   - ! matches any occupied square
//   - * matches zero or more squares
//   - A matches any white piece, a any black piece
//   - _ matches an empty square
type FENPattern struct {
	Pattern string
	Label   string
	hash    uint64 // exact patterns only
	exact   bool
	ranks   []string
}

// Location identifies a position inside a game's variation tree: the
// position after ply Ply of variation Node, or its start when Ply is -1.
type Location struct {
	Node game.NodeID
	Ply  int
}

// PositionMatcher selects games reaching one of its positions anywhere in
// their tree, variations included.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates an empty position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact position. Move clocks are ignored when comparing.
func (pm *PositionMatcher) AddFEN(fen, label string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	p := &FENPattern{
		Pattern: fen,
		Label:   label,
		hash:    hashing.GenerateZobristHash(pos),
		exact:   true,
	}
	pm.patterns = append(pm.patterns, p)
	pm.exactHashes[p.hash] = p
	return nil
}

// AddPattern adds a wildcard placement pattern. With includeInvert the
// colour-reversed pattern is added as well.
func (pm *PositionMatcher) AddPattern(pattern, label string, includeInvert bool) error {
	ranks := strings.Split(pattern, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("pattern %q needs %d ranks, has %d", pattern, chess.BoardSize, len(ranks))
	}
	pm.patterns = append(pm.patterns, &FENPattern{Pattern: pattern, Label: label, ranks: ranks})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
	return nil
}

// Add accepts either a full FEN or a placement pattern.
func (pm *PositionMatcher) Add(text, label string) error {
	if strings.ContainsAny(text, " ") {
		return pm.AddFEN(text, label)
	}
	return pm.AddPattern(text, label, false)
}

// PatternCount returns the number of patterns, inverted copies included.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(g *game.Game) bool {
	_, _, ok := pm.Find(g)
	return ok
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d)", len(pm.patterns))
}

// Find returns the first pattern matched and where, visiting the start of
// the game and then each variation in creation order.
func (pm *PositionMatcher) Find(g *game.Game) (*FENPattern, Location, bool) {
	if len(pm.patterns) == 0 {
		return nil, Location{}, false
	}

	for id := game.NodeID(0); int(id) < g.NumNodes(); id++ {
		v := g.Node(id)
		pos, _ := v.PositionAt(-1)
		// A child line starts from a position its parent already visits.
		if id == 0 {
			if p := pm.matchPosition(pos); p != nil {
				return p, Location{Node: id, Ply: -1}, true
			}
		}
		for i := 0; i < v.Len(); i++ {
			pos.Apply(v.Entry(i).Move())
			if p := pm.matchPosition(pos); p != nil {
				return p, Location{Node: id, Ply: i}, true
			}
		}
	}
	return nil, Location{}, false
}

func (pm *PositionMatcher) matchPosition(pos *engine.Position) *FENPattern {
	if len(pm.exactHashes) > 0 {
		if p, ok := pm.exactHashes[hashing.GenerateZobristHash(pos)]; ok {
			return p
		}
	}

	var ranks [chess.BoardSize]string
	filled := false
	for _, p := range pm.patterns {
		if p.exact {
			continue
		}
		if !filled {
			ranks = boardRanks(pos)
			filled = true
		}
		if p.matches(ranks) {
			return p
		}
	}
	return nil
}

func (p *FENPattern) matches(ranks [chess.BoardSize]string) bool {
	for i, pr := range p.ranks {
		if !matchRank(ranks[i], pr) {
			return false
		}
	}
	return true
}

// boardRanks renders each rank, rank 8 first, with '_' for empty squares.
func boardRanks(pos *engine.Position) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string
	buf := make([]byte, chess.BoardSize)
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			piece := pos.Get(chess.NewSquare(f, r))
			if piece == chess.Empty {
				buf[f] = '_'
			} else {
				buf[f] = piece.Symbol()
			}
		}
		ranks[r] = string(buf)
	}
	return ranks
}

// matchRank matches a rendered rank against one rank of a pattern.
func matchRank(rank, pattern string) bool {
	for pattern != "" {
		c := pattern[0]
		pattern = pattern[1:]

		switch {
		case c == '*':
			for i := 0; i <= len(rank); i++ {
				if matchRank(rank[i:], pattern) {
					return true
				}
			}
			return false

		case c >= '1' && c <= '8':
			n := int(c - '0')
			if len(rank) < n || strings.Trim(rank[:n], "_") != "" {
				return false
			}
			rank = rank[n:]

		default:
			if rank == "" || !matchSquare(rank[0], c) {
				return false
			}
			rank = rank[1:]
		}
	}
	return rank == ""
}

func matchSquare(sq, c byte) bool {
	switch c {
	case '?':
		return true
	case '!':
		return sq != '_'
	case 'A':
		return sq >= 'A' && sq <= 'Z'
	case 'a':
		return sq >= 'a' && sq <= 'z'
	default:
		return sq == c
	}
}

// invertPattern swaps the colours of a pattern and mirrors it vertically.
func invertPattern(pattern string) string {
	swapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		}
		return r
	}, pattern)

	ranks := strings.Split(swapped, "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}
