// Package eco classifies the main line of a game against a table of named
// openings (Encyclopaedia of Chess Openings codes).
package eco

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/hashing"
	"github.com/lgbarn/pgn-tree-go/internal/parser"
)

// HalfMoveLimit is how far a transposed line may be from its table entry,
// in plies, and still be classified by it.
const HalfMoveLimit = 6

// Header tags read from the table and written to classified games.
const (
	ECOTag          = "ECO"
	OpeningTag      = "Opening"
	VariationTag    = "Variation"
	SubVariationTag = "SubVariation"
)

// Entry is one named opening line.
type Entry struct {
	Code         string // e.g. "B33"
	Opening      string // e.g. "Sicilian"
	Variation    string
	SubVariation string

	hash      uint64 // position at the end of the line
	pathHash  uint64 // XOR of every position along the line
	halfMoves int
}

// Classifier maps positions reached by opening lines to their entries.
type Classifier struct {
	entries      map[uint64][]*Entry
	maxHalfMoves int
	loaded       int
}

// NewClassifier creates an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{
		entries:      make(map[uint64][]*Entry),
		maxHalfMoves: HalfMoveLimit,
	}
}

// LoadFromFile reads opening lines from a PGN file.
func (c *Classifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: user-specified table
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return c.LoadFromReader(file)
}

// LoadFromReader reads opening lines in PGN: each game carries an ECO tag
// and optional Opening, Variation and SubVariation tags. Games without an
// ECO tag or without moves are ignored.
func (c *Classifier) LoadFromReader(r io.Reader) error {
	cfg := config.NewConfig()
	cfg.Verbosity = 0

	games, err := parser.NewParser(r, cfg).ParseAllGames()
	if err != nil {
		return fmt.Errorf("error parsing ECO file: %w", err)
	}

	for _, g := range games {
		c.add(g)
	}
	return nil
}

func (c *Classifier) add(g *game.Game) {
	code := g.Header.Value(ECOTag)
	if code == "" {
		return
	}

	var hash, pathHash uint64
	halfMoves := replayMainLine(g, -1, func(_ int, h uint64) {
		hash = h
		pathHash ^= h
	})
	if halfMoves == 0 {
		return
	}

	for _, existing := range c.entries[hash] {
		if existing.halfMoves == halfMoves && existing.pathHash == pathHash {
			return
		}
	}

	c.entries[hash] = append(c.entries[hash], &Entry{
		Code:         code,
		Opening:      g.Header.Value(OpeningTag),
		Variation:    g.Header.Value(VariationTag),
		SubVariation: g.Header.Value(SubVariationTag),
		hash:         hash,
		pathHash:     pathHash,
		halfMoves:    halfMoves,
	})
	c.loaded++
	c.maxHalfMoves = max(c.maxHalfMoves, halfMoves+HalfMoveLimit)
}

// Classify returns the deepest entry matched by the main line of g, or nil.
// Variations are not considered.
func (c *Classifier) Classify(g *game.Game) *Entry {
	if c.loaded == 0 {
		return nil
	}

	var best *Entry
	var pathHash uint64
	replayMainLine(g, c.maxHalfMoves, func(ply int, h uint64) {
		pathHash ^= h
		if match := c.lookup(h, pathHash, ply); match != nil {
			best = match
		}
	})
	return best
}

// lookup prefers the entry reached along the same path; otherwise any entry
// for the position within HalfMoveLimit plies will do.
func (c *Classifier) lookup(hash, pathHash uint64, halfMoves int) *Entry {
	var possible *Entry
	for _, e := range c.entries[hash] {
		if e.halfMoves == halfMoves && e.pathHash == pathHash {
			return e
		}
		if abs(halfMoves-e.halfMoves) <= HalfMoveLimit {
			possible = e
		}
	}
	return possible
}

// AddTags writes the classification of g into its header and reports
// whether there was one.
func (c *Classifier) AddTags(g *game.Game) bool {
	match := c.Classify(g)
	if match == nil {
		return false
	}

	for _, tag := range []struct{ key, value string }{
		{ECOTag, match.Code},
		{OpeningTag, match.Opening},
		{VariationTag, match.Variation},
		{SubVariationTag, match.SubVariation},
	} {
		if tag.value != "" {
			g.Header.Set(tag.key, tag.value)
		}
	}
	return true
}

// EntriesLoaded returns the number of distinct lines in the table.
func (c *Classifier) EntriesLoaded() int {
	return c.loaded
}

// replayMainLine plays the main line of g from its start, calling fn with
// the 1-based ply and the hash of each position reached, and returns the
// number of plies played. A negative limit plays the whole line.
func replayMainLine(g *game.Game, limit int, fn func(ply int, hash uint64)) int {
	root := g.Root()
	pos, _ := root.PositionAt(-1)

	n := root.Len()
	if limit >= 0 {
		n = min(n, limit)
	}
	for i := 0; i < n; i++ {
		pos.Apply(root.Entry(i).Move())
		fn(i+1, hashing.GenerateZobristHash(pos))
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
