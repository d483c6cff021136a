// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-tree-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/matching"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	noTags       = flag.Bool("notags", false, "Don't output any tags")
	lineLength   = flag.Int("w", 80, "Maximum line length (0 = no limit)")
	newline      = flag.String("newline", "\n", "Line separator used in the output")
	moveCursor   = flag.Bool("cursor", false, "Mark the selected move with ' ^'")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showStatus   = flag.Bool("status", false, "Precede each game with its final FEN and status")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Classification
	ecoFile = flag.String("e", "", "Add ECO, Opening and Variation tags using the openings in this PGN file")

	// Selection
	tagFile      = flag.String("t", "", "Only output games whose tags satisfy the criteria in this file")
	playerName   = flag.String("p", "", "Only output games where this player has White or Black")
	soundexMatch = flag.Bool("S", false, "Match -p player names phonetically")
	positionText = flag.String("x", "", "Only output games reaching this FEN or placement pattern, variations included")

	// Parsing
	maxDepth = flag.Int("depth", config.DefaultMaxVariationDepth, "Maximum variation nesting depth")
	workers  = flag.Int("workers", 1, "Number of games parsed concurrently")

	// Position queries
	fenQuery   = flag.String("fen", "", "Position to query instead of reading games")
	listMoves  = flag.Bool("moves", false, "List the legal moves of the -fen position")
	fromSquare = flag.String("square", "", "Only list moves from this square (with -moves)")
	algebraic  = flag.Bool("algebraic", false, "List moves from -square as from-to pairs (e2-e4)")
	destOnly   = flag.Bool("dest", false, "List only the destination squares of moves from -square")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	quiet     = flag.Bool("s", false, "Silent mode: no game count at the end")
	verbose   = flag.Bool("v", false, "Report every rejected game")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	cfg.Workers = *workers

	applyOutputFlags(cfg)

	cfg.Parse.MaxVariationDepth = *maxDepth

	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.Capacity = *duplicateCapacity
}

// applyOutputFlags sets the rendering options.
func applyOutputFlags(cfg *config.Config) {
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.Newline = *newline
	cfg.Output.ShowMoveCursor = *moveCursor
	cfg.Output.ShowHeaders = !*noTags
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowStatus = *showStatus
}

// buildMatcher combines the selection flags, or returns nil when none is set.
func buildMatcher() (matching.GameMatcher, error) {
	all := matching.NewCompositeMatcher(matching.MatchAll)

	if *tagFile != "" || *playerName != "" {
		tm := matching.NewTagMatcher()
		if *tagFile != "" {
			file, err := os.Open(*tagFile)
			if err != nil {
				return nil, fmt.Errorf("cannot open tag file: %w", err)
			}
			err = tm.Load(file)
			file.Close() //nolint:errcheck,gosec // G104: read-only file
			if err != nil {
				return nil, pgnerrors.Wrap(err, *tagFile)
			}
		}
		if *playerName != "" {
			if err := tm.AddPlayerCriterion(*playerName, *soundexMatch); err != nil {
				return nil, err
			}
		}
		all.Add(tm)
	}

	if *positionText != "" {
		pm := matching.NewPositionMatcher()
		if err := pm.Add(*positionText, *positionText); err != nil {
			return nil, err
		}
		all.Add(pm)
	}

	if all.Len() == 0 {
		return nil, nil
	}
	return all, nil
}
