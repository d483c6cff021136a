// processor.go - Game processing and output functions
package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/eco"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	pgnerrors "github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/hashing"
	"github.com/lgbarn/pgn-tree-go/internal/matching"
	"github.com/lgbarn/pgn-tree-go/internal/output"
	"github.com/lgbarn/pgn-tree-go/internal/parser"
	"github.com/lgbarn/pgn-tree-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg       *config.Config
	detector  *hashing.ThreadSafeDuplicateDetector
	writer    output.GameWriter
	dupWriter output.GameWriter

	// classifier tags games with their opening when set.
	classifier *eco.Classifier

	// matcher selects the games to output when set.
	matcher matching.GameMatcher
}

// NewProcessingContext creates the writers and, when duplicates are
// suppressed or collected, the detector. Collected duplicates go to their own
// file instead of the output.
func NewProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		writer: output.NewGameWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		ctx.detector = hashing.NewThreadSafeDuplicateDetector(true, cfg.Duplicate.Capacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		ctx.dupWriter = output.NewGameWriter(cfg.Duplicate.DuplicateFile, cfg)
	}
	return ctx
}

// Close flushes the writers.
func (ctx *ProcessingContext) Close() error {
	err := ctx.writer.Close()
	if ctx.dupWriter != nil {
		if dupErr := ctx.dupWriter.Close(); err == nil {
			err = dupErr
		}
	}
	return err
}

// processStats counts what happened to the games of one or more inputs.
type processStats struct {
	total      int
	output     int
	duplicates int
	rejected   int
	unmatched  int
}

func (s *processStats) add(o processStats) {
	s.total += o.total
	s.output += o.output
	s.duplicates += o.duplicates
	s.rejected += o.rejected
	s.unmatched += o.unmatched
}

// processInput parses every game read from r and writes the accepted ones.
// A game that fails to parse is reported on the log and skipped; only
// read and write failures are returned.
func processInput(r io.Reader, filename string, ctx *ProcessingContext) (processStats, error) {
	var stats processStats

	data, err := io.ReadAll(r)
	if err != nil {
		return stats, pgnerrors.Wrapf(err, "reading %s", filename)
	}

	cfg := ctx.cfg
	cfg.CurrentInputFile = filename
	texts := parser.SplitGames(parser.Normalize(string(data)))
	if len(texts) == 1 && strings.TrimSpace(texts[0].HeaderText+texts[0].MoveText) == "" {
		return stats, nil
	}

	err = worker.ParseGames(texts, cfg, ctx.detector, func(res worker.Result) error {
		stats.total++
		if res.Error != nil {
			stats.rejected++
			logGameError(cfg, gameError(filename, res))
			return nil
		}
		if ctx.matcher != nil && !ctx.matcher.Match(res.Game) {
			stats.unmatched++
			return nil
		}
		if ctx.classifier != nil {
			ctx.classifier.AddTags(res.Game)
		}

		if res.Duplicate {
			stats.duplicates++
			if ctx.dupWriter != nil {
				return ctx.dupWriter.WriteGame(res.Game)
			}
			if cfg.Duplicate.Suppress {
				if cfg.Verbosity > 1 {
					logGameError(cfg, &pgnerrors.GameError{
						Err:     pgnerrors.ErrDuplicateGame,
						GameNum: res.Text.Number,
						File:    filename,
						Line:    res.Text.Line,
					})
				}
				return nil
			}
		}

		if err := ctx.writer.WriteGame(res.Game); err != nil {
			return err
		}
		stats.output++
		return nil
	})
	return stats, err
}

// gameError puts a parse failure in the context of its game.
func gameError(filename string, res worker.Result) *pgnerrors.GameError {
	ge := &pgnerrors.GameError{
		Err:     res.Error,
		GameNum: res.Text.Number,
		File:    filename,
		Line:    res.Text.Line,
	}
	var moveErr *pgnerrors.MoveError
	if errors.As(res.Error, &moveErr) {
		ge.PlyNum = moveErr.Ply
		ge.MoveText = moveErr.SAN
	}
	return ge
}

func logGameError(cfg *config.Config, err error) {
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%v\n", err)
	}
}

// moveListing selects what queryMoves prints.
type moveListing int

const (
	listSAN moveListing = iota
	listAlgebraic
	listDestinations
)

// queryMoves writes the legal moves of the position fen, one per line.
// With a square only the moves of the piece standing there are listed.
func queryMoves(w io.Writer, fen, square string, listing moveListing) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	var moves []string
	if square == "" {
		if listing != listSAN {
			return fmt.Errorf("-algebraic and -dest need -square: %w", pgnerrors.ErrInvalidConfig)
		}
		moves = pos.SANMoves()
	} else {
		sq, ok := chess.ParseSquare(square)
		if !ok {
			return fmt.Errorf("%q: %w", square, pgnerrors.ErrInvalidSquare)
		}
		switch listing {
		case listAlgebraic:
			moves = pos.AlgebraicMoves(sq)
		case listDestinations:
			moves = pos.Destinations(sq)
		default:
			moves = pos.SquareMoves(sq)
		}
	}

	if len(moves) == 0 {
		return nil
	}
	_, err = io.WriteString(w, strings.Join(moves, "\n")+"\n")
	return err
}

// describePosition writes the FEN of the position as the engine reads it,
// followed by its status.
func describePosition(w io.Writer, fen string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\n", pos.FEN(), output.StatusText(pos.Status()))
	return err
}
