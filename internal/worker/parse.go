package worker

import (
	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/hashing"
	"github.com/lgbarn/pgn-tree-go/internal/parser"
)

// ParseFunc returns a Task that parses a game text and, when signatures is
// set, computes the signature of the game's final position.
func ParseFunc(cfg *config.Config, signatures bool) Task {
	return func(text parser.GameText) Result {
		result := Result{Text: text}
		g, err := parser.ParseGameText(text, cfg)
		if err != nil {
			result.Error = err
			return result
		}
		result.Game = g
		if signatures {
			result.Signature = hashing.Signature(g)
		}
		return result
	}
}

// ParseGames parses texts on cfg.Workers goroutines and hands the results to
// emit in input order. Duplicates are marked in input order too, so the first
// game reaching a position is never the one flagged. detector may be nil.
//
// An error returned by emit stops the pool and is returned.
func ParseGames(texts []parser.GameText, cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector, emit func(Result) error) error {
	if len(texts) == 0 {
		return nil
	}

	pool := NewPool(ParseFunc(cfg, detector != nil), cfg.Workers)
	pool.Start(texts)

	return Ordered(pool.Results(), texts[0].Number, func(r Result) error {
		if detector != nil && r.Error == nil {
			r.Duplicate = detector.CheckAndAddSignature(r.Signature)
		}
		if err := emit(r); err != nil {
			pool.Stop()
			return err
		}
		return nil
	})
}
