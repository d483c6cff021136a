// pgn-tree reads chess games in PGN format, checks every move, and writes
// them back with their variations, comments and glyphs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/eco"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pgn-tree-go version %s\n", programVersion)
		os.Exit(0)
	}

	if *fenQuery != "" || *listMoves {
		runMoveQuery()
		return
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	matcher, err := buildMatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := NewProcessingContext(cfg)
	ctx.matcher = matcher
	if *ecoFile != "" {
		ctx.classifier = eco.NewClassifier()
		if err := ctx.classifier.LoadFromFile(*ecoFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	stats, err := processAllInputs(ctx, flag.Args())
	if closeErr := ctx.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, stats)
	}
	if stats.rejected > 0 {
		os.Exit(2)
	}
}

// runMoveQuery answers -fen: the legal moves with -moves, otherwise the
// normalised FEN and the status of the position.
func runMoveQuery() {
	fen := *fenQuery
	if fen == "" {
		fmt.Fprintln(os.Stderr, "Error: -moves needs -fen")
		os.Exit(1)
	}

	var err error
	if *listMoves {
		listing := listSAN
		switch {
		case *destOnly:
			listing = listDestinations
		case *algebraic:
			listing = listAlgebraic
		}
		err = queryMoves(os.Stdout, fen, *fromSquare, listing)
	} else {
		err = describePosition(os.Stdout, fen)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// processAllInputs processes all input files, or stdin when there are none.
// A file that cannot be opened is reported and skipped.
func processAllInputs(ctx *ProcessingContext, args []string) (processStats, error) {
	if len(args) == 0 {
		return processInput(os.Stdin, "stdin", ctx)
	}

	var total processStats
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		stats, err := processInput(file, filename, ctx)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		total.add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats processStats) {
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		fmt.Fprintf(cfg.LogFile, "%d game(s) output, %d duplicate(s) out of %d.\n", stats.output, stats.duplicates, stats.total)
	} else {
		fmt.Fprintf(cfg.LogFile, "%d game(s) output out of %d.\n", stats.output, stats.total)
	}
	if stats.unmatched > 0 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) not selected.\n", stats.unmatched)
	}
	if stats.rejected > 0 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) rejected.\n", stats.rejected)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn-tree [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Checks and reformats chess games in PGN format, keeping their variations.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPosition queries:\n")
	fmt.Fprintf(os.Stderr, "  pgn-tree -fen FEN -moves                    SAN of every legal move\n")
	fmt.Fprintf(os.Stderr, "  pgn-tree -fen FEN -moves -square e2         moves of the piece on e2\n")
	fmt.Fprintf(os.Stderr, "  pgn-tree -fen FEN -moves -square e2 -dest   its destination squares\n")
}
