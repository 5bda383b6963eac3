// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/rpgchess/internal/config"
)

var (
	// Input options
	fenArg = flag.String("fen", "", "Analyse this position (FEN, optionally followed by \"moves ...\")")

	// Analysis options
	square     = flag.String("square", "", "Only list moves of the piece on this square (e.g. e2)")
	perftDepth = flag.Int("perft", 0, "Report perft node count to this depth (0 = off)")
	strictKing = flag.Bool("strict-king", false, "A side without a king has no legal moves")

	// Filtering options
	materialMatch      = flag.String("z", "", "Report positions with at least this material (e.g. KQ:kr)")
	materialMatchExact = flag.String("y", "", "Report positions with exactly this material")
	statusFilter       = flag.String("status", "", "Report positions with these statuses (e.g. check,checkmate)")
	negateMatch        = flag.Bool("n", false, "Report positions that DON'T match the filters")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	jsonLines  = flag.Bool("jsonl", false, "Output one JSON document per position")
	lineLength = flag.Int("w", 80, "Maximum line length")
	rowCol     = flag.Bool("rowcol", false, "Print squares as (row,col) instead of algebraic names")
	showBoard  = flag.Bool("board", false, "Print a board diagram above each position")

	// Parallel processing
	workers = flag.Int("workers", 0, "Number of analysis workers (0 = one per CPU)")

	// Caching
	cacheDir  = flag.String("cache", "", "Persistent move cache directory")
	cacheMem  = flag.Bool("cache-mem", false, "Use an in-memory move cache")
	memoLimit = flag.Int("memo", 100000, "Maximum in-process memo entries (0 = unlimited)")

	// Logging and misc
	logFile   = flag.String("l", "", "Write log to file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 errors, 1 summary, 2 per position")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flag values to the config.
func applyFlags(cfg *config.Config) {
	applyEngineFlags(cfg)
	applyOutputFlags(cfg)
	applyCacheFlags(cfg)
	applyFilterFlags(cfg)

	cfg.Worker.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyEngineFlags configures legal-move query settings.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.Square = *square
	cfg.Engine.PerftDepth = *perftDepth
	cfg.Engine.StrictKing = *strictKing
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.JSONLines = *jsonLines
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	if *rowCol {
		cfg.Output.Format = config.RowCol
	}
	cfg.Output.ShowBoard = *showBoard
}

// applyCacheFlags configures the move cache.
func applyCacheFlags(cfg *config.Config) {
	cfg.Cache.Dir = *cacheDir
	cfg.Cache.InMemory = *cacheMem
	cfg.Cache.MemoCapacity = *memoLimit
}

// applyFilterFlags configures the position filter.
func applyFilterFlags(cfg *config.Config) {
	if *materialMatchExact != "" {
		cfg.Filter.Material = *materialMatchExact
		cfg.Filter.MaterialExact = true
	} else {
		cfg.Filter.Material = *materialMatch
	}
	cfg.Filter.Statuses = *statusFilter
	cfg.Filter.Negate = *negateMatch
}

// newLogger builds the program logger. Terminals get the console writer,
// log files get JSON lines.
func newLogger(w io.Writer, verbosity int, console bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbosity <= 0:
		level = zerolog.ErrorLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// setupLogFile opens the -l log file, or returns stderr.
func setupLogFile() (io.Writer, bool) {
	if *logFile == "" {
		return os.Stderr, true
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	return file, false
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}
