// movegen lists the legal moves of chess positions on boards of any size,
// with game status, optional perft counts and a persistent move cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/rpgchess/internal/cache"
	"github.com/lgbarn/rpgchess/internal/config"
	"github.com/lgbarn/rpgchess/internal/processing"
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
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	logWriter, console := setupLogFile()
	cfg.LogFile = logWriter
	log := newLogger(logWriter, cfg.Verbosity, console)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("bad options")
		os.Exit(1)
	}
	setupOutputFile(cfg)

	filter, err := processing.BuildFilter(cfg.Filter)
	if err != nil {
		log.Error().Err(err).Msg("bad filter")
		os.Exit(1)
	}

	moveCache, err := cache.New(cfg.Cache, log)
	if err != nil {
		log.Error().Err(err).Msg("cannot open move cache")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	analyzer := processing.NewAnalyzer(cfg.Engine, moveCache, log)
	analyzer.SetFilter(filter)
	stats, err := processAllInputs(ctx, cfg, analyzer, flag.Args(), log)

	if cerr := moveCache.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("closing move cache")
	}
	if f, ok := cfg.OutputFile.(*os.File); ok && f != os.Stdout {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}

	if err != nil {
		log.Error().Err(err).Msg("aborted")
		os.Exit(1)
	}
	if cfg.Verbosity > 0 {
		reportStatistics(log, stats, moveCache.Stats())
	}
	if stats.Failed > 0 {
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movegen [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Lists legal moves for chess positions on boards of any size.\n")
	fmt.Fprintf(os.Stderr, "Input files hold one position per line: a FEN, optionally followed by\n")
	fmt.Fprintf(os.Stderr, "\"moves\" and coordinate moves to replay. Lines starting with # are ignored.\n")
	fmt.Fprintf(os.Stderr, "With no files and no -fen, positions are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status: 0 ok, 1 fatal error, 2 some positions were rejected.\n")
}
