package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/rpgchess/internal/cache"
	"github.com/lgbarn/rpgchess/internal/config"
	"github.com/lgbarn/rpgchess/internal/output"
	"github.com/lgbarn/rpgchess/internal/processing"
	"github.com/lgbarn/rpgchess/internal/worker"
)

// maxLineBytes bounds one input line; 26x26 FENs with long move lists fit.
const maxLineBytes = 1 << 20

// RunStats counts the positions handled in one run.
type RunStats struct {
	Total   int
	Failed  int
	Skipped int // filtered out
	Moves   int
}

// readPositions reads one work item per non-blank, non-comment line.
// Indices continue from start.
func readPositions(r io.Reader, name string, start int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Index:  start + len(items),
			Source: fmt.Sprintf("%s:%d", name, lineNum),
			Line:   line,
		})
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// collectInputs gathers the work items of the -fen flag and the input files,
// falling back to stdin when neither is given.
func collectInputs(fen string, args []string, stdin io.Reader, log zerolog.Logger) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	if fen != "" {
		items = append(items, worker.WorkItem{Index: 0, Source: "-fen", Line: fen})
	}

	if len(args) == 0 && fen == "" {
		return readPositions(stdin, "stdin", 0)
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			log.Error().Err(err).Str("file", filename).Msg("cannot open input")
			continue
		}
		more, err := readPositions(file, filename, len(items))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return nil, err
		}
		items = append(items, more...)
	}
	return items, nil
}

// processAllInputs reads every input and writes one report per position.
func processAllInputs(ctx context.Context, cfg *config.Config, analyzer *processing.Analyzer, args []string, log zerolog.Logger) (RunStats, error) {
	items, err := collectInputs(*fenArg, args, os.Stdin, log)
	if err != nil {
		return RunStats{}, err
	}
	return processItems(ctx, cfg, analyzer, items, log)
}

// processItems analyses items on the worker pool and writes the reports in
// input order.
func processItems(ctx context.Context, cfg *config.Config, analyzer *processing.Analyzer, items []worker.WorkItem, log zerolog.Logger) (RunStats, error) {
	var stats RunStats
	writer := output.NewReportWriter(cfg.OutputFile, cfg.Output)

	pool := worker.NewPool(analyzer.Process,
		worker.WithWorkers(cfg.Worker.EffectiveWorkers()),
		worker.WithBufferSize(cfg.Worker.BufferSize))
	pool.Start(ctx)
	log.Debug().Int("workers", pool.NumWorkers()).Int("positions", len(items)).Msg("analysis started")

	go func() {
		defer pool.Close()
		for _, item := range items {
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	err := worker.Ordered(pool.Results(), 0, func(r worker.ProcessResult) error {
		stats.Total++
		switch {
		case r.Err != nil:
			stats.Failed++
			log.Warn().Err(r.Err).Str("source", r.Report.Source).Msg("position rejected")
		case !r.Matched:
			stats.Skipped++
			return nil
		default:
			stats.Moves += r.Report.MoveCount
		}
		return writer.WriteReport(r.Report)
	})
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = ctx.Err()
	}
	return stats, err
}

// reportStatistics logs the run summary.
func reportStatistics(log zerolog.Logger, stats RunStats, cs cache.Stats) {
	log.Info().
		Int("positions", stats.Total).
		Int("rejected", stats.Failed).
		Int("filtered", stats.Skipped).
		Int("moves", stats.Moves).
		Int("memo_hits", cs.MemoHits).
		Int64("store_hits", cs.StoreHits).
		Msg("done")
	if cs.MemoFull {
		log.Warn().Int("entries", cs.MemoEntries).Msg("move memo reached capacity; raise -memo to keep more")
	}
}
