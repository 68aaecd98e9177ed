package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cdoebler/rename-invoice-pdfs/constants"
	"github.com/cdoebler/rename-invoice-pdfs/internal/common"
	"github.com/cdoebler/rename-invoice-pdfs/internal/core"
	"github.com/cdoebler/rename-invoice-pdfs/internal/export"
	"github.com/cdoebler/rename-invoice-pdfs/internal/extract"
	"github.com/cdoebler/rename-invoice-pdfs/internal/ingest"
	"github.com/cdoebler/rename-invoice-pdfs/internal/journal"
	"github.com/cdoebler/rename-invoice-pdfs/internal/llm"
	"github.com/cdoebler/rename-invoice-pdfs/internal/llm/anthropic"
	"github.com/cdoebler/rename-invoice-pdfs/internal/llm/ollama"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	flag.Usage = func() {
		printError("Usage: %s DIRECTORY\n\nProcess PDF invoices and rename them with invoice dates.\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfg := common.LoadConfig()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	startedAt := time.Now().UTC()

	// Enumerate candidates before touching any backend.
	paths, err := ingest.ListPDFs(dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", dir, "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		logger.Info("no PDF files found", "dir", dir)
		return
	}
	logger.Info("found PDF files to process", "dir", dir, "count", len(paths))

	// Resolve the backend once for the whole run. The local variant needs
	// its configuration present and a passing liveness probe; otherwise the
	// cloud variant serves every file.
	ollamaClient := ollama.NewClient(ollama.Config{
		BaseURL:      cfg.Ollama.APIURL,
		Model:        cfg.Ollama.Model,
		ProbeTimeout: cfg.Ollama.ProbeTimeout,
	}, extract.NewPDFTextExtractor(logger), logger)

	probeOK := false
	if cfg.LocalConfigured() {
		probeOK = ollamaClient.IsRunning(ctx)
	}

	backend := llm.Select(cfg.LocalConfigured(), probeOK)
	var dates llm.DateExtractor
	switch backend {
	case constants.BackendOllama:
		dates = ollamaClient
	default:
		dates = anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.Anthropic.APIKey,
			Model:     cfg.Anthropic.Model,
			BaseURL:   cfg.Anthropic.BaseURL,
			MaxTokens: cfg.Anthropic.MaxTokens,
			Timeout:   cfg.Anthropic.Timeout,
		}, logger)
	}
	logger.Info("backend selected", "backend", backend)

	// Process the batch.
	processor := core.NewProcessor(logger, dates, cfg.StrictDate)
	results, stats := processor.ProcessFiles(ctx, paths)

	// Best-effort bookkeeping: journal and summary failures are logged,
	// never fatal.
	if cfg.Journal.DBPath != "" {
		j, err := journal.Open(cfg.Journal.DBPath, logger)
		if err != nil {
			logger.Warn("journal unavailable", "path", cfg.Journal.DBPath, "error", err)
		} else {
			if runID, err := j.RecordRun(ctx, dir, backend, startedAt, results, stats); err != nil {
				logger.Warn("journal write failed", "error", err)
			} else {
				logger.Info("run journaled", "run_id", runID, "path", cfg.Journal.DBPath)
			}
			if err := j.Close(); err != nil {
				logger.Warn("journal close failed", "error", err)
			}
		}
	}

	if cfg.Export.XLSXPath != "" {
		xlsxBytes, err := export.NewService(logger).SummaryXLSX(results, stats, startedAt)
		if err != nil {
			logger.Warn("summary export failed", "error", err)
		} else if err := os.WriteFile(cfg.Export.XLSXPath, xlsxBytes, 0644); err != nil {
			logger.Warn("summary write failed", "path", cfg.Export.XLSXPath, "error", err)
		} else {
			logger.Info("summary written", "path", cfg.Export.XLSXPath)
		}
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Files scanned: %d\n", stats.Scanned)
	fmt.Printf("- Renamed: %d\n", stats.Renamed)
	fmt.Printf("- Skipped: %d\n", stats.Skipped)
	fmt.Printf("- Failures: %d\n", stats.Failed)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
