// Package core drives the per-file rename state machine and the batch loop
// around it.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cdoebler/rename-invoice-pdfs/constants"
	"github.com/cdoebler/rename-invoice-pdfs/internal/common"
	"github.com/cdoebler/rename-invoice-pdfs/internal/llm"
	"github.com/cdoebler/rename-invoice-pdfs/internal/namer"
)

var datePattern = regexp.MustCompile(`^\d{6}$`)

// Processor applies the canonical naming convention to a batch of PDFs.
// The date backend is resolved once by the caller and read-only for the
// whole batch.
type Processor struct {
	logger     *slog.Logger
	dates      llm.DateExtractor
	strictDate bool
}

func NewProcessor(logger *slog.Logger, dates llm.DateExtractor, strictDate bool) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, dates: dates, strictDate: strictDate}
}

// ProcessFiles handles paths sequentially, one file fully finishing before
// the next begins. A single file's failure is recorded and the loop
// continues; nothing aborts the batch.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string) ([]FileResult, BatchStats) {
	var results []FileResult
	var stats BatchStats

	for _, path := range paths {
		res := p.processFile(ctx, path)
		results = append(results, res)
		stats.Scanned++
		switch res.Outcome {
		case constants.OutcomeSkipped:
			stats.Skipped++
		case constants.OutcomeRenamed:
			stats.Renamed++
		case constants.OutcomeFailed:
			stats.Failed++
		}
	}

	p.logger.Info("processor.batch.done",
		"scanned", stats.Scanned,
		"renamed", stats.Renamed,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return results, stats
}

// processFile runs the Discovered -> Skipped|Renamed|Failed transition for
// one path.
func (p *Processor) processFile(ctx context.Context, path string) FileResult {
	name := filepath.Base(path)

	if namer.IsCanonical(name) {
		p.logger.Info("processor.skip", "path", path, "reason", "already follows the required format")
		return FileResult{Path: path, Outcome: constants.OutcomeSkipped}
	}

	date, err := p.dates.ExtractDate(ctx, path)
	if err != nil {
		p.logger.Error("processor.extract.failed", "path", path, "error", err)
		return FileResult{Path: path, Outcome: constants.OutcomeFailed, Err: err.Error()}
	}

	// Off by default: the backend answer is embedded verbatim, even if the
	// model returned prose instead of a date.
	if p.strictDate && !datePattern.MatchString(date) {
		appErr := common.NewAppError("MALFORMED_DATE", fmt.Sprintf("backend returned %q", date), common.ErrMalformedDate)
		p.logger.Error("processor.date.malformed", "path", path, "date", date)
		return FileResult{Path: path, Outcome: constants.OutcomeFailed, InvoiceDate: date, Err: appErr.Error()}
	}

	newPath := filepath.Join(filepath.Dir(path), namer.CanonicalName(date, name))
	if err := os.Rename(path, newPath); err != nil {
		p.logger.Error("processor.rename.failed", "path", path, "error", err)
		return FileResult{Path: path, Outcome: constants.OutcomeFailed, InvoiceDate: date, Err: err.Error()}
	}

	p.logger.Info("processor.rename.ok", "from", path, "to", newPath)
	return FileResult{Path: path, Outcome: constants.OutcomeRenamed, NewPath: newPath, InvoiceDate: date}
}
