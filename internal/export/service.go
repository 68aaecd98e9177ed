// Package export renders a batch run as a one-sheet XLSX summary.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cdoebler/rename-invoice-pdfs/internal/core"
)

const sheet = "Batch Summary"

// Service produces XLSX bytes for batch summaries.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// SummaryXLSX returns an XLSX workbook (as bytes) listing every per-file
// outcome of one run, followed by the aggregate counts.
func (s *Service) SummaryXLSX(results []core.FileResult, stats core.BatchStats, startedAt time.Time) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Original Path",
		"Outcome",
		"Invoice Date",
		"New Path",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Path)
		write(2, string(r.Outcome))
		write(3, r.InvoiceDate)
		write(4, r.NewPath)
		write(5, r.Err)
		row++
	}

	// Aggregate footer, one blank row below the listing.
	row++
	footer := [][2]any{
		{"Run Started", startedAt.UTC().Format(time.RFC3339)},
		{"Scanned", stats.Scanned},
		{"Renamed", stats.Renamed},
		{"Skipped", stats.Skipped},
		{"Failed", stats.Failed},
	}
	for _, kv := range footer {
		keyCell, _ := excelize.CoordinatesToCellName(1, row)
		valCell, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, keyCell, kv[0])
		_ = f.SetCellValue(sheet, valCell, kv[1])
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Debug("export.summary.built",
		"rows", len(results),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
