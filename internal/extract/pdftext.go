package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/cdoebler/rename-invoice-pdfs/internal/common"
)

// PDFTextExtractor reads the embedded text of every page of a PDF, in page
// order, concatenated into one string. Pages without extractable text are
// skipped with a warning; only a fully unreadable file is an error.
type PDFTextExtractor struct {
	logger *slog.Logger
}

func NewPDFTextExtractor(logger *slog.Logger) *PDFTextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFTextExtractor{logger: logger}
}

// Extract implements TextExtractor.
func (e *PDFTextExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	if strings.TrimSpace(path) == "" {
		return TextExtractionResult{}, common.NewAppError("EMPTY_PATH", "pdf path is required", common.ErrInvalidInput)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("extract.pdf.close_error", "path", path, "error", cerr)
		}
	}()

	total := r.NumPage()
	var b strings.Builder

	// Pages are 1-indexed in ledongthuc/pdf.
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{}, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("extract.pdf.page_error", "path", path, "page", i, "error", err)
			continue
		}
		b.WriteString(text)
	}

	return TextExtractionResult{Text: b.String(), Pages: total}, nil
}
