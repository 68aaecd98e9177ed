package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cdoebler/rename-invoice-pdfs/constants"
	"github.com/cdoebler/rename-invoice-pdfs/internal/core"
)

func TestSummaryXLSX(t *testing.T) {
	results := []core.FileResult{
		{Path: "/inv/Invoice March.pdf", Outcome: constants.OutcomeRenamed, NewPath: "/inv/250315-invoice-march.pdf", InvoiceDate: "250315"},
		{Path: "/inv/broken.pdf", Outcome: constants.OutcomeFailed, Err: "connection refused"},
	}
	stats := core.BatchStats{Scanned: 2, Renamed: 1, Failed: 1}

	b, err := NewService(nil).SummaryXLSX(results, stats, time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Original Path", get("A1"))
	assert.Equal(t, "Outcome", get("B1"))

	assert.Equal(t, "/inv/Invoice March.pdf", get("A2"))
	assert.Equal(t, "RENAMED", get("B2"))
	assert.Equal(t, "250315", get("C2"))
	assert.Equal(t, "/inv/250315-invoice-march.pdf", get("D2"))

	assert.Equal(t, "FAILED", get("B3"))
	assert.Equal(t, "connection refused", get("E3"))

	// Footer starts after one blank row.
	assert.Equal(t, "Run Started", get("A5"))
	assert.Equal(t, "2025-03-20T09:00:00Z", get("B5"))
	assert.Equal(t, "Scanned", get("A6"))
	assert.Equal(t, "2", get("B6"))
	assert.Equal(t, "Renamed", get("A7"))
	assert.Equal(t, "1", get("B7"))
}

func TestSummaryXLSXEmptyRun(t *testing.T) {
	b, err := NewService(nil).SummaryXLSX(nil, core.BatchStats{}, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Original Path", v)
}
