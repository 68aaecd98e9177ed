// Package ingest lists the rename candidates of a single directory.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cdoebler/rename-invoice-pdfs/constants"
)

// ListPDFs returns the PDF files directly inside dir, in directory order.
// The scan is non-recursive; subdirectories and non-PDF entries are
// ignored. Extension matching is case-insensitive, so .PDF is included.
// Directory order is filesystem-dependent and not sorted — callers must
// not rely on it for correctness.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
