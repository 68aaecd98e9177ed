package core

import "github.com/cdoebler/rename-invoice-pdfs/constants"

// FileResult is the terminal record for one discovered file.
type FileResult struct {
	Path        string
	Outcome     constants.Outcome
	NewPath     string // set when renamed
	InvoiceDate string // raw backend answer used in the rename
	Err         string
}

// BatchStats aggregates one directory run.
type BatchStats struct {
	Scanned uint32
	Renamed uint32
	Skipped uint32
	Failed  uint32
}
