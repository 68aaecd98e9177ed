package extract

import "context"

// TextExtractor turns a file into plain text for the text-based backend.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text  string
	Pages int
}
