package constants

import "strings"

// AllowedExtensions holds the file extensions considered for renaming.
// Invoices arrive as PDFs only; everything else in a directory is ignored.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
