// Package namer converts arbitrary invoice filenames into the canonical
// YYMMDD-kebab-case.pdf shape and recognizes names that already conform.
// Recognition is what makes re-runs idempotent: a conformant file is never
// touched again.
package namer

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	hyphenRuns = regexp.MustCompile(`-+`)
	canonical  = regexp.MustCompile(`^\d{6}-([a-z0-9]+-)*[a-z0-9]+\.pdf$`)
)

// Canonicalize converts a filename to a lowercase kebab-case slug.
// The extension is stripped first; every non-alphanumeric character becomes
// a hyphen, runs collapse to one, and leading/trailing hyphens are dropped.
// Any input yields some slug — an all-special-character name yields "".
func Canonicalize(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	kebab := nonAlnum.ReplaceAllString(base, "-")
	kebab = hyphenRuns.ReplaceAllString(kebab, "-")
	kebab = strings.Trim(kebab, "-")
	return strings.ToLower(kebab)
}

// IsCanonical reports whether filename already follows YYMMDD-kebab-case.pdf.
// The name is lowercased before matching, so mixed-case slugs and a .PDF
// extension are accepted.
func IsCanonical(filename string) bool {
	return canonical.MatchString(strings.ToLower(filename))
}

// CanonicalName builds the target filename for an invoice date and an
// original name. The date prefix is used verbatim; shape enforcement, if
// any, is the caller's call.
func CanonicalName(invoiceDate, filename string) string {
	return invoiceDate + "-" + Canonicalize(filename) + ".pdf"
}
