package llm

import (
	"context"

	"github.com/cdoebler/rename-invoice-pdfs/constants"
)

// DateExtractor is the gateway contract both backends implement: given a
// PDF path, return the invoice date string the model produced. The string
// is returned as the model gave it — its shape is not validated here, so a
// malformed answer propagates to the caller.
type DateExtractor interface {
	ExtractDate(ctx context.Context, path string) (string, error)
}

// Select decides which backend serves a whole run. The local variant wins
// only when its configuration is present AND the liveness probe succeeded;
// anything else falls back to the cloud variant. A failed probe is not an
// error, just unavailability.
func Select(localConfigured, probeOK bool) constants.Backend {
	if localConfigured && probeOK {
		return constants.BackendOllama
	}
	return constants.BackendAnthropic
}
