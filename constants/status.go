package constants

// Outcome is the terminal state of a processed file.
type Outcome string

// Stable values (store these exact strings in the journal).
const (
	OutcomeSkipped Outcome = "SKIPPED" // already canonical, untouched
	OutcomeRenamed Outcome = "RENAMED" // renamed with the extracted date
	OutcomeFailed  Outcome = "FAILED"  // terminal failure, batch continued
)

// Backend identifies the date-extraction backend active for a run.
type Backend string

const (
	BackendOllama    Backend = "ollama"
	BackendAnthropic Backend = "anthropic"
)
