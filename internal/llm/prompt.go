package llm

// BuildDatePrompt wraps extracted invoice text in the instruction that
// makes the local model answer with nothing but the YYMMDD date.
func BuildDatePrompt(text string) string {
	return "The following is the text of an invoice. Extract the **invoice date** only and return nothing but the invoice date in format YYMMDD.\n\n" +
		"--- BEGIN INVOICE TEXT ---\n" +
		text + "\n" +
		"--- END INVOICE TEXT ---"
}

// DateInstruction is the single-turn ask sent alongside the raw document
// by the cloud backend.
const DateInstruction = "What's the invoice date of this document? Return nothing but the invoice date in format YYMMDD."
