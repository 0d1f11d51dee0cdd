package domain

import "time"

// Diagnostic is a persisted quiz submission: the answers, the engine's
// result, and the optional contact details of the prospect. PublicToken is
// the non-guessable handle the result page uses to fetch it back.
type Diagnostic struct {
	ID           string
	PublicToken  string
	ContactName  string
	ContactEmail string
	Answers      Answers
	Result       DiagnosticResult
	CreatedAt    time.Time
}
