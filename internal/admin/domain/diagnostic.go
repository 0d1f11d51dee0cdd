package domain

import "time"

// Diagnostic is the back-office view of a quiz submission: the flattened
// answers and engine verdict plus the lead follow-up state the admin
// manages. The full result object lives with the public context; this
// context only needs what the lead list and detail screens show.
type Diagnostic struct {
	ID              string
	PublicToken     string
	ContactName     string
	ContactEmail    Email
	BusinessType    string
	DigitalMaturity string
	Goals           []string
	CompanySize     string
	AdditionalNeeds []string
	Qualifies       bool
	PrimarySolution string
	PrimaryScore    int
	Urgency         string
	LeadStatus      LeadStatus
	AdminNotes      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
