package domain

import (
	"strings"
	"time"
)

// LegalTemplate is an admin-managed block of legal text. Body contains
// {{placeholder}} markers filled in when the template is attached to an
// order; markers without a value are left untouched so missing data stays
// visible in review.
type LegalTemplate struct {
	ID        string
	Key       string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Render substitutes {{key}} markers with the provided values.
func (t LegalTemplate) Render(vars map[string]string) string {
	if len(vars) == 0 {
		return t.Body
	}
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(t.Body)
}
