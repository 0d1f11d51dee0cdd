package public

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/solvia-mx/solvia-services/api/internal/interfaces/http/common"
	publicdomain "github.com/solvia-mx/solvia-services/api/internal/public/domain"
)

// normalizeEmail trims the contact email and validates its shape. Empty is
// allowed: the quiz works without contact data.
func normalizeEmail(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", errors.New("el correo no puede exceder 254 caracteres")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", errors.New("el formato del correo no es válido")
	}
	return trimmed, nil
}

// buildAnswers canonicalises the raw quiz payload into the engine's answer
// set. Slugs that survive canonicalisation unknown stay as-is and score
// nothing.
func buildAnswers(payload answersPayload) publicdomain.Answers {
	goals := common.CanonicalGoalList(payload.Goals)
	needs := common.CanonicalNeedList(payload.AdditionalNeeds)

	answers := publicdomain.Answers{
		BusinessType:    publicdomain.BusinessType(common.CanonicalBusinessType(payload.BusinessType)),
		DigitalMaturity: publicdomain.DigitalMaturity(common.CanonicalDigitalMaturity(payload.DigitalMaturity)),
		CompanySize:     publicdomain.CompanySize(common.CanonicalCompanySize(payload.CompanySize)),
	}
	for _, goal := range goals {
		answers.Goals = append(answers.Goals, publicdomain.Goal(goal))
	}
	for _, need := range needs {
		answers.AdditionalNeeds = append(answers.AdditionalNeeds, publicdomain.AdditionalNeed(need))
	}
	return answers
}
