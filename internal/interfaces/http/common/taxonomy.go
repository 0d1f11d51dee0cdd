package common

import "strings"

var (
	AllowedBusinessTypes   = []string{"restaurante", "servicio-tecnico", "fabrica", "otro"}
	AllowedMaturityLevels  = []string{"ninguna", "basica", "funcional", "avanzada"}
	AllowedGoals           = []string{"organizar", "vender-mas", "automatizar", "presencia-online"}
	AllowedCompanySizes    = []string{"1-5", "6-20", "21-100", "100+"}
	AllowedAdditionalNeeds = []string{"inventario", "sucursales", "personal", "catalogo-online"}
)

// CanonicalBusinessType normalises aliases the marketing site has used over
// time into the canonical quiz slugs. Unknown values pass through untouched;
// the engine scores them as "otro" without failing.
func CanonicalBusinessType(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(trimmed) {
	case "restaurante", "restaurant", "restaurantes", "comida":
		return "restaurante"
	case "servicio-tecnico", "servicio_tecnico", "servicio tecnico", "field-service", "taller":
		return "servicio-tecnico"
	case "fabrica", "fábrica", "factory", "manufactura":
		return "fabrica"
	case "otro", "other", "otros":
		return "otro"
	}

	return trimmed
}

// CanonicalDigitalMaturity normalises maturity aliases; unknown values pass
// through untouched.
func CanonicalDigitalMaturity(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(trimmed) {
	case "ninguna", "nada", "none":
		return "ninguna"
	case "basica", "básica", "basic":
		return "basica"
	case "funcional", "functional":
		return "funcional"
	case "avanzada", "advanced":
		return "avanzada"
	}

	return trimmed
}

// CanonicalCompanySize normalises headcount band aliases.
func CanonicalCompanySize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(trimmed) {
	case "1-5", "micro":
		return "1-5"
	case "6-20", "pequena", "pequeña":
		return "6-20"
	case "21-100", "mediana":
		return "21-100"
	case "100+", "mas-de-100", "grande":
		return "100+"
	}

	return trimmed
}

// CanonicalGoal maps goal aliases to their quiz slug; unknown values pass
// through and simply score nothing.
func CanonicalGoal(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(trimmed) {
	case "organizar", "organize":
		return "organizar"
	case "vender-mas", "vender_mas", "vender mas", "sell-more":
		return "vender-mas"
	case "automatizar", "automate":
		return "automatizar"
	case "presencia-online", "presencia_online", "presencia online", "online-presence":
		return "presencia-online"
	}

	return trimmed
}

// CanonicalGoalList de-duplicates and canonicalises goal selections.
func CanonicalGoalList(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, raw := range values {
		goal := CanonicalGoal(raw)
		if goal == "" {
			continue
		}
		if _, ok := seen[goal]; ok {
			continue
		}
		seen[goal] = struct{}{}
		result = append(result, goal)
	}
	return result
}

// CanonicalNeedList de-duplicates and trims additional need selections.
func CanonicalNeedList(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, raw := range values {
		need := strings.TrimSpace(raw)
		if need == "" {
			continue
		}
		if _, ok := seen[need]; ok {
			continue
		}
		seen[need] = struct{}{}
		result = append(result, need)
	}
	return result
}
