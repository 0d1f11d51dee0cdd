package domain

import "sort"

// complementaryCutoff is the minimum score a non-primary solution needs to
// be offered as a complement.
const complementaryCutoff = 10

// maxComplementary caps how many complements the result carries.
const maxComplementary = 2

// bonus is one rule contribution to a solution's running total.
type bonus struct {
	solution SolutionID
	points   int
}

// scoreRule maps the answers to zero or more bonuses. Rules only ever add
// points; unknown enum values contribute nothing.
type scoreRule func(a Answers) []bonus

// scoringRules is the hand-authored decision table, applied in this exact
// order. The order is irrelevant to the totals (addition commutes) but is
// kept to match the quiz's documented rule groups A through E.
var scoringRules = []scoreRule{
	businessTypeRule,
	maturityRule,
	goalsRule,
	needsRule,
	companySizeRule,
}

// verticalFor returns the solution structurally tied to a business type.
// "otro" and unknown types have no vertical.
func verticalFor(t BusinessType) (SolutionID, bool) {
	switch t {
	case BusinessRestaurant:
		return SolutionRestaurant, true
	case BusinessFieldService:
		return SolutionFieldService, true
	case BusinessFactory:
		return SolutionQuoteBuilder, true
	}
	return "", false
}

// businessTypeRule: the vertical tied to the business type gets the large
// bonus; field service also lifts the workshop system as a sibling, and
// "otro" nudges web development instead.
func businessTypeRule(a Answers) []bonus {
	switch a.BusinessType {
	case BusinessRestaurant:
		return []bonus{{SolutionRestaurant, 50}}
	case BusinessFieldService:
		return []bonus{{SolutionFieldService, 50}, {SolutionWorkshop, 30}}
	case BusinessFactory:
		return []bonus{{SolutionQuoteBuilder, 50}}
	case BusinessOther:
		return []bonus{{SolutionWebDev, 30}}
	}
	return nil
}

// maturityRule: prospects without any system lean further into their
// vertical; everyone already online leans into web development.
func maturityRule(a Answers) []bonus {
	switch a.DigitalMaturity {
	case MaturityNone:
		if vertical, ok := verticalFor(a.BusinessType); ok {
			return []bonus{{vertical, 20}}
		}
	case MaturityBasic:
		return []bonus{{SolutionWebDev, 15}}
	case MaturityFunctional, MaturityAdvanced:
		return []bonus{{SolutionWebDev, 10}}
	}
	return nil
}

// goalsRule fires once per selected goal; goals are not mutually exclusive.
func goalsRule(a Answers) []bonus {
	var result []bonus
	vertical, hasVertical := verticalFor(a.BusinessType)
	for _, goal := range a.Goals {
		switch goal {
		case GoalSellMore:
			result = append(result, bonus{SolutionWebDev, 25})
			if hasVertical {
				result = append(result, bonus{vertical, 15})
			}
		case GoalOrganize:
			if hasVertical {
				result = append(result, bonus{vertical, 20})
			}
		case GoalAutomate:
			if hasVertical {
				result = append(result, bonus{vertical, 20})
			}
		case GoalOnlinePresence:
			result = append(result, bonus{SolutionWebDev, 30})
		}
	}
	return result
}

// needsRule fires once per selected additional need.
func needsRule(a Answers) []bonus {
	var result []bonus
	vertical, hasVertical := verticalFor(a.BusinessType)
	for _, need := range a.AdditionalNeeds {
		switch need {
		case NeedInventory:
			if hasVertical {
				result = append(result, bonus{vertical, 15})
			}
		case NeedBranches, NeedStaff:
			if hasVertical {
				result = append(result, bonus{vertical, 10})
			}
		case NeedOnlineCatalog:
			result = append(result, bonus{SolutionWebDev, 20})
		}
	}
	return result
}

// companySizeRule: the two largest headcount bands lean into the vertical.
func companySizeRule(a Answers) []bonus {
	if a.CompanySize != SizeMedium && a.CompanySize != SizeLarge {
		return nil
	}
	if vertical, ok := verticalFor(a.BusinessType); ok {
		return []bonus{{vertical, 10}}
	}
	return nil
}

// Score folds the rule table into a per-solution total. Every catalog entry
// is present in the map, so absent answers still yield explicit zeros. The
// function is pure; the map is freshly allocated per call.
func Score(a Answers) map[SolutionID]int {
	scores := make(map[SolutionID]int, len(catalog))
	for _, s := range catalog {
		scores[s.ID] = 0
	}
	for _, rule := range scoringRules {
		for _, b := range rule(a) {
			scores[b.solution] += b.points
		}
	}
	return scores
}

// SelectPrimary picks the highest-scoring solution, scanning the catalog in
// declaration order so the first maximum wins ties. When every score is
// zero it falls back to web development explicitly rather than relying on
// iteration order.
func SelectPrimary(scores map[SolutionID]int) SolutionID {
	best := SolutionID("")
	bestScore := -1
	for _, s := range catalog {
		if scores[s.ID] > bestScore {
			best = s.ID
			bestScore = scores[s.ID]
		}
	}
	if bestScore <= 0 {
		return SolutionWebDev
	}
	return best
}

// SelectComplementary returns up to two non-primary solutions whose score
// exceeds the cutoff, ordered by descending score. Ties keep catalog order.
func SelectComplementary(scores map[SolutionID]int, primary SolutionID) []SolutionID {
	candidates := make([]SolutionID, 0, len(catalog))
	for _, s := range catalog {
		if s.ID == primary {
			continue
		}
		if scores[s.ID] > complementaryCutoff {
			candidates = append(candidates, s.ID)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i]] > scores[candidates[j]]
	})
	if len(candidates) > maxComplementary {
		candidates = candidates[:maxComplementary]
	}
	return candidates
}
