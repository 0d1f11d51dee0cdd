package domain

// BusinessType identifies the prospect's line of business. The quiz sends
// the slugs used by the marketing site; anything else scores as "otro".
type BusinessType string

const (
	BusinessRestaurant   BusinessType = "restaurante"
	BusinessFieldService BusinessType = "servicio-tecnico"
	BusinessFactory      BusinessType = "fabrica"
	BusinessOther        BusinessType = "otro"
)

// DigitalMaturity describes how digitalised the prospect's operation is.
type DigitalMaturity string

const (
	MaturityNone       DigitalMaturity = "ninguna"
	MaturityBasic      DigitalMaturity = "basica"
	MaturityFunctional DigitalMaturity = "funcional"
	MaturityAdvanced   DigitalMaturity = "avanzada"
)

// Goal is one of the objectives the prospect can pick (multi-select).
type Goal string

const (
	GoalOrganize       Goal = "organizar"
	GoalSellMore       Goal = "vender-mas"
	GoalAutomate       Goal = "automatizar"
	GoalOnlinePresence Goal = "presencia-online"
)

// CompanySize is the banded headcount range reported in the quiz.
type CompanySize string

const (
	SizeMicro  CompanySize = "1-5"
	SizeSmall  CompanySize = "6-20"
	SizeMedium CompanySize = "21-100"
	SizeLarge  CompanySize = "100+"
)

// AdditionalNeed is an optional extra requirement (multi-select).
type AdditionalNeed string

const (
	NeedInventory     AdditionalNeed = "inventario"
	NeedBranches      AdditionalNeed = "sucursales"
	NeedStaff         AdditionalNeed = "personal"
	NeedOnlineCatalog AdditionalNeed = "catalogo-online"
)

// Answers is the immutable quiz submission consumed by the diagnostic
// engine. Goals and AdditionalNeeds are sets: order irrelevant, values
// unique. Unknown slugs are kept as-is and simply score nothing.
type Answers struct {
	BusinessType    BusinessType
	DigitalMaturity DigitalMaturity
	Goals           []Goal
	CompanySize     CompanySize
	AdditionalNeeds []AdditionalNeed
}

// HasGoal reports whether the goal was selected.
func (a Answers) HasGoal(goal Goal) bool {
	for _, g := range a.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// HasNeed reports whether the additional need was selected.
func (a Answers) HasNeed(need AdditionalNeed) bool {
	for _, n := range a.AdditionalNeeds {
		if n == need {
			return true
		}
	}
	return false
}
