package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantAnswers() Answers {
	return Answers{
		BusinessType:    BusinessRestaurant,
		DigitalMaturity: MaturityNone,
		Goals:           []Goal{GoalOrganize},
		CompanySize:     SizeMicro,
	}
}

func TestAssembleRestaurantScenario(t *testing.T) {
	result := Assemble(restaurantAnswers())

	assert.Equal(t, SolutionRestaurant, result.Primary.ID)
	assert.Equal(t, 90, result.Primary.MatchScore) // 50 type + 20 maturity + 20 organize
	assert.True(t, result.Qualifies)
	assert.Equal(t, UrgencyHigh, result.Urgency)
	assert.Empty(t, result.Complementary)
	assert.Nil(t, result.NextSteps.Secondary)
	assert.Equal(t, "/soluciones/restaurante?origen=diagnostico", result.NextSteps.Primary.Link)
}

func TestAssembleOtherBusinessOnlinePresence(t *testing.T) {
	result := Assemble(Answers{
		BusinessType:    BusinessOther,
		DigitalMaturity: MaturityAdvanced,
		Goals:           []Goal{GoalOnlinePresence},
		CompanySize:     SizeMicro,
	})

	assert.Equal(t, SolutionWebDev, result.Primary.ID)
	assert.Equal(t, 70, result.Primary.MatchScore) // 30 otro + 10 advanced + 30 presence
	assert.Equal(t, UrgencyLow, result.Urgency)
	assert.Contains(t, result.Primary.Reason, "presencia en línea")
}

func TestAssembleFieldServiceScenario(t *testing.T) {
	answers := Answers{
		BusinessType:    BusinessFieldService,
		DigitalMaturity: MaturityNone,
		Goals:           []Goal{GoalOrganize, GoalAutomate},
		CompanySize:     SizeLarge,
		AdditionalNeeds: []AdditionalNeed{NeedInventory},
	}

	scores := Score(answers)
	assert.Equal(t, 135, scores[SolutionFieldService]) // 50+20+20+20+15+10
	assert.Equal(t, 30, scores[SolutionWorkshop])      // sibling bonus only
	assert.Equal(t, 0, scores[SolutionWebDev])

	result := Assemble(answers)
	assert.Equal(t, SolutionFieldService, result.Primary.ID)
	assert.Equal(t, UrgencyHigh, result.Urgency)
	require.Len(t, result.Complementary, 1)
	assert.Equal(t, SolutionWorkshop, result.Complementary[0].ID)
	assert.Equal(t, 30, result.Complementary[0].MatchScore)
	require.NotNil(t, result.NextSteps.Secondary)
	assert.Equal(t, "/soluciones/taller?origen=diagnostico", result.NextSteps.Secondary.Link)
}

func TestAssembleAllZeroDefaultsToWebDev(t *testing.T) {
	result := Assemble(Answers{
		BusinessType:    BusinessType("panaderia-espacial"),
		DigitalMaturity: DigitalMaturity("desconocida"),
		CompanySize:     SizeMicro,
	})

	assert.Equal(t, SolutionWebDev, result.Primary.ID)
	assert.Equal(t, 0, result.Primary.MatchScore)
	assert.False(t, result.Qualifies)
	assert.Empty(t, result.Complementary)
}

func TestScoreUnknownValuesAreSilentNoOps(t *testing.T) {
	answers := Answers{
		BusinessType:    BusinessRestaurant,
		DigitalMaturity: MaturityNone,
		Goals:           []Goal{GoalOrganize, Goal("dominar-el-mundo")},
		CompanySize:     CompanySize("0"),
		AdditionalNeeds: []AdditionalNeed{AdditionalNeed("drones")},
	}

	scores := Score(answers)
	assert.Equal(t, 90, scores[SolutionRestaurant])
	total := 0
	for _, s := range scores {
		total += s
	}
	assert.Equal(t, 90, total, "unknown slugs must not add points anywhere")
}

func TestScoreEveryCatalogEntryPresent(t *testing.T) {
	scores := Score(Answers{})
	require.Len(t, scores, len(Catalog()))
	for _, s := range Catalog() {
		_, ok := scores[s.ID]
		assert.True(t, ok, "missing score for %s", s.ID)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	answers := Answers{
		BusinessType:    BusinessFactory,
		DigitalMaturity: MaturityBasic,
		Goals:           []Goal{GoalSellMore, GoalAutomate},
		CompanySize:     SizeMedium,
		AdditionalNeeds: []AdditionalNeed{NeedOnlineCatalog, NeedBranches},
	}

	first := Assemble(answers)
	second := Assemble(answers)
	assert.Equal(t, first, second)
}

func TestComplementaryInvariants(t *testing.T) {
	inputs := []Answers{
		restaurantAnswers(),
		{
			BusinessType:    BusinessFactory,
			DigitalMaturity: MaturityBasic,
			Goals:           []Goal{GoalSellMore, GoalOnlinePresence, GoalOrganize},
			CompanySize:     SizeLarge,
			AdditionalNeeds: []AdditionalNeed{NeedOnlineCatalog, NeedInventory},
		},
		{
			BusinessType:    BusinessFieldService,
			DigitalMaturity: MaturityFunctional,
			Goals:           []Goal{GoalSellMore},
			CompanySize:     SizeSmall,
		},
		{BusinessType: BusinessOther, DigitalMaturity: MaturityNone, CompanySize: SizeMicro},
	}

	for _, answers := range inputs {
		result := Assemble(answers)
		assert.LessOrEqual(t, len(result.Complementary), 2)
		assert.Equal(t, result.Primary.MatchScore > 0, result.Qualifies)
		for i, c := range result.Complementary {
			assert.NotEqual(t, result.Primary.ID, c.ID)
			assert.Greater(t, c.MatchScore, complementaryCutoff)
			if i > 0 {
				assert.GreaterOrEqual(t, result.Complementary[i-1].MatchScore, c.MatchScore)
			}
		}
	}
}

func TestSelectPrimaryTieBreakKeepsCatalogOrder(t *testing.T) {
	scores := map[SolutionID]int{
		SolutionRestaurant:   40,
		SolutionFieldService: 40,
		SolutionWorkshop:     10,
		SolutionQuoteBuilder: 0,
		SolutionWebDev:       0,
	}
	assert.Equal(t, SolutionRestaurant, SelectPrimary(scores))
}

func TestClassifyUrgencyTable(t *testing.T) {
	cases := []struct {
		name     string
		answers  Answers
		expected Urgency
	}{
		{
			"no systems and wants order",
			Answers{DigitalMaturity: MaturityNone, Goals: []Goal{GoalOrganize}, CompanySize: SizeMicro},
			UrgencyHigh,
		},
		{
			"no systems and wants automation",
			Answers{DigitalMaturity: MaturityNone, Goals: []Goal{GoalAutomate}, CompanySize: SizeMicro},
			UrgencyHigh,
		},
		{
			"large company without systems",
			Answers{DigitalMaturity: MaturityNone, Goals: []Goal{GoalSellMore}, CompanySize: SizeLarge},
			UrgencyHigh,
		},
		{
			"basic maturity",
			Answers{DigitalMaturity: MaturityBasic, CompanySize: SizeMicro},
			UrgencyMedium,
		},
		{
			"functional maturity",
			Answers{DigitalMaturity: MaturityFunctional, CompanySize: SizeLarge},
			UrgencyMedium,
		},
		{
			"advanced maturity",
			Answers{DigitalMaturity: MaturityAdvanced, CompanySize: SizeLarge},
			UrgencyLow,
		},
		{
			"no systems but no trigger",
			Answers{DigitalMaturity: MaturityNone, Goals: []Goal{GoalSellMore}, CompanySize: SizeMicro},
			UrgencyLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyUrgency(tc.answers))
		})
	}
}

func TestExplainPriorityOrder(t *testing.T) {
	// Vertical match outranks every goal mention.
	withVertical := Explain(SolutionRestaurant, Answers{
		BusinessType: BusinessRestaurant,
		Goals:        []Goal{GoalOnlinePresence, GoalSellMore},
	})
	assert.Contains(t, withVertical, "giro de tu negocio")

	// Web-dev primary over a real vertical still cites goals, not the giro.
	online := Explain(SolutionWebDev, Answers{
		BusinessType: BusinessOther,
		Goals:        []Goal{GoalOnlinePresence, GoalSellMore},
	})
	assert.Contains(t, online, "presencia en línea")

	sell := Explain(SolutionWebDev, Answers{
		BusinessType: BusinessOther,
		Goals:        []Goal{GoalSellMore},
	})
	assert.Contains(t, sell, "vender más")

	generic := Explain(SolutionWebDev, Answers{BusinessType: BusinessOther})
	assert.Equal(t, genericReason, generic)
}

func TestExplainAppendsNeedLabels(t *testing.T) {
	reason := Explain(SolutionRestaurant, Answers{
		BusinessType:    BusinessRestaurant,
		AdditionalNeeds: []AdditionalNeed{NeedOnlineCatalog, NeedInventory},
	})

	// Labels follow quiz option order, not selection order.
	idx := strings.Index(reason, "control de inventario")
	require.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, strings.Index(reason, "catálogo en línea"))
}

func TestPersonalizeConstantHeader(t *testing.T) {
	first := Personalize(restaurantAnswers())
	second := Personalize(Answers{BusinessType: BusinessOther, DigitalMaturity: MaturityAdvanced})

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Subtitle, second.Subtitle)
	assert.NotEqual(t, first.Insight, second.Insight)
}

func TestPersonalizeFallsBackWhenNothingMatches(t *testing.T) {
	message := Personalize(Answers{
		BusinessType:    BusinessOther,
		DigitalMaturity: MaturityAdvanced,
		CompanySize:     SizeMicro,
	})
	assert.Equal(t, genericInsight, message.Insight)
}

func TestCatalogIsCopied(t *testing.T) {
	first := Catalog()
	first[0].Title = "mutado"
	second := Catalog()
	assert.NotEqual(t, first[0].Title, second[0].Title)
}
