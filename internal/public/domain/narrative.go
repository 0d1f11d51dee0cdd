package domain

import "strings"

// Urgency is the coarse follow-up priority derived from the answers.
type Urgency string

const (
	UrgencyHigh   Urgency = "alta"
	UrgencyMedium Urgency = "media"
	UrgencyLow    Urgency = "baja"
)

// PersonalizedMessage is the copy block shown on the result screen. Title
// and subtitle are intentionally constant regardless of the answers; only
// the insight varies.
type PersonalizedMessage struct {
	Title    string
	Subtitle string
	Insight  string
}

const (
	messageTitle    = "Tu diagnóstico está listo"
	messageSubtitle = "Esto es lo que encontramos sobre tu negocio"
	genericInsight  = "Tu negocio tiene una base sólida; el siguiente paso es elegir la herramienta correcta."
	genericReason   = "Con base en tus respuestas, esta solución es el mejor punto de partida para digitalizar tu negocio."
)

// needLabels are the human labels listed in the reason suffix, in the
// order the quiz presents the options.
var needLabels = []struct {
	need  AdditionalNeed
	label string
}{
	{NeedInventory, "control de inventario"},
	{NeedBranches, "multisucursal"},
	{NeedStaff, "gestión de personal"},
	{NeedOnlineCatalog, "catálogo en línea"},
}

// Explain builds the one-sentence reason attached to the primary solution.
// Template priority: vertical match, then online-presence goal, then the
// sell-more goal, then a generic fallback. Selected additional needs are
// appended comma-joined.
func Explain(primary SolutionID, a Answers) string {
	var reason string
	_, hasVertical := verticalFor(a.BusinessType)
	switch {
	case hasVertical && primary != SolutionWebDev:
		title := string(primary)
		if s, ok := SolutionByID(primary); ok {
			title = s.Title
		}
		reason = "Por el giro de tu negocio, " + title + " se ajusta directamente a tu operación diaria."
	case a.HasGoal(GoalOnlinePresence):
		reason = "Nos dijiste que quieres presencia en línea, y esta solución es el camino más corto para lograrla."
	case a.HasGoal(GoalSellMore):
		reason = "Tu prioridad es vender más, y esta solución está pensada para atraer y convertir clientes."
	default:
		reason = genericReason
	}

	if labels := selectedNeedLabels(a); len(labels) > 0 {
		reason += " Además cubre lo que nos pediste: " + strings.Join(labels, ", ") + "."
	}
	return reason
}

func selectedNeedLabels(a Answers) []string {
	var labels []string
	for _, entry := range needLabels {
		if a.HasNeed(entry.need) {
			labels = append(labels, entry.label)
		}
	}
	return labels
}

// insightSentences is the fixed, ordered list of insight fragments; each
// fires when its predicate holds.
var insightSentences = []struct {
	applies  func(Answers) bool
	sentence string
}{
	{
		func(a Answers) bool {
			return a.DigitalMaturity == MaturityNone || a.DigitalMaturity == MaturityBasic
		},
		"Hoy dependes de procesos manuales, por lo que cada mejora digital tendrá un impacto inmediato.",
	},
	{
		func(a Answers) bool { return a.HasGoal(GoalOrganize) },
		"Ordenar tu operación te va a liberar horas cada semana.",
	},
	{
		func(a Answers) bool { return a.HasGoal(GoalSellMore) },
		"Un canal digital bien montado suele traducirse en más ventas en pocos meses.",
	},
	{
		func(a Answers) bool { return a.HasGoal(GoalAutomate) },
		"Automatizar tareas repetitivas reduce errores y costos de operación.",
	},
	{
		func(a Answers) bool { return a.HasGoal(GoalOnlinePresence) },
		"Tener presencia en línea hará que más clientes te encuentren.",
	},
	{
		func(a Answers) bool { return a.HasNeed(NeedInventory) },
		"El control de inventario evitará fugas y compras de más.",
	},
	{
		func(a Answers) bool { return a.HasNeed(NeedBranches) },
		"Centralizar la información de tus sucursales te dará visibilidad total.",
	},
	{
		func(a Answers) bool { return a.HasNeed(NeedStaff) },
		"Gestionar a tu personal desde un solo lugar simplifica la nómina y los turnos.",
	},
	{
		func(a Answers) bool { return a.HasNeed(NeedOnlineCatalog) },
		"Un catálogo en línea mantiene tu oferta disponible las 24 horas.",
	},
}

// Personalize composes the result-screen copy. The insight concatenates
// every matching sentence in declaration order, with a generic fallback
// when nothing matched.
func Personalize(a Answers) PersonalizedMessage {
	var parts []string
	for _, entry := range insightSentences {
		if entry.applies(a) {
			parts = append(parts, entry.sentence)
		}
	}
	insight := genericInsight
	if len(parts) > 0 {
		insight = strings.Join(parts, " ")
	}
	return PersonalizedMessage{
		Title:    messageTitle,
		Subtitle: messageSubtitle,
		Insight:  insight,
	}
}

// ClassifyUrgency walks the decision tree in order; the first match wins.
func ClassifyUrgency(a Answers) Urgency {
	if a.DigitalMaturity == MaturityNone && (a.HasGoal(GoalOrganize) || a.HasGoal(GoalAutomate)) {
		return UrgencyHigh
	}
	if (a.CompanySize == SizeMedium || a.CompanySize == SizeLarge) && a.DigitalMaturity == MaturityNone {
		return UrgencyHigh
	}
	if a.DigitalMaturity == MaturityBasic || a.DigitalMaturity == MaturityFunctional {
		return UrgencyMedium
	}
	return UrgencyLow
}
