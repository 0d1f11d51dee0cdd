package domain

// SolutionID identifies one of the five solutions Solvia sells.
type SolutionID string

const (
	SolutionRestaurant   SolutionID = "sistema-restaurante"
	SolutionFieldService SolutionID = "sistema-servicios"
	SolutionWorkshop     SolutionID = "sistema-taller"
	SolutionQuoteBuilder SolutionID = "cotizador"
	SolutionWebDev       SolutionID = "desarrollo-web"
)

// Solution is a static catalog entry shown on the marketing site.
type Solution struct {
	ID          SolutionID
	Title       string
	Description string
	Icon        string
	Link        string
}

// catalog is declared once, in the order the site presents the solutions.
// Declaration order doubles as the deterministic tie-break when two
// solutions share the maximum score.
var catalog = []Solution{
	{
		ID:          SolutionRestaurant,
		Title:       "Sistema para Restaurantes",
		Description: "Comandas, mesas, cocina y corte de caja en un solo lugar.",
		Icon:        "utensils",
		Link:        "/soluciones/restaurante",
	},
	{
		ID:          SolutionFieldService,
		Title:       "Sistema para Servicio Técnico",
		Description: "Órdenes de servicio, técnicos en campo y seguimiento de equipos.",
		Icon:        "wrench",
		Link:        "/soluciones/servicio-tecnico",
	},
	{
		ID:          SolutionWorkshop,
		Title:       "Sistema para Talleres",
		Description: "Recepción de vehículos, refacciones y avance de reparaciones.",
		Icon:        "car",
		Link:        "/soluciones/taller",
	},
	{
		ID:          SolutionQuoteBuilder,
		Title:       "Cotizador para Fábricas",
		Description: "Cotizaciones formales con partidas, versiones y aprobación del cliente.",
		Icon:        "calculator",
		Link:        "/soluciones/cotizador",
	},
	{
		ID:          SolutionWebDev,
		Title:       "Desarrollo Web",
		Description: "Sitio profesional con catálogo y contacto directo a WhatsApp.",
		Icon:        "globe",
		Link:        "/soluciones/desarrollo-web",
	},
}

// Catalog returns a copy of the solution catalog to keep the canonical
// slice read-only for concurrent callers.
func Catalog() []Solution {
	return append([]Solution(nil), catalog...)
}

// SolutionByID looks a catalog entry up by id.
func SolutionByID(id SolutionID) (Solution, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Solution{}, false
}
