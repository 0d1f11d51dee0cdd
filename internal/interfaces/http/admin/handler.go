package admin

import (
	"log"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/solvia-mx/solvia-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger             *log.Logger
	diagnosticService  adminapp.DiagnosticService
	pricingService     adminapp.PricingService
	orderService       adminapp.OrderService
	changeOrderService adminapp.ChangeOrderService
	legalService       adminapp.LegalService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger             *log.Logger
	DiagnosticService  adminapp.DiagnosticService
	PricingService     adminapp.PricingService
	OrderService       adminapp.OrderService
	ChangeOrderService adminapp.ChangeOrderService
	LegalService       adminapp.LegalService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:             cfg.Logger,
		diagnosticService:  cfg.DiagnosticService,
		pricingService:     cfg.PricingService,
		orderService:       cfg.OrderService,
		changeOrderService: cfg.ChangeOrderService,
		legalService:       cfg.LegalService,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/diagnostics", h.diagnosticListHandler())
	r.Get("/diagnostics/{id}", h.diagnosticDetailHandler())
	r.Patch("/diagnostics/{id}", h.diagnosticLeadUpdateHandler())

	r.Get("/price-items", h.priceItemListHandler())
	r.Post("/price-items", h.priceItemCreateHandler())
	r.Get("/price-items/{id}", h.priceItemDetailHandler())
	r.Put("/price-items/{id}", h.priceItemUpdateHandler())

	r.Get("/orders", h.orderListHandler())
	r.Post("/orders", h.orderCreateHandler())
	r.Get("/orders/{id}", h.orderDetailHandler())
	r.Put("/orders/{id}", h.orderUpdateHandler())
	r.Patch("/orders/{id}/status", h.orderStatusHandler())

	r.Get("/orders/{id}/change-orders", h.changeOrderListHandler())
	r.Post("/orders/{id}/change-orders", h.changeOrderCreateHandler())
	r.Get("/change-orders/{id}", h.changeOrderDetailHandler())
	r.Put("/change-orders/{id}", h.changeOrderUpdateHandler())
	r.Post("/change-orders/{id}/decision", h.changeOrderDecisionHandler())

	r.Get("/legal-templates", h.legalTemplateListHandler())
	r.Post("/legal-templates", h.legalTemplateCreateHandler())
	r.Get("/legal-templates/{id}", h.legalTemplateDetailHandler())
	r.Put("/legal-templates/{id}", h.legalTemplateUpdateHandler())
	r.Post("/legal-templates/{id}/render", h.legalTemplateRenderHandler())
}
