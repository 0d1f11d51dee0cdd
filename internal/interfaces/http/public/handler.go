package public

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/solvia-mx/solvia-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger             *log.Logger
	diagnosticCommands publicapp.DiagnosticCommandService
	diagnosticQueries  publicapp.DiagnosticQueryService
	location           *time.Location
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger             *log.Logger
	DiagnosticCommands publicapp.DiagnosticCommandService
	DiagnosticQueries  publicapp.DiagnosticQueryService
	Location           *time.Location
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:             cfg.Logger,
		diagnosticCommands: cfg.DiagnosticCommands,
		diagnosticQueries:  cfg.DiagnosticQueries,
		location:           cfg.Location,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/diagnostics", h.diagnosticCreateHandler())
	r.Get("/diagnostics/{token}", h.diagnosticDetailHandler())
	r.Get("/solutions", h.solutionListHandler())
}
