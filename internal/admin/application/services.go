package application

import (
	"context"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

// DiagnosticRepository exposes admin reads and lead updates on diagnostics.
type DiagnosticRepository interface {
	Find(ctx context.Context, filter DiagnosticFilter, paging Paging) ([]admindomain.Diagnostic, error)
	FindByID(ctx context.Context, id string) (*admindomain.Diagnostic, error)
	UpdateLead(ctx context.Context, diagnostic *admindomain.Diagnostic) error
}

// PriceItemRepository exposes CRUD over the pricing catalog.
type PriceItemRepository interface {
	Find(ctx context.Context, filter PriceItemFilter, paging Paging) ([]admindomain.PriceItem, error)
	FindByID(ctx context.Context, id string) (*admindomain.PriceItem, error)
	Create(ctx context.Context, item *admindomain.PriceItem) error
	Update(ctx context.Context, item *admindomain.PriceItem) error
}

// OrderRepository exposes CRUD over orders.
type OrderRepository interface {
	Find(ctx context.Context, filter OrderFilter, paging Paging) ([]admindomain.Order, error)
	FindByID(ctx context.Context, id string) (*admindomain.Order, error)
	Create(ctx context.Context, order *admindomain.Order) error
	Update(ctx context.Context, order *admindomain.Order) error
}

// ChangeOrderRepository exposes CRUD over change orders.
type ChangeOrderRepository interface {
	FindByOrder(ctx context.Context, orderID string) ([]admindomain.ChangeOrder, error)
	FindByID(ctx context.Context, id string) (*admindomain.ChangeOrder, error)
	Create(ctx context.Context, change *admindomain.ChangeOrder) error
	Update(ctx context.Context, change *admindomain.ChangeOrder) error
}

// LegalTemplateRepository exposes CRUD over legal templates.
type LegalTemplateRepository interface {
	Find(ctx context.Context, filter LegalTemplateFilter, paging Paging) ([]admindomain.LegalTemplate, error)
	FindByID(ctx context.Context, id string) (*admindomain.LegalTemplate, error)
	Create(ctx context.Context, template *admindomain.LegalTemplate) error
	Update(ctx context.Context, template *admindomain.LegalTemplate) error
}

// DiagnosticFilter expresses lead list criteria.
type DiagnosticFilter struct {
	BusinessType string
	LeadStatus   string
	Qualifies    *bool
	Keyword      string
}

// PriceItemFilter expresses pricing catalog criteria.
type PriceItemFilter struct {
	Category   string
	Keyword    string
	ActiveOnly bool
}

// OrderFilter expresses order list criteria.
type OrderFilter struct {
	Status       string
	ClientName   string
	DiagnosticID string
}

// LegalTemplateFilter expresses template list criteria.
type LegalTemplateFilter struct {
	Keyword string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// DiagnosticService describes lead-management use-cases.
type DiagnosticService interface {
	List(ctx context.Context, filter DiagnosticFilter, paging Paging) ([]admindomain.Diagnostic, error)
	Detail(ctx context.Context, id string) (*admindomain.Diagnostic, error)
	UpdateLead(ctx context.Context, id string, cmd UpdateLeadCommand) (*admindomain.Diagnostic, error)
}

// PricingService describes pricing catalog use-cases.
type PricingService interface {
	List(ctx context.Context, filter PriceItemFilter, paging Paging) ([]admindomain.PriceItem, error)
	Detail(ctx context.Context, id string) (*admindomain.PriceItem, error)
	Create(ctx context.Context, cmd UpsertPriceItemCommand) (*admindomain.PriceItem, error)
	Update(ctx context.Context, id string, cmd UpsertPriceItemCommand) (*admindomain.PriceItem, error)
}

// OrderService describes order use-cases, including the server-side total
// calculation and legal-text rendering.
type OrderService interface {
	List(ctx context.Context, filter OrderFilter, paging Paging) ([]admindomain.Order, error)
	Detail(ctx context.Context, id string) (*admindomain.Order, error)
	Create(ctx context.Context, cmd UpsertOrderCommand) (*admindomain.Order, error)
	Update(ctx context.Context, id string, cmd UpsertOrderCommand) (*admindomain.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*admindomain.Order, error)
}

// ChangeOrderService describes change-order use-cases.
type ChangeOrderService interface {
	ListByOrder(ctx context.Context, orderID string) ([]admindomain.ChangeOrder, error)
	Detail(ctx context.Context, id string) (*admindomain.ChangeOrder, error)
	Create(ctx context.Context, orderID string, cmd UpsertChangeOrderCommand) (*admindomain.ChangeOrder, error)
	Update(ctx context.Context, id string, cmd UpsertChangeOrderCommand) (*admindomain.ChangeOrder, error)
	Decide(ctx context.Context, id string, approve bool) (*admindomain.ChangeOrder, error)
}

// LegalService describes legal template use-cases.
type LegalService interface {
	List(ctx context.Context, filter LegalTemplateFilter, paging Paging) ([]admindomain.LegalTemplate, error)
	Detail(ctx context.Context, id string) (*admindomain.LegalTemplate, error)
	Create(ctx context.Context, cmd UpsertLegalTemplateCommand) (*admindomain.LegalTemplate, error)
	Update(ctx context.Context, id string, cmd UpsertLegalTemplateCommand) (*admindomain.LegalTemplate, error)
	Render(ctx context.Context, id string, vars map[string]string) (string, error)
}

// UpdateLeadCommand carries the follow-up fields an admin can modify.
type UpdateLeadCommand struct {
	LeadStatus string
	AdminNotes *string
}

// UpsertPriceItemCommand contains inputs for pricing catalog CRUD.
type UpsertPriceItemCommand struct {
	Key         string
	Name        string
	Description string
	Category    string
	UnitPrice   int
	Currency    string
	Active      bool
}

// OrderLineCommand is one requested line. UnitPrice overrides the catalog
// price when set; otherwise the referenced price item supplies it.
type OrderLineCommand struct {
	PriceItemID string
	Concept     string
	UnitPrice   *int
	Quantity    int
}

// UpsertOrderCommand contains inputs for order CRUD.
type UpsertOrderCommand struct {
	DiagnosticID    string
	ClientName      string
	ClientEmail     string
	Lines           []OrderLineCommand
	DiscountPercent float64
	TaxPercent      *float64
	LegalTemplateID string
	Notes           string
}

// UpsertChangeOrderCommand contains inputs for change-order CRUD.
type UpsertChangeOrderCommand struct {
	Description string
	Lines       []ChangeOrderLineCommand
}

// ChangeOrderLineCommand is one signed scope-change line.
type ChangeOrderLineCommand struct {
	Concept   string
	UnitPrice int
	Quantity  int
}

// UpsertLegalTemplateCommand contains inputs for template CRUD.
type UpsertLegalTemplateCommand struct {
	Key   string
	Title string
	Body  string
}
