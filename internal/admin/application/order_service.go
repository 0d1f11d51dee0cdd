package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

type orderService struct {
	orders            OrderRepository
	priceItems        PriceItemRepository
	legalTemplates    LegalTemplateRepository
	defaultTaxPercent float64
}

// NewOrderService wires the order use-cases. defaultTaxPercent is applied
// when a command does not carry an explicit rate (IVA, normally 16).
func NewOrderService(orders OrderRepository, priceItems PriceItemRepository, legalTemplates LegalTemplateRepository, defaultTaxPercent float64) OrderService {
	return &orderService{
		orders:            orders,
		priceItems:        priceItems,
		legalTemplates:    legalTemplates,
		defaultTaxPercent: defaultTaxPercent,
	}
}

func (s *orderService) List(ctx context.Context, filter OrderFilter, paging Paging) ([]admindomain.Order, error) {
	return s.orders.Find(ctx, filter, paging)
}

func (s *orderService) Detail(ctx context.Context, id string) (*admindomain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *orderService) Create(ctx context.Context, cmd UpsertOrderCommand) (*admindomain.Order, error) {
	order, err := s.buildOrder(ctx, "", cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	order.Folio = newOrderFolio()
	order.Status = admindomain.OrderDraft
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.renderLegalText(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update replaces the editable fields and recomputes totals. Folio, status
// and approved adjustments survive the rewrite.
func (s *orderService) Update(ctx context.Context, id string, cmd UpsertOrderCommand) (*admindomain.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == admindomain.OrderAccepted || existing.Status == admindomain.OrderCancelled {
		return nil, fmt.Errorf("una orden %s ya no puede modificarse", existing.Status)
	}

	order, err := s.buildOrder(ctx, id, cmd)
	if err != nil {
		return nil, err
	}
	order.Folio = existing.Folio
	order.Status = existing.Status
	order.Adjustments = existing.Adjustments
	order.CreatedAt = existing.CreatedAt
	order.UpdatedAt = time.Now().UTC()

	if err := s.renderLegalText(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status string) (*admindomain.Order, error) {
	next, err := admindomain.NewOrderStatus(status)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Transition(next); err != nil {
		return nil, err
	}
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// buildOrder validates the command and resolves every line against the
// pricing catalog, freezing unit prices into the order.
func (s *orderService) buildOrder(ctx context.Context, id string, cmd UpsertOrderCommand) (*admindomain.Order, error) {
	clientName := strings.TrimSpace(cmd.ClientName)
	if clientName == "" {
		return nil, errors.New("client name is required")
	}
	if len(cmd.Lines) == 0 {
		return nil, errors.New("order needs at least one line")
	}
	email, err := admindomain.NewEmail(cmd.ClientEmail)
	if err != nil {
		return nil, err
	}
	discount, err := admindomain.NewPercent(cmd.DiscountPercent)
	if err != nil {
		return nil, err
	}
	taxValue := s.defaultTaxPercent
	if cmd.TaxPercent != nil {
		taxValue = *cmd.TaxPercent
	}
	tax, err := admindomain.NewPercent(taxValue)
	if err != nil {
		return nil, err
	}

	lines := make([]admindomain.OrderLine, 0, len(cmd.Lines))
	for _, lineCmd := range cmd.Lines {
		line, err := s.resolveLine(ctx, lineCmd)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	order := &admindomain.Order{
		ID:              id,
		DiagnosticID:    strings.TrimSpace(cmd.DiagnosticID),
		ClientName:      clientName,
		ClientEmail:     email,
		Lines:           lines,
		DiscountPercent: discount,
		TaxPercent:      tax,
		LegalTemplateID: strings.TrimSpace(cmd.LegalTemplateID),
		Notes:           strings.TrimSpace(cmd.Notes),
	}
	order.Recalculate()
	return order, nil
}

func (s *orderService) resolveLine(ctx context.Context, cmd OrderLineCommand) (admindomain.OrderLine, error) {
	if cmd.Quantity <= 0 {
		return admindomain.OrderLine{}, errors.New("line quantity must be positive")
	}

	concept := strings.TrimSpace(cmd.Concept)
	var unitPrice admindomain.Money

	switch {
	case cmd.UnitPrice != nil:
		price, err := admindomain.NewMoney(*cmd.UnitPrice)
		if err != nil {
			return admindomain.OrderLine{}, err
		}
		unitPrice = price
		if concept == "" {
			return admindomain.OrderLine{}, errors.New("line concept is required for custom prices")
		}
	case cmd.PriceItemID != "":
		item, err := s.priceItems.FindByID(ctx, cmd.PriceItemID)
		if err != nil {
			return admindomain.OrderLine{}, fmt.Errorf("resolve price item %s: %w", cmd.PriceItemID, err)
		}
		unitPrice = item.UnitPrice
		if concept == "" {
			concept = item.Name
		}
	default:
		return admindomain.OrderLine{}, errors.New("line needs a price item or an explicit price")
	}

	return admindomain.OrderLine{
		PriceItemID: cmd.PriceItemID,
		Concept:     concept,
		UnitPrice:   unitPrice,
		Quantity:    cmd.Quantity,
	}, nil
}

// renderLegalText fills the attached template with the order facts. An
// order without a template keeps an empty legal text.
func (s *orderService) renderLegalText(ctx context.Context, order *admindomain.Order) error {
	if order.LegalTemplateID == "" {
		order.LegalText = ""
		return nil
	}
	template, err := s.legalTemplates.FindByID(ctx, order.LegalTemplateID)
	if err != nil {
		return fmt.Errorf("resolve legal template %s: %w", order.LegalTemplateID, err)
	}
	order.LegalText = template.Render(map[string]string{
		"cliente": order.ClientName,
		"folio":   order.Folio,
		"total":   FormatMoney(order.Totals.Total),
		"fecha":   order.CreatedAt.Format("02/01/2006"),
	})
	return nil
}

// FormatMoney renders cents as the peso amount used in legal text.
func FormatMoney(amount admindomain.Money) string {
	return fmt.Sprintf("$%.2f MXN", float64(amount)/100)
}

// newOrderFolio derives a short human-quotable folio from a UUID.
func newOrderFolio() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:6])
}
