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

type changeOrderService struct {
	changes ChangeOrderRepository
	orders  OrderRepository
}

func NewChangeOrderService(changes ChangeOrderRepository, orders OrderRepository) ChangeOrderService {
	return &changeOrderService{changes: changes, orders: orders}
}

func (s *changeOrderService) ListByOrder(ctx context.Context, orderID string) ([]admindomain.ChangeOrder, error) {
	return s.changes.FindByOrder(ctx, orderID)
}

func (s *changeOrderService) Detail(ctx context.Context, id string) (*admindomain.ChangeOrder, error) {
	return s.changes.FindByID(ctx, id)
}

func (s *changeOrderService) Create(ctx context.Context, orderID string, cmd UpsertChangeOrderCommand) (*admindomain.ChangeOrder, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == admindomain.OrderCancelled {
		return nil, errors.New("una orden cancelada no admite órdenes de cambio")
	}

	change, err := buildChangeOrderFromCommand("", orderID, cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	change.Folio = "CAM-" + strings.ToUpper(uuid.NewString()[:6])
	change.Status = admindomain.ChangePending
	change.CreatedAt = now
	change.UpdatedAt = now

	if err := s.changes.Create(ctx, change); err != nil {
		return nil, err
	}
	return change, nil
}

// Update rewrites a pending change; decided changes are immutable.
func (s *changeOrderService) Update(ctx context.Context, id string, cmd UpsertChangeOrderCommand) (*admindomain.ChangeOrder, error) {
	existing, err := s.changes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Decided() {
		return nil, fmt.Errorf("una orden de cambio %s ya no puede modificarse", existing.Status)
	}

	change, err := buildChangeOrderFromCommand(id, existing.OrderID, cmd)
	if err != nil {
		return nil, err
	}
	change.Folio = existing.Folio
	change.Status = existing.Status
	change.CreatedAt = existing.CreatedAt
	change.UpdatedAt = time.Now().UTC()

	if err := s.changes.Update(ctx, change); err != nil {
		return nil, err
	}
	return change, nil
}

// Decide approves or rejects a pending change. Approval applies the signed
// delta to the parent order's adjustments.
func (s *changeOrderService) Decide(ctx context.Context, id string, approve bool) (*admindomain.ChangeOrder, error) {
	change, err := s.changes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if change.Decided() {
		return nil, fmt.Errorf("la orden de cambio ya fue %s", change.Status)
	}

	if approve {
		order, err := s.orders.FindByID(ctx, change.OrderID)
		if err != nil {
			return nil, err
		}
		order.Adjustments += change.AmountDelta
		order.UpdatedAt = time.Now().UTC()
		if err := s.orders.Update(ctx, order); err != nil {
			return nil, err
		}
		change.Status = admindomain.ChangeApproved
	} else {
		change.Status = admindomain.ChangeRejected
	}
	change.UpdatedAt = time.Now().UTC()

	if err := s.changes.Update(ctx, change); err != nil {
		return nil, err
	}
	return change, nil
}

func buildChangeOrderFromCommand(id, orderID string, cmd UpsertChangeOrderCommand) (*admindomain.ChangeOrder, error) {
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return nil, errors.New("change order description is required")
	}
	if len(cmd.Lines) == 0 {
		return nil, errors.New("change order needs at least one line")
	}

	lines := make([]admindomain.ChangeOrderLine, 0, len(cmd.Lines))
	for _, lineCmd := range cmd.Lines {
		concept := strings.TrimSpace(lineCmd.Concept)
		if concept == "" {
			return nil, errors.New("change order line concept is required")
		}
		if lineCmd.Quantity <= 0 {
			return nil, errors.New("change order line quantity must be positive")
		}
		lines = append(lines, admindomain.ChangeOrderLine{
			Concept:   concept,
			UnitPrice: lineCmd.UnitPrice,
			Quantity:  lineCmd.Quantity,
		})
	}

	change := &admindomain.ChangeOrder{
		ID:          id,
		OrderID:     orderID,
		Description: description,
		Lines:       lines,
	}
	change.Recalculate()
	return change, nil
}
