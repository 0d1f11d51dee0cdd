package application

import (
	"context"
	"errors"
	"testing"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRepoNotFound = errors.New("not found")

type fakeOrderRepository struct {
	orders map[string]*admindomain.Order
	nextID int
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[string]*admindomain.Order{}}
}

func (f *fakeOrderRepository) Find(context.Context, OrderFilter, Paging) ([]admindomain.Order, error) {
	result := make([]admindomain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (f *fakeOrderRepository) FindByID(_ context.Context, id string) (*admindomain.Order, error) {
	if order, ok := f.orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, errRepoNotFound
}

func (f *fakeOrderRepository) Create(_ context.Context, order *admindomain.Order) error {
	f.nextID++
	order.ID = orderID(f.nextID)
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepository) Update(_ context.Context, order *admindomain.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return errRepoNotFound
	}
	f.orders[order.ID] = order
	return nil
}

func orderID(n int) string {
	return string(rune('a'+n-1)) + "-order"
}

type fakePriceItemRepository struct {
	items map[string]*admindomain.PriceItem
}

func (f *fakePriceItemRepository) Find(context.Context, PriceItemFilter, Paging) ([]admindomain.PriceItem, error) {
	return nil, nil
}

func (f *fakePriceItemRepository) FindByID(_ context.Context, id string) (*admindomain.PriceItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, errRepoNotFound
}

func (f *fakePriceItemRepository) Create(context.Context, *admindomain.PriceItem) error { return nil }
func (f *fakePriceItemRepository) Update(context.Context, *admindomain.PriceItem) error { return nil }

type fakeLegalTemplateRepository struct {
	templates map[string]*admindomain.LegalTemplate
}

func (f *fakeLegalTemplateRepository) Find(context.Context, LegalTemplateFilter, Paging) ([]admindomain.LegalTemplate, error) {
	return nil, nil
}

func (f *fakeLegalTemplateRepository) FindByID(_ context.Context, id string) (*admindomain.LegalTemplate, error) {
	if template, ok := f.templates[id]; ok {
		return template, nil
	}
	return nil, errRepoNotFound
}

func (f *fakeLegalTemplateRepository) Create(context.Context, *admindomain.LegalTemplate) error {
	return nil
}

func (f *fakeLegalTemplateRepository) Update(context.Context, *admindomain.LegalTemplate) error {
	return nil
}

type fakeChangeOrderRepository struct {
	changes map[string]*admindomain.ChangeOrder
	nextID  int
}

func newFakeChangeOrderRepository() *fakeChangeOrderRepository {
	return &fakeChangeOrderRepository{changes: map[string]*admindomain.ChangeOrder{}}
}

func (f *fakeChangeOrderRepository) FindByOrder(_ context.Context, orderID string) ([]admindomain.ChangeOrder, error) {
	var result []admindomain.ChangeOrder
	for _, c := range f.changes {
		if c.OrderID == orderID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (f *fakeChangeOrderRepository) FindByID(_ context.Context, id string) (*admindomain.ChangeOrder, error) {
	if change, ok := f.changes[id]; ok {
		copied := *change
		return &copied, nil
	}
	return nil, errRepoNotFound
}

func (f *fakeChangeOrderRepository) Create(_ context.Context, change *admindomain.ChangeOrder) error {
	f.nextID++
	change.ID = string(rune('a'+f.nextID-1)) + "-change"
	f.changes[change.ID] = change
	return nil
}

func (f *fakeChangeOrderRepository) Update(_ context.Context, change *admindomain.ChangeOrder) error {
	if _, ok := f.changes[change.ID]; !ok {
		return errRepoNotFound
	}
	f.changes[change.ID] = change
	return nil
}

func testOrderService(orders *fakeOrderRepository, items *fakePriceItemRepository, templates *fakeLegalTemplateRepository) OrderService {
	if items == nil {
		items = &fakePriceItemRepository{items: map[string]*admindomain.PriceItem{}}
	}
	if templates == nil {
		templates = &fakeLegalTemplateRepository{templates: map[string]*admindomain.LegalTemplate{}}
	}
	return NewOrderService(orders, items, templates, 16)
}

func TestOrderCreateResolvesCatalogPrices(t *testing.T) {
	items := &fakePriceItemRepository{items: map[string]*admindomain.PriceItem{
		"item-1": {ID: "item-1", Name: "Sistema para Restaurantes", UnitPrice: 1500000},
	}}
	orders := newFakeOrderRepository()
	service := testOrderService(orders, items, nil)

	order, err := service.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Taquería El Paso",
		Lines: []OrderLineCommand{
			{PriceItemID: "item-1", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Sistema para Restaurantes", order.Lines[0].Concept)
	assert.Equal(t, admindomain.Money(1500000), order.Lines[0].UnitPrice)
	assert.Equal(t, admindomain.Money(1500000), order.Totals.Subtotal)
	assert.Equal(t, admindomain.Money(240000), order.Totals.Tax)
	assert.Equal(t, admindomain.Money(1740000), order.Totals.Total)
	assert.Equal(t, admindomain.OrderDraft, order.Status)
	assert.Contains(t, order.Folio, "ORD-")
}

func TestOrderCreateRendersLegalTemplate(t *testing.T) {
	templates := &fakeLegalTemplateRepository{templates: map[string]*admindomain.LegalTemplate{
		"tpl-1": {ID: "tpl-1", Body: "Cliente: {{cliente}}. Total: {{total}}."},
	}}
	orders := newFakeOrderRepository()
	service := testOrderService(orders, nil, templates)

	order, err := service.Create(context.Background(), UpsertOrderCommand{
		ClientName:      "Refaccionaria Luna",
		LegalTemplateID: "tpl-1",
		Lines: []OrderLineCommand{
			{Concept: "Sitio web", UnitPrice: intPtr(800000), Quantity: 1},
		},
		TaxPercent: floatPtr(0),
	})
	require.NoError(t, err)

	assert.Equal(t, "Cliente: Refaccionaria Luna. Total: $8000.00 MXN.", order.LegalText)
}

func TestOrderCreateRejectsUnresolvableLine(t *testing.T) {
	service := testOrderService(newFakeOrderRepository(), nil, nil)

	_, err := service.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{PriceItemID: "missing", Quantity: 1}},
	})
	assert.Error(t, err)

	_, err = service.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestOrderUpdateKeepsFolioStatusAndAdjustments(t *testing.T) {
	orders := newFakeOrderRepository()
	service := testOrderService(orders, nil, nil)

	created, err := service.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(100000), Quantity: 1}},
	})
	require.NoError(t, err)
	orders.orders[created.ID].Adjustments = 5000

	updated, err := service.Update(context.Background(), created.ID, UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(200000), Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, created.Folio, updated.Folio)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, 5000, updated.Adjustments)
	assert.Equal(t, admindomain.Money(200000), updated.Totals.Subtotal)
}

func TestOrderUpdateRejectsTerminalStatus(t *testing.T) {
	orders := newFakeOrderRepository()
	service := testOrderService(orders, nil, nil)

	created, err := service.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(100000), Quantity: 1}},
	})
	require.NoError(t, err)
	orders.orders[created.ID].Status = admindomain.OrderAccepted

	_, err = service.Update(context.Background(), created.ID, UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(100000), Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestOrderUpdateStatusFollowsWorkflow(t *testing.T) {
	orders := newFakeOrderRepository()
	service := testOrderService(orders, nil, nil)

	created, err := service.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(100000), Quantity: 1}},
	})
	require.NoError(t, err)

	sent, err := service.UpdateStatus(context.Background(), created.ID, "enviada")
	require.NoError(t, err)
	assert.Equal(t, admindomain.OrderSent, sent.Status)

	_, err = service.UpdateStatus(context.Background(), created.ID, "borrador")
	assert.Error(t, err)

	_, err = service.UpdateStatus(context.Background(), created.ID, "estado-raro")
	assert.Error(t, err)
}

func TestChangeOrderApproveAppliesDelta(t *testing.T) {
	orders := newFakeOrderRepository()
	orderSvc := testOrderService(orders, nil, nil)
	changes := newFakeChangeOrderRepository()
	changeSvc := NewChangeOrderService(changes, orders)

	order, err := orderSvc.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(100000), Quantity: 1}},
		TaxPercent: floatPtr(0),
	})
	require.NoError(t, err)

	change, err := changeSvc.Create(context.Background(), order.ID, UpsertChangeOrderCommand{
		Description: "Módulo de reservaciones",
		Lines:       []ChangeOrderLineCommand{{Concept: "Módulo", UnitPrice: 30000, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, admindomain.ChangePending, change.Status)
	assert.Equal(t, 30000, change.AmountDelta)

	approved, err := changeSvc.Decide(context.Background(), change.ID, true)
	require.NoError(t, err)
	assert.Equal(t, admindomain.ChangeApproved, approved.Status)

	stored, err := orderSvc.Detail(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 30000, stored.Adjustments)
	assert.Equal(t, admindomain.Money(130000), stored.AdjustedTotal())

	// A decided change cannot be decided again.
	_, err = changeSvc.Decide(context.Background(), change.ID, false)
	assert.Error(t, err)
}

func TestChangeOrderRejectLeavesOrderUntouched(t *testing.T) {
	orders := newFakeOrderRepository()
	orderSvc := testOrderService(orders, nil, nil)
	changes := newFakeChangeOrderRepository()
	changeSvc := NewChangeOrderService(changes, orders)

	order, err := orderSvc.Create(context.Background(), UpsertOrderCommand{
		ClientName: "Cliente",
		Lines:      []OrderLineCommand{{Concept: "Sitio", UnitPrice: intPtr(100000), Quantity: 1}},
	})
	require.NoError(t, err)

	change, err := changeSvc.Create(context.Background(), order.ID, UpsertChangeOrderCommand{
		Description: "Descuento especial",
		Lines:       []ChangeOrderLineCommand{{Concept: "Descuento", UnitPrice: -20000, Quantity: 1}},
	})
	require.NoError(t, err)

	rejected, err := changeSvc.Decide(context.Background(), change.ID, false)
	require.NoError(t, err)
	assert.Equal(t, admindomain.ChangeRejected, rejected.Status)

	stored, err := orderSvc.Detail(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Adjustments)
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
