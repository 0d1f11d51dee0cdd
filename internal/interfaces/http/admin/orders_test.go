package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/solvia-mx/solvia-services/api/internal/admin/application"
	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

type fakeOrderService struct {
	orders        map[string]*admindomain.Order
	createdCmds   []adminapp.UpsertOrderCommand
	statusUpdates []string
}

func (f *fakeOrderService) List(_ context.Context, _ adminapp.OrderFilter, _ adminapp.Paging) ([]admindomain.Order, error) {
	result := make([]admindomain.Order, 0, len(f.orders))
	for _, order := range f.orders {
		result = append(result, *order)
	}
	return result, nil
}

func (f *fakeOrderService) Detail(_ context.Context, id string) (*admindomain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return order, nil
}

func (f *fakeOrderService) Create(_ context.Context, cmd adminapp.UpsertOrderCommand) (*admindomain.Order, error) {
	f.createdCmds = append(f.createdCmds, cmd)
	order := &admindomain.Order{
		ID:         "ord-1",
		Folio:      "ORD-A1B2C3",
		ClientName: cmd.ClientName,
		Status:     admindomain.OrderDraft,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	return order, nil
}

func (f *fakeOrderService) Update(_ context.Context, id string, _ adminapp.UpsertOrderCommand) (*admindomain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return order, nil
}

func (f *fakeOrderService) UpdateStatus(_ context.Context, id string, status string) (*admindomain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	next, err := admindomain.NewOrderStatus(status)
	if err != nil {
		return nil, err
	}
	if err := order.Transition(next); err != nil {
		return nil, err
	}
	f.statusUpdates = append(f.statusUpdates, status)
	return order, nil
}

func newOrderTestRouter(orders *fakeOrderService) *chi.Mux {
	handler := NewHandler(Config{
		Logger:       log.New(bytes.NewBuffer(nil), "", 0),
		OrderService: orders,
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func sampleOrder() *admindomain.Order {
	order := &admindomain.Order{
		ID:         "ord-1",
		Folio:      "ORD-A1B2C3",
		ClientName: "Refaccionaria Luna",
		Lines: []admindomain.OrderLine{
			{Concept: "Sistema base", UnitPrice: admindomain.Money(2000000), Quantity: 1},
		},
		TaxPercent: admindomain.Percent(16),
		Status:     admindomain.OrderDraft,
	}
	order.Recalculate()
	return order
}

func TestOrderCreateHandler(t *testing.T) {
	orders := &fakeOrderService{orders: map[string]*admindomain.Order{}}
	router := newOrderTestRouter(orders)

	body := `{
		"clientName": "Refaccionaria Luna",
		"clientEmail": "compras@refaccionarialuna.mx",
		"lines": [{"priceItemId": "pi-1", "quantity": 2}, {"concept": "Capacitación", "unitPrice": 500000, "quantity": 1}],
		"discountPercent": 10
	}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte(body))))

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, orders.createdCmds, 1)

	cmd := orders.createdCmds[0]
	assert.Equal(t, "Refaccionaria Luna", cmd.ClientName)
	require.Len(t, cmd.Lines, 2)
	assert.Equal(t, "pi-1", cmd.Lines[0].PriceItemID)
	assert.Nil(t, cmd.Lines[0].UnitPrice)
	require.NotNil(t, cmd.Lines[1].UnitPrice)
	assert.Equal(t, 500000, *cmd.Lines[1].UnitPrice)
	assert.Nil(t, cmd.TaxPercent)
}

func TestOrderCreateHandlerValidation(t *testing.T) {
	orders := &fakeOrderService{orders: map[string]*admindomain.Order{}}
	router := newOrderTestRouter(orders)

	cases := []struct {
		name string
		body string
	}{
		{"missing client", `{"lines":[{"concept":"x","unitPrice":100,"quantity":1}]}`},
		{"no lines", `{"clientName":"Luna","lines":[]}`},
		{"zero quantity", `{"clientName":"Luna","lines":[{"concept":"x","unitPrice":100,"quantity":0}]}`},
		{"negative price", `{"clientName":"Luna","lines":[{"concept":"x","unitPrice":-5,"quantity":1}]}`},
		{"discount over 100", `{"clientName":"Luna","discountPercent":120,"lines":[{"concept":"x","unitPrice":100,"quantity":1}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte(tc.body))))
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Empty(t, orders.createdCmds)
		})
	}
}

func TestOrderStatusHandler(t *testing.T) {
	orders := &fakeOrderService{orders: map[string]*admindomain.Order{"ord-1": sampleOrder()}}
	router := newOrderTestRouter(orders)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/orders/ord-1/status", bytes.NewReader([]byte(`{"status":"enviada"}`))))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Status string `json:"status"`
		Totals struct {
			Subtotal int `json:"subtotal"`
			Tax      int `json:"tax"`
			Total    int `json:"total"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "enviada", response.Status)
	assert.Equal(t, 2000000, response.Totals.Subtotal)
	assert.Equal(t, 320000, response.Totals.Tax)
	assert.Equal(t, 2320000, response.Totals.Total)

	// Draft orders cannot jump straight to accepted.
	orders.orders["ord-2"] = sampleOrder()
	orders.orders["ord-2"].ID = "ord-2"
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/orders/ord-2/status", bytes.NewReader([]byte(`{"status":"aceptada"}`))))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/orders/missing/status", bytes.NewReader([]byte(`{"status":"enviada"}`))))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
