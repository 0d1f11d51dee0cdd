package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotals(t *testing.T) {
	lines := []OrderLine{
		{Concept: "Sistema para Restaurantes", UnitPrice: 1500000, Quantity: 1},
		{Concept: "Capacitación", UnitPrice: 250000, Quantity: 2},
	}

	totals := CalculateTotals(lines, 10, 16)

	assert.Equal(t, Money(2000000), totals.Subtotal)
	assert.Equal(t, Money(200000), totals.Discount)
	assert.Equal(t, Money(288000), totals.Tax) // 16% of 1,800,000
	assert.Equal(t, Money(2088000), totals.Total)
}

func TestCalculateTotalsRoundsToNearestCent(t *testing.T) {
	lines := []OrderLine{{Concept: "Licencia", UnitPrice: 333, Quantity: 1}}

	totals := CalculateTotals(lines, 0, 16) // 53.28 cents of tax

	assert.Equal(t, Money(53), totals.Tax)
	assert.Equal(t, Money(386), totals.Total)
}

func TestCalculateTotalsEmptyOrder(t *testing.T) {
	totals := CalculateTotals(nil, 25, 16)
	assert.Equal(t, OrderTotals{}, totals)
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderDraft, OrderSent, true},
		{OrderDraft, OrderCancelled, true},
		{OrderDraft, OrderAccepted, false},
		{OrderSent, OrderAccepted, true},
		{OrderSent, OrderCancelled, true},
		{OrderSent, OrderDraft, false},
		{OrderAccepted, OrderCancelled, false},
		{OrderCancelled, OrderSent, false},
	}

	for _, tc := range cases {
		order := &Order{Status: tc.from}
		err := order.Transition(tc.to)
		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, order.Status)
		} else {
			require.Error(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.from, order.Status)
		}
	}
}

func TestChangeOrderRecalculateSignedDelta(t *testing.T) {
	change := &ChangeOrder{
		Lines: []ChangeOrderLine{
			{Concept: "Módulo extra", UnitPrice: 500000, Quantity: 1},
			{Concept: "Se retira catálogo", UnitPrice: -200000, Quantity: 1},
		},
	}
	change.Recalculate()
	assert.Equal(t, 300000, change.AmountDelta)
}

func TestAdjustedTotalClampsAtZero(t *testing.T) {
	order := &Order{
		Lines:      []OrderLine{{Concept: "Sitio", UnitPrice: 100000, Quantity: 1}},
		TaxPercent: 0,
	}
	order.Recalculate()

	order.Adjustments = -50000
	assert.Equal(t, Money(50000), order.AdjustedTotal())

	order.Adjustments = -900000
	assert.Equal(t, Money(0), order.AdjustedTotal())
}

func TestNewPercentBounds(t *testing.T) {
	_, err := NewPercent(-1)
	assert.Error(t, err)
	_, err = NewPercent(101)
	assert.Error(t, err)
	p, err := NewPercent(16)
	require.NoError(t, err)
	assert.Equal(t, 16.0, p.Float64())
}

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  cliente@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "cliente@example.com", email.String())

	empty, err := NewEmail("")
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())

	_, err = NewEmail("no-es-correo")
	assert.Error(t, err)
}
