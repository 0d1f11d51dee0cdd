package domain

import (
	"fmt"
	"math"
	"time"
)

// OrderLine is one billed concept. UnitPrice is frozen at the moment the
// line is added so later catalog edits never rewrite past orders.
type OrderLine struct {
	PriceItemID string
	Concept     string
	UnitPrice   Money
	Quantity    int
}

// Amount is the line total.
func (l OrderLine) Amount() Money {
	return Money(int(l.UnitPrice) * l.Quantity)
}

// OrderTotals carries the derived amounts; always recomputed server-side,
// never trusted from a request.
type OrderTotals struct {
	Subtotal Money
	Discount Money
	Tax      Money
	Total    Money
}

// Order is a priced proposal for a prospect, optionally linked to the
// diagnostic that originated it.
type Order struct {
	ID              string
	Folio           string
	DiagnosticID    string
	ClientName      string
	ClientEmail     Email
	Lines           []OrderLine
	DiscountPercent Percent
	TaxPercent      Percent
	Status          OrderStatus
	LegalTemplateID string
	LegalText       string
	Notes           string
	Totals          OrderTotals
	Adjustments     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CalculateTotals applies the discount to the subtotal and taxes the
// remainder. Percent math rounds half away from zero to the nearest cent.
func CalculateTotals(lines []OrderLine, discount, tax Percent) OrderTotals {
	subtotal := Money(0)
	for _, line := range lines {
		subtotal += line.Amount()
	}
	discountAmount := roundPercent(subtotal, discount)
	taxable := subtotal - discountAmount
	taxAmount := roundPercent(taxable, tax)
	return OrderTotals{
		Subtotal: subtotal,
		Discount: discountAmount,
		Tax:      taxAmount,
		Total:    taxable + taxAmount,
	}
}

func roundPercent(amount Money, rate Percent) Money {
	return Money(math.Round(float64(amount) * rate.Float64() / 100))
}

// Recalculate refreshes the derived totals from the current lines.
func (o *Order) Recalculate() {
	o.Totals = CalculateTotals(o.Lines, o.DiscountPercent, o.TaxPercent)
}

// AdjustedTotal is the order total plus every approved change-order delta.
// Deltas may be negative; the adjusted total never reports below zero.
func (o *Order) AdjustedTotal() Money {
	adjusted := int(o.Totals.Total) + o.Adjustments
	if adjusted < 0 {
		adjusted = 0
	}
	return Money(adjusted)
}

// Transition moves the order along the workflow, rejecting moves the
// status machine does not allow.
func (o *Order) Transition(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("la orden no puede pasar de %s a %s", o.Status, next)
	}
	o.Status = next
	return nil
}
