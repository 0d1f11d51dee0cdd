package domain

import "time"

// ChangeOrderLine is one signed scope change; negative unit prices express
// reductions.
type ChangeOrderLine struct {
	Concept   string
	UnitPrice int
	Quantity  int
}

// Amount is the signed line total in cents.
func (l ChangeOrderLine) Amount() int {
	return l.UnitPrice * l.Quantity
}

// ChangeOrder records a scope adjustment against an existing order. The
// delta only touches the parent order once the change is approved.
type ChangeOrder struct {
	ID          string
	OrderID     string
	Folio       string
	Description string
	Lines       []ChangeOrderLine
	AmountDelta int
	Status      ChangeOrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Recalculate refreshes the signed delta from the lines.
func (c *ChangeOrder) Recalculate() {
	delta := 0
	for _, line := range c.Lines {
		delta += line.Amount()
	}
	c.AmountDelta = delta
}

// Decided reports whether the change has left the pending state.
func (c *ChangeOrder) Decided() bool {
	return c.Status != ChangePending
}
