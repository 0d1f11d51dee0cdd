package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Money is an amount in MXN cents. Integer cents keep order arithmetic
// exact; only presentation layers format decimals.
type Money int

func NewMoney(value int) (Money, error) {
	if value < 0 {
		return 0, fmt.Errorf("money must be >= 0")
	}
	return Money(value), nil
}

func (m Money) Int() int {
	return int(m)
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}

// Percent is a 0..100 rate used for discounts and tax.
type Percent float64

func NewPercent(value float64) (Percent, error) {
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("percent must be between 0 and 100")
	}
	return Percent(value), nil
}

func (p Percent) Float64() float64 {
	return float64(p)
}

// OrderStatus follows the back-office workflow for quotes.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "borrador"
	OrderSent      OrderStatus = "enviada"
	OrderAccepted  OrderStatus = "aceptada"
	OrderCancelled OrderStatus = "cancelada"
)

func NewOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(strings.TrimSpace(value))
	switch status {
	case OrderDraft, OrderSent, OrderAccepted, OrderCancelled:
		return status, nil
	}
	return "", fmt.Errorf("invalid order status: %s", value)
}

// CanTransitionTo encodes the allowed workflow moves. Accepted and
// cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderDraft:
		return next == OrderSent || next == OrderCancelled
	case OrderSent:
		return next == OrderAccepted || next == OrderCancelled
	}
	return false
}

// ChangeOrderStatus tracks approval of a scope change.
type ChangeOrderStatus string

const (
	ChangePending  ChangeOrderStatus = "pendiente"
	ChangeApproved ChangeOrderStatus = "aprobada"
	ChangeRejected ChangeOrderStatus = "rechazada"
)

func NewChangeOrderStatus(value string) (ChangeOrderStatus, error) {
	status := ChangeOrderStatus(strings.TrimSpace(value))
	switch status {
	case ChangePending, ChangeApproved, ChangeRejected:
		return status, nil
	}
	return "", fmt.Errorf("invalid change order status: %s", value)
}

// LeadStatus is the follow-up state of a diagnostic submission.
type LeadStatus string

const (
	LeadNew       LeadStatus = "nuevo"
	LeadContacted LeadStatus = "contactado"
	LeadDiscarded LeadStatus = "descartado"
)

func NewLeadStatus(value string) (LeadStatus, error) {
	status := LeadStatus(strings.TrimSpace(value))
	switch status {
	case LeadNew, LeadContacted, LeadDiscarded:
		return status, nil
	}
	return "", fmt.Errorf("invalid lead status: %s", value)
}
