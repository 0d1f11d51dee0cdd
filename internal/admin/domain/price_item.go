package domain

import "time"

// PriceItem is one sellable concept in the pricing catalog. Key is the
// stable slug orders reference; inactive items stay resolvable for old
// orders but are hidden from pickers.
type PriceItem struct {
	ID          string
	Key         string
	Name        string
	Description string
	Category    string
	UnitPrice   Money
	Currency    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
