package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiagnosticDocument is the MongoDB schema for a quiz submission. Answers
// and the engine result are flattened into plain strings so both the
// public result page and the admin lead screens read the same document.
type DiagnosticDocument struct {
	ID              primitive.ObjectID       `bson:"_id"`
	PublicToken     string                   `bson:"publicToken"`
	ContactName     string                   `bson:"contactName,omitempty"`
	ContactEmail    string                   `bson:"contactEmail,omitempty"`
	BusinessType    string                   `bson:"businessType"`
	DigitalMaturity string                   `bson:"digitalMaturity"`
	Goals           []string                 `bson:"goals,omitempty"`
	CompanySize     string                   `bson:"companySize"`
	AdditionalNeeds []string                 `bson:"additionalNeeds,omitempty"`
	Result          DiagnosticResultDocument `bson:"result"`
	LeadStatus      string                   `bson:"leadStatus"`
	AdminNotes      string                   `bson:"adminNotes,omitempty"`
	CreatedAt       time.Time                `bson:"createdAt"`
	UpdatedAt       time.Time                `bson:"updatedAt"`
}

// DiagnosticResultDocument stores the engine output verbatim.
type DiagnosticResultDocument struct {
	Qualifies     bool                     `bson:"qualifies"`
	Primary       ScoredSolutionDocument   `bson:"primary"`
	Complementary []ScoredSolutionDocument `bson:"complementary,omitempty"`
	Message       MessageDocument          `bson:"message"`
	Urgency       string                   `bson:"urgency"`
	NextPrimary   NextStepDocument         `bson:"nextPrimary"`
	NextSecondary *NextStepDocument        `bson:"nextSecondary,omitempty"`
}

// ScoredSolutionDocument embeds the catalog snapshot at scoring time so
// results survive later catalog copy edits.
type ScoredSolutionDocument struct {
	SolutionID  string `bson:"solutionId"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	Icon        string `bson:"icon,omitempty"`
	Link        string `bson:"link,omitempty"`
	MatchScore  int    `bson:"matchScore"`
	Reason      string `bson:"reason,omitempty"`
}

// MessageDocument is the personalized copy block.
type MessageDocument struct {
	Title    string `bson:"title"`
	Subtitle string `bson:"subtitle"`
	Insight  string `bson:"insight"`
}

// NextStepDocument is one call-to-action.
type NextStepDocument struct {
	Text string `bson:"text"`
	Link string `bson:"link"`
}

// OrderDocument is the MongoDB schema for an order.
type OrderDocument struct {
	ID              primitive.ObjectID  `bson:"_id"`
	Folio           string              `bson:"folio"`
	DiagnosticID    string              `bson:"diagnosticId,omitempty"`
	ClientName      string              `bson:"clientName"`
	ClientEmail     string              `bson:"clientEmail,omitempty"`
	Lines           []OrderLineDocument `bson:"lines"`
	DiscountPercent float64             `bson:"discountPercent"`
	TaxPercent      float64             `bson:"taxPercent"`
	Status          string              `bson:"status"`
	LegalTemplateID string              `bson:"legalTemplateId,omitempty"`
	LegalText       string              `bson:"legalText,omitempty"`
	Notes           string              `bson:"notes,omitempty"`
	Totals          OrderTotalsDocument `bson:"totals"`
	Adjustments     int                 `bson:"adjustments"`
	CreatedAt       time.Time           `bson:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt"`
}

// OrderLineDocument is one billed concept with its frozen unit price.
type OrderLineDocument struct {
	PriceItemID string `bson:"priceItemId,omitempty"`
	Concept     string `bson:"concept"`
	UnitPrice   int    `bson:"unitPrice"`
	Quantity    int    `bson:"quantity"`
}

// OrderTotalsDocument persists the derived amounts in cents.
type OrderTotalsDocument struct {
	Subtotal int `bson:"subtotal"`
	Discount int `bson:"discount"`
	Tax      int `bson:"tax"`
	Total    int `bson:"total"`
}

// ChangeOrderDocument is the MongoDB schema for a change order.
type ChangeOrderDocument struct {
	ID          primitive.ObjectID        `bson:"_id"`
	OrderID     primitive.ObjectID        `bson:"orderId"`
	Folio       string                    `bson:"folio"`
	Description string                    `bson:"description"`
	Lines       []ChangeOrderLineDocument `bson:"lines"`
	AmountDelta int                       `bson:"amountDelta"`
	Status      string                    `bson:"status"`
	CreatedAt   time.Time                 `bson:"createdAt"`
	UpdatedAt   time.Time                 `bson:"updatedAt"`
}

// ChangeOrderLineDocument is one signed scope-change line.
type ChangeOrderLineDocument struct {
	Concept   string `bson:"concept"`
	UnitPrice int    `bson:"unitPrice"`
	Quantity  int    `bson:"quantity"`
}

// PriceItemDocument is the MongoDB schema for a pricing catalog entry.
type PriceItemDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Key         string             `bson:"key"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	UnitPrice   int                `bson:"unitPrice"`
	Currency    string             `bson:"currency"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// LegalTemplateDocument is the MongoDB schema for a legal text template.
type LegalTemplateDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Key       string             `bson:"key"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
