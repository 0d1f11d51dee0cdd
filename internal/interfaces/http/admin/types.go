package admin

import (
	"time"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

type adminDiagnosticResponse struct {
	ID              string    `json:"id"`
	PublicToken     string    `json:"publicToken"`
	ContactName     string    `json:"contactName,omitempty"`
	ContactEmail    string    `json:"contactEmail,omitempty"`
	BusinessType    string    `json:"businessType"`
	DigitalMaturity string    `json:"digitalMaturity"`
	Goals           []string  `json:"goals,omitempty"`
	CompanySize     string    `json:"companySize"`
	AdditionalNeeds []string  `json:"additionalNeeds,omitempty"`
	Qualifies       bool      `json:"qualifies"`
	PrimarySolution string    `json:"primarySolution"`
	PrimaryScore    int       `json:"primaryScore"`
	Urgency         string    `json:"urgency"`
	LeadStatus      string    `json:"leadStatus"`
	AdminNotes      string    `json:"adminNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type adminDiagnosticListResponse struct {
	Items []adminDiagnosticResponse `json:"items"`
}

type updateLeadRequest struct {
	LeadStatus *string `json:"leadStatus"`
	AdminNotes *string `json:"adminNotes"`
}

type priceItemResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	UnitPrice   int       `json:"unitPrice"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type priceItemListResponse struct {
	Items []priceItemResponse `json:"items"`
}

type upsertPriceItemRequest struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	UnitPrice   int    `json:"unitPrice"`
	Currency    string `json:"currency"`
	Active      *bool  `json:"active"`
}

type orderLineRequest struct {
	PriceItemID string `json:"priceItemId"`
	Concept     string `json:"concept"`
	UnitPrice   *int   `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

type upsertOrderRequest struct {
	DiagnosticID    string             `json:"diagnosticId"`
	ClientName      string             `json:"clientName"`
	ClientEmail     string             `json:"clientEmail"`
	Lines           []orderLineRequest `json:"lines"`
	DiscountPercent float64            `json:"discountPercent"`
	TaxPercent      *float64           `json:"taxPercent"`
	LegalTemplateID string             `json:"legalTemplateId"`
	Notes           string             `json:"notes"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type orderLineResponse struct {
	PriceItemID string `json:"priceItemId,omitempty"`
	Concept     string `json:"concept"`
	UnitPrice   int    `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Amount      int    `json:"amount"`
}

type orderTotalsResponse struct {
	Subtotal      int `json:"subtotal"`
	Discount      int `json:"discount"`
	Tax           int `json:"tax"`
	Total         int `json:"total"`
	Adjustments   int `json:"adjustments"`
	AdjustedTotal int `json:"adjustedTotal"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	Folio           string              `json:"folio"`
	DiagnosticID    string              `json:"diagnosticId,omitempty"`
	ClientName      string              `json:"clientName"`
	ClientEmail     string              `json:"clientEmail,omitempty"`
	Lines           []orderLineResponse `json:"lines"`
	DiscountPercent float64             `json:"discountPercent"`
	TaxPercent      float64             `json:"taxPercent"`
	Status          string              `json:"status"`
	LegalTemplateID string              `json:"legalTemplateId,omitempty"`
	LegalText       string              `json:"legalText,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Totals          orderTotalsResponse `json:"totals"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type orderListResponse struct {
	Items []orderResponse `json:"items"`
}

type changeOrderLineRequest struct {
	Concept   string `json:"concept"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type upsertChangeOrderRequest struct {
	Description string                   `json:"description"`
	Lines       []changeOrderLineRequest `json:"lines"`
}

type changeOrderDecisionRequest struct {
	Decision string `json:"decision"`
}

type changeOrderLineResponse struct {
	Concept   string `json:"concept"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Amount    int    `json:"amount"`
}

type changeOrderResponse struct {
	ID          string                    `json:"id"`
	OrderID     string                    `json:"orderId"`
	Folio       string                    `json:"folio"`
	Description string                    `json:"description,omitempty"`
	Lines       []changeOrderLineResponse `json:"lines"`
	AmountDelta int                       `json:"amountDelta"`
	Status      string                    `json:"status"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

type changeOrderListResponse struct {
	Items []changeOrderResponse `json:"items"`
}

type upsertLegalTemplateRequest struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type legalTemplateResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type legalTemplateListResponse struct {
	Items []legalTemplateResponse `json:"items"`
}

type legalTemplateRenderRequest struct {
	Vars map[string]string `json:"vars"`
}

type legalTemplateRenderResponse struct {
	Rendered string `json:"rendered"`
}

func diagnosticDomainToResponse(diagnostic admindomain.Diagnostic) adminDiagnosticResponse {
	return adminDiagnosticResponse{
		ID:              diagnostic.ID,
		PublicToken:     diagnostic.PublicToken,
		ContactName:     diagnostic.ContactName,
		ContactEmail:    diagnostic.ContactEmail.String(),
		BusinessType:    diagnostic.BusinessType,
		DigitalMaturity: diagnostic.DigitalMaturity,
		Goals:           append([]string{}, diagnostic.Goals...),
		CompanySize:     diagnostic.CompanySize,
		AdditionalNeeds: append([]string{}, diagnostic.AdditionalNeeds...),
		Qualifies:       diagnostic.Qualifies,
		PrimarySolution: diagnostic.PrimarySolution,
		PrimaryScore:    diagnostic.PrimaryScore,
		Urgency:         diagnostic.Urgency,
		LeadStatus:      string(diagnostic.LeadStatus),
		AdminNotes:      diagnostic.AdminNotes,
		CreatedAt:       diagnostic.CreatedAt,
		UpdatedAt:       diagnostic.UpdatedAt,
	}
}

func priceItemDomainToResponse(item admindomain.PriceItem) priceItemResponse {
	return priceItemResponse{
		ID:          item.ID,
		Key:         item.Key,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		UnitPrice:   item.UnitPrice.Int(),
		Currency:    item.Currency,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func orderDomainToResponse(order admindomain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineResponse{
			PriceItemID: line.PriceItemID,
			Concept:     line.Concept,
			UnitPrice:   line.UnitPrice.Int(),
			Quantity:    line.Quantity,
			Amount:      line.Amount().Int(),
		})
	}

	return orderResponse{
		ID:              order.ID,
		Folio:           order.Folio,
		DiagnosticID:    order.DiagnosticID,
		ClientName:      order.ClientName,
		ClientEmail:     order.ClientEmail.String(),
		Lines:           lines,
		DiscountPercent: order.DiscountPercent.Float64(),
		TaxPercent:      order.TaxPercent.Float64(),
		Status:          string(order.Status),
		LegalTemplateID: order.LegalTemplateID,
		LegalText:       order.LegalText,
		Notes:           order.Notes,
		Totals: orderTotalsResponse{
			Subtotal:      order.Totals.Subtotal.Int(),
			Discount:      order.Totals.Discount.Int(),
			Tax:           order.Totals.Tax.Int(),
			Total:         order.Totals.Total.Int(),
			Adjustments:   order.Adjustments,
			AdjustedTotal: order.AdjustedTotal().Int(),
		},
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func changeOrderDomainToResponse(change admindomain.ChangeOrder) changeOrderResponse {
	lines := make([]changeOrderLineResponse, 0, len(change.Lines))
	for _, line := range change.Lines {
		lines = append(lines, changeOrderLineResponse{
			Concept:   line.Concept,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Amount:    line.Amount(),
		})
	}

	return changeOrderResponse{
		ID:          change.ID,
		OrderID:     change.OrderID,
		Folio:       change.Folio,
		Description: change.Description,
		Lines:       lines,
		AmountDelta: change.AmountDelta,
		Status:      string(change.Status),
		CreatedAt:   change.CreatedAt,
		UpdatedAt:   change.UpdatedAt,
	}
}

func legalTemplateDomainToResponse(template admindomain.LegalTemplate) legalTemplateResponse {
	return legalTemplateResponse{
		ID:        template.ID,
		Key:       template.Key,
		Title:     template.Title,
		Body:      template.Body,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}
