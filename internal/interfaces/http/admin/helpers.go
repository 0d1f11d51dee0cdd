package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"

	adminapp "github.com/solvia-mx/solvia-services/api/internal/admin/application"
	"github.com/solvia-mx/solvia-services/api/internal/interfaces/http/common"
)

// decodeBody reads a size-limited JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(dst); err != nil {
		return errors.New("el formato de la solicitud no es válido")
	}
	return nil
}

// writeError emits the admin error envelope.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	common.WriteJSON(h.logger, w, status, map[string]string{"error": message})
}

// normalizeEmail trims and validates an email; empty passes through.
func normalizeEmail(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", errors.New("el correo no puede exceder 254 caracteres")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", errors.New("el formato del correo no es válido")
	}
	return trimmed, nil
}

// validatePercent keeps discount and tax rates inside 0..100.
func validatePercent(value float64, label string) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%s debe estar entre 0 y 100", label)
	}
	return nil
}

// buildOrderCommand validates an order payload and converts it into the
// application command. Totals are never read from the request.
func buildOrderCommand(req upsertOrderRequest) (adminapp.UpsertOrderCommand, error) {
	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		return adminapp.UpsertOrderCommand{}, errors.New("el nombre del cliente es obligatorio")
	}
	if len(req.Lines) == 0 {
		return adminapp.UpsertOrderCommand{}, errors.New("la orden necesita al menos una partida")
	}
	if len(req.Lines) > common.MaxOrderLineCount {
		return adminapp.UpsertOrderCommand{}, fmt.Errorf("la orden no puede exceder %d partidas", common.MaxOrderLineCount)
	}
	if err := validatePercent(req.DiscountPercent, "el descuento"); err != nil {
		return adminapp.UpsertOrderCommand{}, err
	}
	if req.TaxPercent != nil {
		if err := validatePercent(*req.TaxPercent, "el IVA"); err != nil {
			return adminapp.UpsertOrderCommand{}, err
		}
	}

	email, err := normalizeEmail(req.ClientEmail)
	if err != nil {
		return adminapp.UpsertOrderCommand{}, err
	}

	lines := make([]adminapp.OrderLineCommand, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return adminapp.UpsertOrderCommand{}, errors.New("cada partida necesita una cantidad mayor a cero")
		}
		if line.UnitPrice != nil && *line.UnitPrice < 0 {
			return adminapp.UpsertOrderCommand{}, errors.New("el precio unitario no puede ser negativo")
		}
		lines = append(lines, adminapp.OrderLineCommand{
			PriceItemID: strings.TrimSpace(line.PriceItemID),
			Concept:     strings.TrimSpace(line.Concept),
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		})
	}

	return adminapp.UpsertOrderCommand{
		DiagnosticID:    strings.TrimSpace(req.DiagnosticID),
		ClientName:      clientName,
		ClientEmail:     email,
		Lines:           lines,
		DiscountPercent: req.DiscountPercent,
		TaxPercent:      req.TaxPercent,
		LegalTemplateID: strings.TrimSpace(req.LegalTemplateID),
		Notes:           strings.TrimSpace(req.Notes),
	}, nil
}

// buildChangeOrderCommand validates a change-order payload. Negative unit
// prices are legal: they express scope reductions.
func buildChangeOrderCommand(req upsertChangeOrderRequest) (adminapp.UpsertChangeOrderCommand, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return adminapp.UpsertChangeOrderCommand{}, errors.New("la descripción del cambio es obligatoria")
	}
	if len(req.Lines) == 0 {
		return adminapp.UpsertChangeOrderCommand{}, errors.New("el cambio necesita al menos una partida")
	}
	if len(req.Lines) > common.MaxOrderLineCount {
		return adminapp.UpsertChangeOrderCommand{}, fmt.Errorf("el cambio no puede exceder %d partidas", common.MaxOrderLineCount)
	}

	lines := make([]adminapp.ChangeOrderLineCommand, 0, len(req.Lines))
	for _, line := range req.Lines {
		concept := strings.TrimSpace(line.Concept)
		if concept == "" {
			return adminapp.UpsertChangeOrderCommand{}, errors.New("cada partida del cambio necesita un concepto")
		}
		if line.Quantity <= 0 {
			return adminapp.UpsertChangeOrderCommand{}, errors.New("cada partida del cambio necesita una cantidad mayor a cero")
		}
		lines = append(lines, adminapp.ChangeOrderLineCommand{
			Concept:   concept,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return adminapp.UpsertChangeOrderCommand{
		Description: description,
		Lines:       lines,
	}, nil
}

// buildPriceItemCommand validates a pricing catalog payload.
func buildPriceItemCommand(req upsertPriceItemRequest) (adminapp.UpsertPriceItemCommand, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return adminapp.UpsertPriceItemCommand{}, errors.New("la clave del concepto es obligatoria")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return adminapp.UpsertPriceItemCommand{}, errors.New("el nombre del concepto es obligatorio")
	}
	if req.UnitPrice < 0 {
		return adminapp.UpsertPriceItemCommand{}, errors.New("el precio unitario no puede ser negativo")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "MXN"
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return adminapp.UpsertPriceItemCommand{
		Key:         key,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		UnitPrice:   req.UnitPrice,
		Currency:    currency,
		Active:      active,
	}, nil
}

// buildLegalTemplateCommand validates a legal template payload.
func buildLegalTemplateCommand(req upsertLegalTemplateRequest) (adminapp.UpsertLegalTemplateCommand, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return adminapp.UpsertLegalTemplateCommand{}, errors.New("la clave de la plantilla es obligatoria")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return adminapp.UpsertLegalTemplateCommand{}, errors.New("el título de la plantilla es obligatorio")
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return adminapp.UpsertLegalTemplateCommand{}, errors.New("el cuerpo de la plantilla es obligatorio")
	}
	if len([]rune(body)) > common.MaxLegalBodyRunes {
		return adminapp.UpsertLegalTemplateCommand{}, fmt.Errorf("el cuerpo no puede exceder %d caracteres", common.MaxLegalBodyRunes)
	}

	return adminapp.UpsertLegalTemplateCommand{
		Key:   key,
		Title: title,
		Body:  body,
	}, nil
}
