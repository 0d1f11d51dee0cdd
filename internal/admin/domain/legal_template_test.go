package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalTemplateRender(t *testing.T) {
	template := LegalTemplate{
		Body: "El cliente {{cliente}} acepta la orden {{folio}} por un total de {{total}}.",
	}

	rendered := template.Render(map[string]string{
		"cliente": "Taquería El Paso",
		"folio":   "ORD-3F2A91",
		"total":   "$20,880.00 MXN",
	})

	assert.Equal(t, "El cliente Taquería El Paso acepta la orden ORD-3F2A91 por un total de $20,880.00 MXN.", rendered)
}

func TestLegalTemplateRenderKeepsUnknownPlaceholders(t *testing.T) {
	template := LegalTemplate{Body: "Vigencia: {{vigencia}} días para {{cliente}}."}

	rendered := template.Render(map[string]string{"cliente": "Refaccionaria Luna"})

	assert.Equal(t, "Vigencia: {{vigencia}} días para Refaccionaria Luna.", rendered)
}

func TestLegalTemplateRenderNoVars(t *testing.T) {
	template := LegalTemplate{Body: "Texto fijo sin marcadores."}
	assert.Equal(t, template.Body, template.Render(nil))
}
