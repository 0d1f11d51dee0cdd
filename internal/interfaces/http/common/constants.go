package common

const (
	// MaxRequestBody limits JSON request bodies for diagnostic/admin endpoints.
	MaxRequestBody = 1 << 20
	// MaxAdminNotesRunes limits lead follow-up notes length to keep payloads sane.
	MaxAdminNotesRunes = 2000
	// MaxOrderLineCount limits the number of lines an order or change order accepts.
	MaxOrderLineCount = 50
	// MaxLegalBodyRunes limits legal template body length.
	MaxLegalBodyRunes = 20000
)
