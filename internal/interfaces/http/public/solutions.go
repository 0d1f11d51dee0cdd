package public

import (
	"net/http"

	"github.com/solvia-mx/solvia-services/api/internal/interfaces/http/common"
	publicdomain "github.com/solvia-mx/solvia-services/api/internal/public/domain"
)

// solutionListHandler serves the static solution catalog the marketing
// site renders on its landing pages.
func (h *Handler) solutionListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		catalog := publicdomain.Catalog()
		items := make([]solutionResponse, 0, len(catalog))
		for _, solution := range catalog {
			items = append(items, buildSolutionResponse(solution))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, successResponse{
			Success: true,
			Data:    items,
		})
	}
}
