package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/solvia-mx/solvia-services/api/internal/admin/application"
	"github.com/solvia-mx/solvia-services/api/internal/interfaces/http/common"
)

func (h *Handler) diagnosticListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := adminapp.DiagnosticFilter{
			BusinessType: common.CanonicalBusinessType(query.Get("businessType")),
			LeadStatus:   strings.TrimSpace(query.Get("leadStatus")),
			Qualifies:    common.ParseOptionalBool(query.Get("qualifies")),
			Keyword:      strings.TrimSpace(query.Get("keyword")),
		}
		paging := adminapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 20)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		diagnostics, err := h.diagnosticService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("admin diagnostic list fetch failed: %v", err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener la lista de diagnósticos")
			return
		}

		items := make([]adminDiagnosticResponse, 0, len(diagnostics))
		for _, diagnostic := range diagnostics {
			items = append(items, diagnosticDomainToResponse(diagnostic))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminDiagnosticListResponse{Items: items})
	}
}

func (h *Handler) diagnosticDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del diagnóstico no fue especificado")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		diagnostic, err := h.diagnosticService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el diagnóstico no existe")
				return
			}
			h.logger.Printf("admin diagnostic detail fetch failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener el diagnóstico")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, diagnosticDomainToResponse(*diagnostic))
	}
}

func (h *Handler) diagnosticLeadUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del diagnóstico no fue especificado")
			return
		}

		var req updateLeadRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.LeadStatus == nil && req.AdminNotes == nil {
			h.writeError(w, http.StatusBadRequest, "no se indicó ningún cambio")
			return
		}

		cmd := adminapp.UpdateLeadCommand{}
		if req.LeadStatus != nil {
			cmd.LeadStatus = strings.TrimSpace(*req.LeadStatus)
		}
		if req.AdminNotes != nil {
			notes := strings.TrimSpace(*req.AdminNotes)
			if len([]rune(notes)) > common.MaxAdminNotesRunes {
				h.writeError(w, http.StatusBadRequest, "las notas exceden la longitud permitida")
				return
			}
			cmd.AdminNotes = &notes
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		diagnostic, err := h.diagnosticService.UpdateLead(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el diagnóstico no existe")
				return
			}
			h.logger.Printf("admin lead update failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, diagnosticDomainToResponse(*diagnostic))
	}
}
