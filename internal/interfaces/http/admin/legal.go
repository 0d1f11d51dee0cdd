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

func (h *Handler) legalTemplateListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := adminapp.LegalTemplateFilter{
			Keyword: strings.TrimSpace(query.Get("keyword")),
		}
		paging := adminapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 0)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := h.legalService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("admin legal template list fetch failed: %v", err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener la lista de plantillas")
			return
		}

		items := make([]legalTemplateResponse, 0, len(templates))
		for _, template := range templates {
			items = append(items, legalTemplateDomainToResponse(template))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, legalTemplateListResponse{Items: items})
	}
}

func (h *Handler) legalTemplateDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la plantilla no fue especificado")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		template, err := h.legalService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la plantilla no existe")
				return
			}
			h.logger.Printf("admin legal template detail fetch failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener la plantilla")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, legalTemplateDomainToResponse(*template))
	}
}

func (h *Handler) legalTemplateCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertLegalTemplateRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildLegalTemplateCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		template, err := h.legalService.Create(ctx, cmd)
		if err != nil {
			h.logger.Printf("admin legal template create failed key=%s err=%v", cmd.Key, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, legalTemplateDomainToResponse(*template))
	}
}

func (h *Handler) legalTemplateUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la plantilla no fue especificado")
			return
		}

		var req upsertLegalTemplateRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildLegalTemplateCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		template, err := h.legalService.Update(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la plantilla no existe")
				return
			}
			h.logger.Printf("admin legal template update failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, legalTemplateDomainToResponse(*template))
	}
}

func (h *Handler) legalTemplateRenderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la plantilla no fue especificado")
			return
		}

		var req legalTemplateRenderRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rendered, err := h.legalService.Render(ctx, idParam, req.Vars)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la plantilla no existe")
				return
			}
			h.logger.Printf("admin legal template render failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo generar la vista previa")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, legalTemplateRenderResponse{Rendered: rendered})
	}
}
