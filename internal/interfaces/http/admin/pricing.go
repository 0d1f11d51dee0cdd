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

func (h *Handler) priceItemListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := adminapp.PriceItemFilter{
			Category:   strings.TrimSpace(query.Get("category")),
			Keyword:    strings.TrimSpace(query.Get("keyword")),
			ActiveOnly: strings.EqualFold(strings.TrimSpace(query.Get("active")), "true"),
		}
		paging := adminapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 0)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := h.pricingService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("admin price item list fetch failed: %v", err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener el catálogo de precios")
			return
		}

		responses := make([]priceItemResponse, 0, len(items))
		for _, item := range items {
			responses = append(responses, priceItemDomainToResponse(item))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, priceItemListResponse{Items: responses})
	}
}

func (h *Handler) priceItemDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del concepto no fue especificado")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := h.pricingService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el concepto no existe")
				return
			}
			h.logger.Printf("admin price item detail fetch failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener el concepto")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, priceItemDomainToResponse(*item))
	}
}

func (h *Handler) priceItemCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPriceItemRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildPriceItemCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := h.pricingService.Create(ctx, cmd)
		if err != nil {
			h.logger.Printf("admin price item create failed key=%s err=%v", cmd.Key, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, priceItemDomainToResponse(*item))
	}
}

func (h *Handler) priceItemUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del concepto no fue especificado")
			return
		}

		var req upsertPriceItemRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildPriceItemCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := h.pricingService.Update(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el concepto no existe")
				return
			}
			h.logger.Printf("admin price item update failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, priceItemDomainToResponse(*item))
	}
}
