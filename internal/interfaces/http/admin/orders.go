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

func (h *Handler) orderListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := adminapp.OrderFilter{
			Status:       strings.TrimSpace(query.Get("status")),
			ClientName:   strings.TrimSpace(query.Get("client")),
			DiagnosticID: strings.TrimSpace(query.Get("diagnosticId")),
		}
		paging := adminapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 20)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := h.orderService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("admin order list fetch failed: %v", err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener la lista de órdenes")
			return
		}

		items := make([]orderResponse, 0, len(orders))
		for _, order := range orders {
			items = append(items, orderDomainToResponse(order))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, orderListResponse{Items: items})
	}
}

func (h *Handler) orderDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la orden no fue especificado")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := h.orderService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la orden no existe")
				return
			}
			h.logger.Printf("admin order detail fetch failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener la orden")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, orderDomainToResponse(*order))
	}
}

func (h *Handler) orderCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertOrderRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildOrderCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := h.orderService.Create(ctx, cmd)
		if err != nil {
			h.logger.Printf("admin order create failed client=%s err=%v", cmd.ClientName, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, orderDomainToResponse(*order))
	}
}

func (h *Handler) orderUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la orden no fue especificado")
			return
		}

		var req upsertOrderRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildOrderCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := h.orderService.Update(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la orden no existe")
				return
			}
			h.logger.Printf("admin order update failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, orderDomainToResponse(*order))
	}
}

func (h *Handler) orderStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la orden no fue especificado")
			return
		}

		var req orderStatusRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		status := strings.TrimSpace(req.Status)
		if status == "" {
			h.writeError(w, http.StatusBadRequest, "el estado destino es obligatorio")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := h.orderService.UpdateStatus(ctx, idParam, status)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la orden no existe")
				return
			}
			h.logger.Printf("admin order status update failed id=%s status=%s err=%v", idParam, status, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, orderDomainToResponse(*order))
	}
}
