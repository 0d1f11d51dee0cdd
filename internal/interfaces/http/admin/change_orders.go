package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solvia-mx/solvia-services/api/internal/interfaces/http/common"
)

func (h *Handler) changeOrderListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := strings.TrimSpace(chi.URLParam(r, "id"))
		if orderID == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la orden no fue especificado")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		changes, err := h.changeOrderService.ListByOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la orden no existe")
				return
			}
			h.logger.Printf("admin change order list fetch failed orderId=%s err=%v", orderID, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener la lista de cambios")
			return
		}

		items := make([]changeOrderResponse, 0, len(changes))
		for _, change := range changes {
			items = append(items, changeOrderDomainToResponse(change))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, changeOrderListResponse{Items: items})
	}
}

func (h *Handler) changeOrderDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del cambio no fue especificado")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		change, err := h.changeOrderService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el cambio no existe")
				return
			}
			h.logger.Printf("admin change order detail fetch failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusInternalServerError, "no se pudo obtener el cambio")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, changeOrderDomainToResponse(*change))
	}
}

func (h *Handler) changeOrderCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := strings.TrimSpace(chi.URLParam(r, "id"))
		if orderID == "" {
			h.writeError(w, http.StatusBadRequest, "el id de la orden no fue especificado")
			return
		}

		var req upsertChangeOrderRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildChangeOrderCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		change, err := h.changeOrderService.Create(ctx, orderID, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "la orden no existe")
				return
			}
			h.logger.Printf("admin change order create failed orderId=%s err=%v", orderID, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, changeOrderDomainToResponse(*change))
	}
}

func (h *Handler) changeOrderUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del cambio no fue especificado")
			return
		}

		var req upsertChangeOrderRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		cmd, err := buildChangeOrderCommand(req)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		change, err := h.changeOrderService.Update(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el cambio no existe")
				return
			}
			h.logger.Printf("admin change order update failed id=%s err=%v", idParam, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, changeOrderDomainToResponse(*change))
	}
}

func (h *Handler) changeOrderDecisionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			h.writeError(w, http.StatusBadRequest, "el id del cambio no fue especificado")
			return
		}

		var req changeOrderDecisionRequest
		if err := decodeBody(r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var approve bool
		switch strings.TrimSpace(req.Decision) {
		case "aprobar":
			approve = true
		case "rechazar":
			approve = false
		default:
			h.writeError(w, http.StatusBadRequest, "la decisión debe ser aprobar o rechazar")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		change, err := h.changeOrderService.Decide(ctx, idParam, approve)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.writeError(w, http.StatusNotFound, "el cambio no existe")
				return
			}
			h.logger.Printf("admin change order decision failed id=%s approve=%t err=%v", idParam, approve, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, changeOrderDomainToResponse(*change))
	}
}
