// Package http provides HTTP handlers for the orders module.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/internal/platform/httpserver"
	"github.com/rai/storefront-checkout-go/modules/orders/application/queries"
	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

type Handler struct {
	getOrder   *queries.GetOrderHandler
	listOrders *queries.ListOrdersHandler
}

// RegisterRoutes registers the orders module routes to the given router.
func RegisterRoutes(r chi.Router, getOrder *queries.GetOrderHandler, listOrders *queries.ListOrdersHandler) {
	h := &Handler{
		getOrder:   getOrder,
		listOrders: listOrders,
	}

	r.Get("/api/v1/orders", h.handleListOrders)
	r.Get("/api/v1/orders/{id}", h.handleGetOrder)
}

// Handlers

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	query := queries.GetOrderQuery{OrderID: chi.URLParam(r, "id")}
	order, err := h.getOrder.Handle(r.Context(), query)
	if err != nil {
		handleError(w, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.listOrders.Handle(r.Context(), queries.ListOrdersQuery{Offset: offset, Limit: limit})
	if err != nil {
		handleError(w, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, result)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		httpserver.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrInvalidID):
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpserver.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
