// Package http provides HTTP handlers for the basket module.
package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/internal/platform/httpserver"
	"github.com/rai/storefront-checkout-go/modules/basket/application/commands"
	"github.com/rai/storefront-checkout-go/modules/basket/application/queries"
	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

type Handler struct {
	addItem    *commands.AddItemHandler
	removeItem *commands.RemoveItemHandler
	getBasket  *queries.GetBasketHandler
}

// RegisterRoutes registers the basket module routes to the given router.
func RegisterRoutes(
	r chi.Router,
	addItem *commands.AddItemHandler,
	removeItem *commands.RemoveItemHandler,
	getBasket *queries.GetBasketHandler,
) {
	h := &Handler{
		addItem:    addItem,
		removeItem: removeItem,
		getBasket:  getBasket,
	}

	r.Route("/api/v1/basket", func(r chi.Router) {
		r.Get("/", h.handleGetBasket)
		r.Post("/items", h.handleAddItem)
		r.Delete("/items/{productID}", h.handleRemoveItem)
	})
}

// Request DTOs

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

// Handlers

func (h *Handler) handleGetBasket(w http.ResponseWriter, r *http.Request) {
	h.writeBasket(w, r, http.StatusOK)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.addItem.Handle(r.Context(), commands.AddItemCommand{ProductID: req.ProductID}); err != nil {
		handleError(w, err)
		return
	}
	h.writeBasket(w, r, http.StatusCreated)
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	cmd := commands.RemoveItemCommand{ProductID: chi.URLParam(r, "productID")}
	if err := h.removeItem.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	h.writeBasket(w, r, http.StatusOK)
}

func (h *Handler) writeBasket(w http.ResponseWriter, r *http.Request, status int) {
	basket, err := h.getBasket.Handle(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	httpserver.WriteJSON(w, status, basket)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidID):
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrItemNotFound):
		httpserver.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyInBasket):
		httpserver.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPriceless):
		httpserver.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		httpserver.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
