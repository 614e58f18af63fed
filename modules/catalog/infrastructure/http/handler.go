// Package http provides HTTP handlers for the catalog module.
package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/internal/platform/httpserver"
	"github.com/rai/storefront-checkout-go/modules/catalog/application/queries"
	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

type Handler struct {
	getProduct   *queries.GetProductHandler
	listProducts *queries.ListProductsHandler
}

// RegisterRoutes registers the catalog module routes to the given router.
func RegisterRoutes(r chi.Router, getProduct *queries.GetProductHandler, listProducts *queries.ListProductsHandler) {
	h := &Handler{
		getProduct:   getProduct,
		listProducts: listProducts,
	}

	r.Get("/api/v1/products", h.handleListProducts)
	r.Get("/api/v1/products/{id}", h.handleGetProduct)
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.listProducts.Handle(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.getProduct.Handle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, product)
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		httpserver.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrInvalidID):
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpserver.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
