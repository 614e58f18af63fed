// Package http provides HTTP handlers for the checkout module.
package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/internal/platform/httpserver"
	"github.com/rai/storefront-checkout-go/modules/checkout/application"
	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
)

// Form is the input and output surface of the checkout form.
type Form interface {
	Start(ctx context.Context) error
	Input(ctx context.Context, key, value string) error
	SelectStep(ctx context.Context, step int) error
	Submit(ctx context.Context) error
	ViewModel() application.ViewModel
	WriteHTML(w io.Writer) error
}

type Handler struct {
	form Form
}

// RegisterRoutes registers the checkout module routes to the given router.
func RegisterRoutes(r chi.Router, form Form) {
	h := &Handler{form: form}

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Post("/start", h.handleStart)
		r.Patch("/fields", h.handleUpdateFields)
		r.Put("/step", h.handleSetStep)
		r.Post("/submit", h.handleSubmit)
	})
	r.Get("/checkout", h.handleHTML)
}

// Request DTOs

type setStepRequest struct {
	Step int `json:"step"`
}

// Handlers

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	httpserver.WriteJSON(w, http.StatusOK, h.form.ViewModel())
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	if err := h.form.Start(r.Context()); err != nil {
		handleError(w, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, h.form.ViewModel())
}

// handleUpdateFields accepts an object of field name to raw value. Fields
// are applied in display order.
func (h *Handler) handleUpdateFields(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for key := range req {
		if _, err := domain.ParseField(key); err != nil {
			httpserver.WriteError(w, http.StatusUnprocessableEntity, "unknown field: "+key)
			return
		}
	}

	for _, f := range domain.Fields {
		value, ok := req[f.String()]
		if !ok {
			continue
		}
		if err := h.form.Input(r.Context(), f.String(), value); err != nil {
			handleError(w, err)
			return
		}
	}
	httpserver.WriteJSON(w, http.StatusOK, h.form.ViewModel())
}

func (h *Handler) handleSetStep(w http.ResponseWriter, r *http.Request) {
	var req setStepRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := domain.ParseStep(req.Step); err != nil {
		handleError(w, err)
		return
	}
	if err := h.form.SelectStep(r.Context(), req.Step); err != nil {
		handleError(w, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, h.form.ViewModel())
}

// handleSubmit presses the submit control. A refused submit still answers
// 200; the view model carries the errors.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := h.form.Submit(r.Context()); err != nil {
		handleError(w, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, h.form.ViewModel())
}

func (h *Handler) handleHTML(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.form.WriteHTML(&buf); err != nil {
		handleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidStep):
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownField):
		httpserver.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrSubmissionInFlight):
		httpserver.WriteError(w, http.StatusConflict, err.Error())
	default:
		if status := httpserver.ContextStatus(err); status != 0 {
			httpserver.WriteError(w, status, err.Error())
			return
		}
		httpserver.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
