package application

import (
	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// ViewModel is an immutable snapshot of everything the checkout form shows.
type ViewModel struct {
	Step          domain.Step       `json:"step"`
	StepName      string            `json:"step_name"`
	SubmitLabel   string            `json:"submit_label"`
	SubmitEnabled bool              `json:"submit_enabled"`
	Pending       bool              `json:"pending"`
	Errors        string            `json:"errors"`
	Values        map[string]string `json:"values"`
	Payment       []PaymentOption   `json:"payment"`
	LastOrder     *PlacedOrder      `json:"last_order,omitempty"`
}

// PaymentOption is one payment button. At most one option is selected.
type PaymentOption struct {
	Method   domain.PaymentMethod `json:"method"`
	Selected bool                 `json:"selected"`
}

// PlacedOrder is shown on the success screen.
type PlacedOrder struct {
	ID    string      `json:"id"`
	Total types.Money `json:"total"`
}

// Renderer receives every new view model.
type Renderer interface {
	Render(vm ViewModel)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(vm ViewModel)

func (f RendererFunc) Render(vm ViewModel) { f(vm) }

// Renderers fans a view model out to several renderers in order.
type Renderers []Renderer

func (rs Renderers) Render(vm ViewModel) {
	for _, r := range rs {
		if r != nil {
			r.Render(vm)
		}
	}
}
