// Package view renders the checkout form from embedded HTML templates and
// turns user input into bus events.
package view

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/rai/storefront-checkout-go/modules/checkout/application"
	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

// ErrTemplateMissing is returned when a required template fragment is absent.
var ErrTemplateMissing = errors.New("checkout template missing")

const (
	orderStepTemplate    = "order_step.html"
	contactsStepTemplate = "contacts_step.html"
	successTemplate      = "success.html"
	actionsTemplate      = "actions"
)

var requiredTemplates = []string{orderStepTemplate, contactsStepTemplate, successTemplate, actionsTemplate}

//go:embed templates/*.html
var embedded embed.FS

var paymentLabels = map[domain.PaymentMethod]string{
	domain.PaymentCard: "Online",
	domain.PaymentCash: "On delivery",
}

// FormView keeps the latest view model and renders it on demand.
type FormView struct {
	publisher events.Publisher
	tmpl      *template.Template
	vm        application.ViewModel
	renders   int
}

// New builds the view from the embedded templates.
func New(publisher events.Publisher) (*FormView, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return NewFromFS(publisher, sub)
}

// NewFromFS builds the view from the *.html files at the root of fsys.
func NewFromFS(publisher events.Publisher, fsys fs.FS) (*FormView, error) {
	tmpl, err := template.New("checkout").
		Funcs(template.FuncMap{"paymentLabel": paymentLabel}).
		ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}
	for _, name := range requiredTemplates {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, name)
		}
	}
	return &FormView{publisher: publisher, tmpl: tmpl}, nil
}

// Render implements application.Renderer.
func (v *FormView) Render(vm application.ViewModel) {
	v.vm = vm
	v.renders++
}

// ViewModel returns the last rendered view model.
func (v *FormView) ViewModel() application.ViewModel { return v.vm }

// Renders counts the view models received so far.
func (v *FormView) Renders() int { return v.renders }

// WriteHTML renders the active screen: the success message after a placed
// order, otherwise the fragment of the active step.
func (v *FormView) WriteHTML(w io.Writer) error {
	name := orderStepTemplate
	switch {
	case v.vm.LastOrder != nil:
		name = successTemplate
	case v.vm.Step == domain.Step2:
		name = contactsStepTemplate
	}
	if err := v.tmpl.ExecuteTemplate(w, name, v.vm); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// User input

func (v *FormView) Start(ctx context.Context) error {
	return v.publisher.Publish(ctx, domain.NewCheckoutStartedEvent())
}

// Input forwards raw text typed into the field named key.
func (v *FormView) Input(ctx context.Context, key, value string) error {
	return v.publisher.Publish(ctx, domain.NewOrderFieldChangedEvent(key, value))
}

func (v *FormView) SelectPayment(ctx context.Context, method domain.PaymentMethod) error {
	return v.Input(ctx, domain.FieldPayment.String(), method.String())
}

func (v *FormView) SelectStep(ctx context.Context, step int) error {
	return v.publisher.Publish(ctx, domain.NewStepChangedEvent(domain.Step(step)))
}

func (v *FormView) Submit(ctx context.Context) error {
	return v.publisher.Publish(ctx, domain.NewSubmitRequestedEvent())
}

func paymentLabel(m domain.PaymentMethod) string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return m.String()
}

var _ application.Renderer = (*FormView)(nil)
