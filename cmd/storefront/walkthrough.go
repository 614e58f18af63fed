package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rai/storefront-checkout-go/internal/platform/config"
	"github.com/rai/storefront-checkout-go/modules/checkout/application"
	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
)

var ErrOrderNotPlaced = errors.New("order was not placed")

// walkthroughInput is what the scripted customer types.
type walkthroughInput struct {
	Items   int
	Payment string
	Address string
	Email   string
	Phone   string
}

var walkthrough = walkthroughInput{}

var walkthroughCmd = &cobra.Command{
	Use:   "walkthrough",
	Short: "Fill a basket and run one checkout, printing every form state",
	Long: `Loads the catalog, puts the first priced products into the basket
and goes through both checkout steps as a customer would. Every view
model the form receives is printed.`,
	RunE: runWalkthrough,
}

func init() {
	f := walkthroughCmd.Flags()
	f.IntVar(&walkthrough.Items, "items", 2, "Number of priced products to buy")
	f.StringVar(&walkthrough.Payment, "payment", "card", "Payment method: card or cash")
	f.StringVar(&walkthrough.Address, "address", "221B Baker Street", "Delivery address")
	f.StringVar(&walkthrough.Email, "email", "customer@example.com", "Contact email")
	f.StringVar(&walkthrough.Phone, "phone", "+7 (999) 123-45-67", "Contact phone")
}

func runWalkthrough(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return runScript(cmd.Context(), cfg, logger, cmd.OutOrStdout(), walkthrough)
}

func runScript(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer, in walkthroughInput) error {
	a, err := newApp(cfg, logger, appOptions{Renderer: textRenderer(out)})
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.catalog.Load(ctx); err != nil {
		return err
	}
	if err := fillBasket(ctx, a, in.Items); err != nil {
		return err
	}

	if err := driveCheckout(ctx, a, in); err != nil {
		return err
	}

	vm := a.checkout.ViewModel()
	if vm.LastOrder == nil {
		return fmt.Errorf("%w: %s", ErrOrderNotPlaced, vm.Errors)
	}
	fmt.Fprintf(out, "order %s placed, charged %s\n", vm.LastOrder.ID, vm.LastOrder.Total)
	return nil
}

// driveCheckout types the input into both steps and submits each.
func driveCheckout(ctx context.Context, a *app, in walkthroughInput) error {
	form := a.checkout.Form()
	steps := []func() error{
		func() error { return form.Start(ctx) },
		func() error { return form.Input(ctx, domain.FieldPayment.String(), in.Payment) },
		func() error { return form.Input(ctx, domain.FieldAddress.String(), in.Address) },
		func() error { return form.Submit(ctx) },
		func() error { return form.Input(ctx, domain.FieldEmail.String(), in.Email) },
		func() error { return form.Input(ctx, domain.FieldPhone.String(), in.Phone) },
		func() error { return form.Submit(ctx) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// fillBasket adds the first n priced products of the catalog.
func fillBasket(ctx context.Context, a *app, n int) error {
	products, err := a.catalog.Products(ctx)
	if err != nil {
		return err
	}
	added := 0
	for _, p := range products.Items {
		if added == n {
			break
		}
		if !p.Buyable {
			continue
		}
		if err := a.basket.Add(ctx, p.ID); err != nil {
			return fmt.Errorf("adding %s: %w", p.Title, err)
		}
		added++
	}
	return nil
}

// textRenderer prints one line per view model.
func textRenderer(w io.Writer) application.Renderer {
	return application.RendererFunc(func(vm application.ViewModel) {
		keys := make([]string, 0, len(vm.Values))
		for k := range vm.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, fmt.Sprintf("%s=%q", k, vm.Values[k]))
		}

		button := "disabled"
		if vm.SubmitEnabled {
			button = "enabled"
		}
		fmt.Fprintf(w, "[%s] %s (%s) %s", vm.StepName, vm.SubmitLabel, button, strings.Join(fields, " "))
		if vm.Errors != "" {
			fmt.Fprintf(w, " errors=%q", vm.Errors)
		}
		fmt.Fprintln(w)
	})
}
