package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/config"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/storefront"
)

// OrderFile is a scripted order. Either Custom or Items is used; with Custom
// set the order is a direct custom-image purchase and Items are ignored.
type OrderFile struct {
	Customer CustomerSection `yaml:"customer"`
	Items    []OrderItem     `yaml:"items"`
	Custom   *CustomItem     `yaml:"custom"`
}

type CustomerSection struct {
	FullName  string   `yaml:"full_name"`
	Phone     string   `yaml:"phone"`
	WhatsApp  string   `yaml:"whatsapp"`
	Address   string   `yaml:"address"`
	ZipCode   string   `yaml:"zip_code"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	City      string   `yaml:"city"`
	State     string   `yaml:"state"`
}

func (c CustomerSection) details() storefront.CustomerDetails {
	return storefront.CustomerDetails{
		FullName:  c.FullName,
		Phone:     c.Phone,
		WhatsApp:  c.WhatsApp,
		Address:   c.Address,
		ZipCode:   c.ZipCode,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		City:      c.City,
		State:     c.State,
	}
}

type OrderItem struct {
	PaintingID string `yaml:"painting_id"`
	Size       string `yaml:"size"`
	Frame      string `yaml:"frame"`
}

type CustomItem struct {
	Image string `yaml:"image"`
	Size  string `yaml:"size"`
	Frame string `yaml:"frame"`
}

func LoadOrderFile(path string) (*OrderFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}

	var f OrderFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse order file %s: %w", path, err)
	}
	if f.Custom == nil && len(f.Items) == 0 {
		return nil, errors.New("order file has neither items nor a custom painting")
	}
	return &f, nil
}

func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "order <order.yaml>",
		Short: "Place an order from a file and emit its WhatsApp links",
		Long: `Walk an order file through the storefront flow and emit the resulting
WhatsApp links: the order message, then the custom image notice when the order
has a custom painting. Links are printed, or opened with --open.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := setupLogging(cmd.ErrOrStderr(), rootOpts, cfg.App.LogLevel); err != nil {
				return err
			}

			order, err := LoadOrderFile(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, 1)
			if err != nil {
				return err
			}
			defer a.Close()

			links, err := placeOrder(cmd.Context(), a.storefront, order)
			if err != nil {
				return err
			}
			return messaging.Dispatch(cmd.Context(), opener(cmd, open), links)
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "open the links instead of printing them")
	return cmd
}

// placeOrder drives a fresh session through the same actions a shopper would
// take and submits it.
func placeOrder(ctx context.Context, svc storefront.Service, order *OrderFile) ([]messaging.Link, error) {
	id, _, err := svc.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := svc.CompleteSplash(ctx, id); err != nil {
		return nil, err
	}

	if order.Custom != nil {
		if _, err := svc.Navigate(ctx, id, storefront.ScreenCustom); err != nil {
			return nil, err
		}
		if _, err := svc.ProceedFromCustom(ctx, id, order.Custom.Image, order.Custom.Size, order.Custom.Frame); err != nil {
			return nil, fmt.Errorf("custom painting: %w", err)
		}
	} else {
		for i, item := range order.Items {
			if _, err := svc.SelectPainting(ctx, id, item.PaintingID); err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			if _, err := svc.AddToCart(ctx, id, item.Size, item.Frame); err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			if _, err := svc.ReturnHome(ctx, id); err != nil {
				return nil, err
			}
		}
		if _, err := svc.Navigate(ctx, id, storefront.ScreenCart); err != nil {
			return nil, err
		}
		if _, err := svc.ProceedFromCart(ctx, id); err != nil {
			return nil, err
		}
	}

	sub, err := svc.SubmitCustomerDetails(ctx, id, order.Customer.details())
	if err != nil {
		return nil, err
	}

	log.Info().Int("links", len(sub.Links)).Msg("Order composed")
	return sub.Links, nil
}
