package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/config"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
)

type MessageOptions struct {
	Phone string
	Text  string
	Open  bool
}

func NewMessageCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MessageOptions{}

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Build a WhatsApp link to message a customer",
		Long: `Build a WhatsApp deep link to send a message to one customer.

Non-digits are dropped from the phone number, which must keep at least 10
digits. The link is printed, or opened with --open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := setupLogging(cmd.ErrOrStderr(), rootOpts, cfg.App.LogLevel); err != nil {
				return err
			}

			linker := messaging.NewLinker(cfg.Storefront.OrderLinkBase, cfg.Storefront.ShareLinkBase)
			link, err := linker.Direct(opts.Phone, opts.Text)
			if err != nil {
				return err
			}

			return messaging.Dispatch(cmd.Context(), opener(cmd, opts.Open), []messaging.Link{link})
		},
	}

	cmd.Flags().StringVar(&opts.Phone, "phone", "", "customer phone number")
	cmd.Flags().StringVar(&opts.Text, "text", "", "message text")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "open the link instead of printing it")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func opener(cmd *cobra.Command, open bool) messaging.Opener {
	if open {
		return messaging.BrowserOpener{}
	}
	return messaging.PrintOpener{W: cmd.OutOrStdout()}
}
