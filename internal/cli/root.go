package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const serviceName = "slm-storefront"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	// LogLevel overrides LOG_LEVEL when set.
	LogLevel string
	// JSONLogs switches the console writer off.
	JSONLogs bool
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "SLM Paintings storefront backend",
		Long: `Backend of the SLM Paintings storefront.

Serves the painting catalog and drives shopper sessions from browsing to a
WhatsApp order message. Orders are not stored: a submitted order becomes a
deep link to the shop's WhatsApp number.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides LOG_LEVEL")
	cmd.PersistentFlags().BoolVar(&opts.JSONLogs, "json-logs", false, "write logs as JSON instead of console output")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewMessageCommand(opts))

	return cmd
}

// setupLogging configures the global zerolog logger. flagLevel wins over
// cfgLevel; an empty result means info.
func setupLogging(w io.Writer, opts *RootOptions, cfgLevel string) error {
	levelName := cfgLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	if levelName == "" {
		levelName = zerolog.InfoLevel.String()
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	zerolog.SetGlobalLevel(level)

	if opts.JSONLogs {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}
	log.Logger = log.With().Str("service", serviceName).Logger()
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
