package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/config"
	apihttp "github.com/slmdecorcoin-design/slm-paintings-backend/internal/handler/http"
)

const shutdownTimeout = 15 * time.Second

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := setupLogging(cmd.ErrOrStderr(), rootOpts, cfg.App.LogLevel); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log.Info().Msg("Storefront starting...")

	a, err := newApp(ctx, cfg, cfg.Storefront.SessionCacheSize)
	if err != nil {
		return err
	}
	defer a.Close()

	auth, err := apihttp.NewAdminAuth(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("admin auth: %w", err)
	}

	router := apihttp.NewRouter(apihttp.Routes{
		Catalog:     apihttp.NewCatalogHandler(a.catalog, cfg.Storefront.CustomBasePrice),
		Sessions:    apihttp.NewSessionHandler(a.storefront),
		Admin:       apihttp.NewAdminHandler(a.catalog, a.linker, auth),
		CORSOrigins: cfg.App.CORSOrigins,
		StartedAt:   time.Now(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.App.Port, err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Storefront stopped gracefully")
	return nil
}
