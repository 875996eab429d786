package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/config"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/db"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/storefront"
)

// app is the wired service graph shared by serve and order.
type app struct {
	cfg        *config.Config
	pool       *db.Postgres
	linker     messaging.Linker
	catalog    catalog.Service
	storefront storefront.Service
}

// newApp connects to Postgres when one is configured, applies migrations and
// builds the services. Without a database the catalog runs on its fallback.
func newApp(ctx context.Context, cfg *config.Config, sessionCacheSize int) (*app, error) {
	a := &app{cfg: cfg}

	var repo catalog.Repository
	if cfg.Postgres.Enabled() {
		if err := db.ApplyMigrations(cfg.Postgres); err != nil {
			return nil, fmt.Errorf("apply migrations: %w", err)
		}

		pool, err := db.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.pool = pool
		repo = catalog.NewRepository(pool.Pool)
	} else {
		log.Warn().Msg("DB_HOST not set, serving the fallback catalog; admin writes are disabled")
	}

	a.linker = messaging.NewLinker(cfg.Storefront.OrderLinkBase, cfg.Storefront.ShareLinkBase)
	a.catalog = catalog.NewService(repo, catalog.NewFileCache(cfg.Storefront.CatalogCacheFile))

	machine := storefront.NewMachine(storefront.MachineConfig{
		OrderNumber:    cfg.Storefront.OrderNumber,
		OperatorNumber: cfg.Storefront.OperatorNumber,
		NotifyDelay:    cfg.Storefront.NotifyDelay,
		Linker:         a.linker,
	})

	sessions, err := storefront.NewSessionStore(sessionCacheSize, machine)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.storefront = storefront.NewService(sessions, a.catalog, cfg.Storefront.CustomBasePrice)

	return a, nil
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
