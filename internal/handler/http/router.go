package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// Routes is what NewRouter mounts.
type Routes struct {
	Catalog     *CatalogHandler
	Sessions    *SessionHandler
	Admin       *AdminHandler
	CORSOrigins []string
	StartedAt   time.Time
}

func NewRouter(routes Routes) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if len(routes.CORSOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: routes.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", adminPasswordHeader},
			MaxAge:         300,
		}))
	}

	startedAt := routes.StartedAt
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:        "ok",
			Timestamp:     now.UTC(),
			UptimeSeconds: now.Sub(startedAt).Seconds(),
		})
	})

	routes.Catalog.RegisterRoutes(router)
	routes.Sessions.RegisterRoutes(router)
	if routes.Admin != nil {
		routes.Admin.RegisterRoutes(router)
	}

	return router
}
