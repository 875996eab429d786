package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
)

type OptionsResponse struct {
	Sizes           []catalog.SizeOption  `json:"sizes"`
	Frames          []catalog.FrameOption `json:"frames"`
	Categories      []catalog.Category    `json:"categories"`
	CustomBasePrice float64               `json:"custom_base_price"`
}

type CatalogHandler struct {
	service         catalog.Service
	customBasePrice float64
}

func NewCatalogHandler(service catalog.Service, customBasePrice float64) *CatalogHandler {
	return &CatalogHandler{service: service, customBasePrice: customBasePrice}
}

func (h *CatalogHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/options", h.handleGetOptions)
	router.Get("/api/paintings", h.handleListPaintings)
	router.Get("/api/paintings/{id}", h.handleGetPainting)
}

func (h *CatalogHandler) handleGetOptions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, OptionsResponse{
		Sizes:           catalog.SizeOptions(),
		Frames:          catalog.FrameOptions(),
		Categories:      catalog.Categories(),
		CustomBasePrice: h.customBasePrice,
	})
}

func parseFlag(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func (h *CatalogHandler) handleListPaintings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.Filter{
		Category: query.Get("category"),
		Query:    query.Get("q"),
	}

	var err error
	if filter.Trending, err = parseFlag(r, "trending"); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid trending parameter")
		return
	}
	if filter.Deals, err = parseFlag(r, "deals"); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid deals parameter")
		return
	}

	respondWithJSON(w, http.StatusOK, h.service.ListPaintings(r.Context(), filter))
}

func (h *CatalogHandler) handleGetPainting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	painting, err := h.service.GetPainting(r.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("painting_id", id).Msg("Failed to get painting via service")
		respondWithError(w, mapErrorToStatusCode(err), clientMessage(err, "Failed to get painting"))
		return
	}

	respondWithJSON(w, http.StatusOK, painting)
}
