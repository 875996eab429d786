package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
)

type PaintingRequest struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name" validate:"required"`
	Image          string   `json:"image" validate:"required"`
	Price          float64  `json:"price" validate:"gt=0"`
	OriginalPrice  *float64 `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Category       string   `json:"category" validate:"required"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews        int      `json:"reviews" validate:"gte=0"`
	Badge          *string  `json:"badge,omitempty"`
	CouponCode     *string  `json:"coupon_code,omitempty"`
	CouponDiscount *float64 `json:"coupon_discount,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (req PaintingRequest) toPainting() *catalog.Painting {
	return &catalog.Painting{
		ID:             req.ID,
		Name:           req.Name,
		Image:          req.Image,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Category:       req.Category,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
		Badge:          req.Badge,
		CouponCode:     req.CouponCode,
		CouponDiscount: req.CouponDiscount,
	}
}

type DirectMessageRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type DirectMessageResponse struct {
	URL string `json:"url"`
}

type AdminHandler struct {
	catalog  catalog.Service
	linker   messaging.Linker
	auth     *AdminAuth
	validate *validator.Validate
}

func NewAdminHandler(catalogSvc catalog.Service, linker messaging.Linker, auth *AdminAuth) *AdminHandler {
	return &AdminHandler{
		catalog:  catalogSvc,
		linker:   linker,
		auth:     auth,
		validate: validator.New(),
	}
}

func (h *AdminHandler) RegisterRoutes(router chi.Router) {
	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.auth.Middleware)
		r.Get("/paintings", h.handleListPaintings)
		r.Post("/paintings", h.handleCreatePainting)
		r.Put("/paintings/{id}", h.handleUpdatePainting)
		r.Delete("/paintings/{id}", h.handleDeletePainting)
		r.Post("/messages", h.handleDirectMessage)
	})
}

func (h *AdminHandler) handleListPaintings(w http.ResponseWriter, r *http.Request) {
	paintings, err := h.catalog.ListStored(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list paintings via service")
		respondWithError(w, mapErrorToStatusCode(err), clientMessage(err, "Failed to list paintings"))
		return
	}
	respondWithJSON(w, http.StatusOK, paintings)
}

func (h *AdminHandler) handleCreatePainting(w http.ResponseWriter, r *http.Request) {
	var req PaintingRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	created, err := h.catalog.CreatePainting(r.Context(), req.toPainting())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create painting via service")

		var message string
		if errors.Is(err, catalog.ErrDuplicateID) {
			message = "Painting with this id already exists"
		} else {
			message = clientMessage(err, "Failed to create painting")
		}
		respondWithError(w, mapErrorToStatusCode(err), message)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) handleUpdatePainting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PaintingRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	if req.ID != "" && req.ID != id {
		respondWithError(w, http.StatusBadRequest, "Painting id in body does not match URL")
		return
	}
	req.ID = id

	updated, err := h.catalog.UpdatePainting(r.Context(), req.toPainting())
	if err != nil {
		log.Error().Err(err).Str("painting_id", id).Msg("Failed to update painting via service")

		var message string
		if errors.Is(err, catalog.ErrNotFound) {
			message = "Painting not found"
		} else {
			message = clientMessage(err, "Failed to update painting")
		}
		respondWithError(w, mapErrorToStatusCode(err), message)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) handleDeletePainting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.DeletePainting(r.Context(), id); err != nil {
		log.Error().Err(err).Str("painting_id", id).Msg("Failed to delete painting via service")

		var message string
		if errors.Is(err, catalog.ErrNotFound) {
			message = "Painting not found"
		} else {
			message = clientMessage(err, "Failed to delete painting")
		}
		respondWithError(w, mapErrorToStatusCode(err), message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleDirectMessage(w http.ResponseWriter, r *http.Request) {
	var req DirectMessageRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	link, err := h.linker.Direct(req.Phone, req.Message)
	if err != nil {
		respondWithError(w, mapErrorToStatusCode(err), err.Error())
		return
	}

	log.Info().Msg("Admin message link created")
	respondWithJSON(w, http.StatusOK, DirectMessageResponse{URL: link.URL})
}
