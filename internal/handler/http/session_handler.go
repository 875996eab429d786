package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/storefront"
)

type NavigateRequest struct {
	Screen string `json:"screen" validate:"required"`
}

type SelectPaintingRequest struct {
	PaintingID string `json:"painting_id" validate:"required"`
}

type LineOptionsRequest struct {
	Size  string `json:"size" validate:"required"`
	Frame string `json:"frame" validate:"required"`
}

type CustomPaintingRequest struct {
	ImageData string `json:"image_data" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Frame     string `json:"frame" validate:"required"`
}

type SessionResponse struct {
	ID    string           `json:"id"`
	State storefront.State `json:"state"`
}

type LinkResponse struct {
	URL     string `json:"url"`
	DelayMS int64  `json:"delay_ms"`
}

type SubmissionResponse struct {
	ID    string           `json:"id"`
	State storefront.State `json:"state"`
	Links []LinkResponse   `json:"links"`
}

func toLinkResponses(links []messaging.Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, LinkResponse{URL: l.URL, DelayMS: l.Delay.Milliseconds()})
	}
	return out
}

type SessionHandler struct {
	service  storefront.Service
	validate *validator.Validate
}

func NewSessionHandler(service storefront.Service) *SessionHandler {
	return &SessionHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *SessionHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/sessions", h.handleCreateSession)
	router.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Post("/splash", h.handleCompleteSplash)
		r.Post("/navigate", h.handleNavigate)
		r.Post("/back", h.handleBack)
		r.Post("/home", h.handleReturnHome)
		r.Post("/select", h.handleSelectPainting)
		r.Post("/details/proceed", h.handleProceedFromDetails)
		r.Post("/cart", h.handleAddToCart)
		r.Delete("/cart/{position}", h.handleRemoveFromCart)
		r.Post("/cart/checkout", h.handleProceedFromCart)
		r.Post("/custom", h.handleProceedFromCustom)
		r.Post("/customer", h.handleSubmitCustomerDetails)
	})
}

// respondWithState writes the session state, or maps err when the action
// failed.
func (h *SessionHandler) respondWithState(w http.ResponseWriter, id string, state storefront.State, err error, action string) {
	if err != nil {
		status := mapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("session_id", id).Str("action", action).Msg("Session action failed")
		} else {
			log.Warn().Err(err).Str("session_id", id).Str("action", action).Msg("Session action rejected")
		}
		respondWithError(w, status, clientMessage(err, "Failed to "+action))
		return
	}
	respondWithJSON(w, http.StatusOK, SessionResponse{ID: id, State: state})
}

func (h *SessionHandler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, state, err := h.service.CreateSession(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	respondWithJSON(w, http.StatusCreated, SessionResponse{ID: id, State: state})
}

func (h *SessionHandler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.service.GetSession(r.Context(), id)
	h.respondWithState(w, id, state, err, "get session")
}

func (h *SessionHandler) handleCompleteSplash(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.service.CompleteSplash(r.Context(), id)
	h.respondWithState(w, id, state, err, "complete splash")
}

func (h *SessionHandler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req NavigateRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	screen, err := storefront.ParseScreen(req.Screen)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.service.Navigate(r.Context(), id, screen)
	h.respondWithState(w, id, state, err, "navigate")
}

func (h *SessionHandler) handleBack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.service.Back(r.Context(), id)
	h.respondWithState(w, id, state, err, "go back")
}

func (h *SessionHandler) handleReturnHome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.service.ReturnHome(r.Context(), id)
	h.respondWithState(w, id, state, err, "return home")
}

func (h *SessionHandler) handleSelectPainting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SelectPaintingRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	state, err := h.service.SelectPainting(r.Context(), id, req.PaintingID)
	h.respondWithState(w, id, state, err, "select painting")
}

func (h *SessionHandler) handleProceedFromDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req LineOptionsRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	state, err := h.service.ProceedFromDetails(r.Context(), id, req.Size, req.Frame)
	h.respondWithState(w, id, state, err, "proceed from details")
}

func (h *SessionHandler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req LineOptionsRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	state, err := h.service.AddToCart(r.Context(), id, req.Size, req.Frame)
	h.respondWithState(w, id, state, err, "add to cart")
}

func (h *SessionHandler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	positionParam := chi.URLParam(r, "position")
	position, err := strconv.Atoi(positionParam)
	if err != nil {
		log.Warn().Err(err).Str("position", positionParam).Msg("Failed to parse position parameter from URL")
		respondWithError(w, http.StatusBadRequest, "Invalid position parameter")
		return
	}

	state, err := h.service.RemoveFromCart(r.Context(), id, position)
	h.respondWithState(w, id, state, err, "remove from cart")
}

func (h *SessionHandler) handleProceedFromCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.service.ProceedFromCart(r.Context(), id)
	h.respondWithState(w, id, state, err, "proceed from cart")
}

func (h *SessionHandler) handleProceedFromCustom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CustomPaintingRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	state, err := h.service.ProceedFromCustom(r.Context(), id, req.ImageData, req.Size, req.Frame)
	h.respondWithState(w, id, state, err, "proceed from custom")
}

func (h *SessionHandler) handleSubmitCustomerDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var details storefront.CustomerDetails
	if !decodeJSON(w, r, &details) {
		return
	}

	sub, err := h.service.SubmitCustomerDetails(r.Context(), id, details)
	if err != nil {
		if respondWithValidationError(w, err) {
			return
		}
		h.respondWithState(w, id, storefront.State{}, err, "submit order")
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionResponse{
		ID:    id,
		State: sub.State,
		Links: toLinkResponses(sub.Links),
	})
}
