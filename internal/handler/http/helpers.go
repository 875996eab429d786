package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/storefront"
)

type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// respondWithError sends {"error": message}.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, storefront.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicateID),
		errors.Is(err, storefront.ErrInvalidTransition),
		errors.Is(err, storefront.ErrNoSelection),
		errors.Is(err, storefront.ErrEmptyCart):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrInvalidPainting),
		errors.Is(err, catalog.ErrUnknownSize),
		errors.Is(err, catalog.ErrUnknownFrame),
		errors.Is(err, storefront.ErrMissingImage),
		errors.Is(err, messaging.ErrInvalidPhone),
		errors.Is(err, messaging.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the text sent for err. Internal errors are not exposed.
func clientMessage(err error, fallback string) string {
	if mapErrorToStatusCode(err) == http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "is required"
		case "min":
			details[fe.Field()] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "gt":
			details[fe.Field()] = fmt.Sprintf("must be greater than %s", fe.Param())
		case "gte":
			details[fe.Field()] = fmt.Sprintf("must be at least %s", fe.Param())
		case "lte":
			details[fe.Field()] = fmt.Sprintf("must be at most %s", fe.Param())
		default:
			details[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
	}
	return details
}

// respondWithValidationError writes a 400 with per-field details when err
// carries validator errors and reports whether it did.
func respondWithValidationError(w http.ResponseWriter, err error) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:   "Validation failed",
		Details: formatValidationErrors(validationErrors),
	})
	return true
}

// decodeJSON reads a JSON body into dst. On failure the response is already
// written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		log.Warn().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst interface{}) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}

	if err := v.Struct(dst); err != nil {
		if respondWithValidationError(w, err) {
			return false
		}
		log.Error().Err(err).Type("validation_error_type", err).Msg("Unexpected error type during validation")
		respondWithError(w, http.StatusInternalServerError, "Internal validation error")
		return false
	}
	return true
}
