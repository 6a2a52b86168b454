package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/domain"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithDetails(w http.ResponseWriter, code int, message string, details []string) {
	respondWithJSON(w, code, ErrorResponse{Error: message, Details: &details})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// organizationID returns the tenant resolved by the tenant middleware.
func organizationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.OrganizationIDFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusNotFound, "Organization not found")
		return uuid.Nil, false
	}
	return id, true
}

func session(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return sess, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

func queryID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return nil, false
	}
	return &id, true
}

// handleError maps service errors onto HTTP responses. Anything it does not
// recognise is logged and answered with a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		details := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		respondWithDetails(w, http.StatusBadRequest, "Validation failed", details)
	case errors.Is(err, domain.ErrInvalidLevelParent):
		respondWithError(w, http.StatusBadRequest, domain.ErrInvalidLevelParent.Error())
	case errors.Is(err, domain.ErrInvalidSalaryBounds):
		respondWithError(w, http.StatusBadRequest, domain.ErrInvalidSalaryBounds.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithDetails(w, http.StatusBadRequest, "Invalid input", []string{err.Error()})
	case errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithError(w, http.StatusNotFound, "Organization not found")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		respondWithError(w, http.StatusNotFound, "Department not found")
	case errors.Is(err, domain.ErrJobFamilyNotFound):
		respondWithError(w, http.StatusNotFound, "Job family not found")
	case errors.Is(err, domain.ErrLevelNotFound):
		respondWithError(w, http.StatusNotFound, "Level not found")
	case errors.Is(err, domain.ErrAvantageNotFound):
		respondWithError(w, http.StatusNotFound, "Avantage not found")
	case errors.Is(err, domain.ErrGrilleExtraNotFound):
		respondWithError(w, http.StatusNotFound, "Grille extra not found")
	case errors.Is(err, domain.ErrSubscriptionNotFound), errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrCheckoutSessionMismatch):
		respondWithError(w, http.StatusForbidden, "Checkout session does not belong to this organization")
	case errors.Is(err, domain.ErrBillingCustomerMissing):
		respondWithError(w, http.StatusConflict, "Organization has no billing account yet")
	case errors.Is(err, domain.ErrConflict):
		respondWithError(w, http.StatusConflict, "Conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
