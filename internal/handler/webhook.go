// internal/handler/webhook.go
package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/service"
)

// maxWebhookBytes bounds a single delivery.
const maxWebhookBytes = 256 << 10

type WebhookResponse struct {
	Received bool `json:"received"`
}

type WebhookHandler struct {
	service *service.WebhookService
}

func NewWebhookHandler(service *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// Stripe acknowledges a delivery with 200 once it was applied. Processing
// failures answer 500 so Stripe redelivers.
func (h *WebhookHandler) Stripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err = h.service.Handle(r.Context(), payload, r.Header.Get(billing.SignatureHeader))
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, WebhookResponse{Received: true})
	case errors.Is(err, domain.ErrInvalidSignature):
		respondWithError(w, http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, domain.ErrInvalidPayload):
		respondWithError(w, http.StatusBadRequest, "Invalid payload")
	default:
		slog.ErrorContext(r.Context(), "Webhook processing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Webhook processing failed")
	}
}
