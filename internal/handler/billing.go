// internal/handler/billing.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/service"
)

type VerifySessionRequest struct {
	SessionID string `json:"session_id"`
}

type VerifySessionResponse struct {
	BaseResponse
	OrganizationID string                    `json:"organization_id"`
	Subscription   model.SubscriptionSummary `json:"subscription"`
}

type PortalResponse struct {
	URL string `json:"url"`
}

// BillingHandler serves the Stripe checkout, verification and portal
// endpoints for the caller's organization.
type BillingHandler struct {
	checkout *service.CheckoutService
}

func NewBillingHandler(checkout *service.CheckoutService) *BillingHandler {
	return &BillingHandler{checkout: checkout}
}

// Checkout starts a Stripe-hosted checkout for the requested seat count.
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	sess, ok := session(w, r)
	if !ok {
		return
	}

	var input service.CheckoutInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.checkout.Start(r.Context(), orgID, *sess, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// VerifySession confirms a completed checkout without waiting for the
// webhook.
func (h *BillingHandler) VerifySession(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var req VerifySessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.checkout.VerifySession(r.Context(), orgID, req.SessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary := sub.Summary()
	respondWithJSON(w, http.StatusOK, VerifySessionResponse{
		BaseResponse:   BaseResponse{Ok: summary.Active},
		OrganizationID: orgID.String(),
		Subscription:   summary,
	})
}

func (h *BillingHandler) Portal(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	url, err := h.checkout.Portal(r.Context(), orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, PortalResponse{URL: url})
}
