// internal/handler/onboarding.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/service"
)

// OnboardingHandler serves the endpoints used before an organization has
// an active subscription. They only require a session.
type OnboardingHandler struct {
	access        *service.AccessService
	organizations *service.OrganizationService
}

func NewOnboardingHandler(access *service.AccessService, organizations *service.OrganizationService) *OnboardingHandler {
	return &OnboardingHandler{
		access:        access,
		organizations: organizations,
	}
}

// Check reports whether the caller has an organization and an active
// subscription.
func (h *OnboardingHandler) Check(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	status, err := h.access.OnboardingStatus(r.Context(), *sess)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}

// CreateOrganization creates the caller's organization. A caller that already
// has one gets it back with 200.
func (h *OnboardingHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	var input service.CreateOrganizationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	org, created, err := h.organizations.CreateForOwner(r.Context(), *sess, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	respondWithJSON(w, code, org.Settings())
}
