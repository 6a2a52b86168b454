// internal/handler/organization.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/service"
)

type OrganizationHandler struct {
	service *service.OrganizationService
}

func NewOrganizationHandler(service *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	org, err := h.service.Get(r.Context(), orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org.Settings())
}

// Update applies a partial settings update.
func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var input service.UpdateOrganizationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	org, err := h.service.UpdateSettings(r.Context(), orgID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org.Settings())
}
