// internal/handler/job_family.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/service"
)

type JobFamilyHandler struct {
	service *service.JobFamilyService
}

func NewJobFamilyHandler(service *service.JobFamilyService) *JobFamilyHandler {
	return &JobFamilyHandler{service: service}
}

// List returns the organization's job families
func (h *JobFamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

// Create adds a job family
func (h *JobFamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var input service.JobFamilyInput
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.service.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

// Update replaces a job family's fields
func (h *JobFamilyHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input service.JobFamilyInput
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.service.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// Delete removes a job family
func (h *JobFamilyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), orgID, id); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
