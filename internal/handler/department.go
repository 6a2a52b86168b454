// internal/handler/department.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/service"
)

type DepartmentHandler struct {
	service *service.DepartmentService
}

func NewDepartmentHandler(service *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List returns the organization's departments
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	departments, err := h.service.List(r.Context(), orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, departments)
}

// Create adds a department
func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var input service.DepartmentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	department, err := h.service.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, department)
}

// Update replaces a department's fields
func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input service.DepartmentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	department, err := h.service.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, department)
}

// Delete removes a department
func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
