// internal/handler/level.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/repository"
	"github.com/leafthq/leaft/internal/service"
)

type LevelHandler struct {
	service *service.LevelService
}

func NewLevelHandler(service *service.LevelService) *LevelHandler {
	return &LevelHandler{service: service}
}

// List returns levels, optionally narrowed by job_family_id or department_id.
func (h *LevelHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var filter repository.LevelFilter
	if filter.JobFamilyID, ok = queryID(w, r, "job_family_id"); !ok {
		return
	}
	if filter.DepartmentID, ok = queryID(w, r, "department_id"); !ok {
		return
	}

	levels, err := h.service.List(r.Context(), orgID, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, levels)
}

func (h *LevelHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var input service.LevelInput
	if !decodeJSON(w, r, &input) {
		return
	}

	level, err := h.service.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, level)
}

func (h *LevelHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input service.LevelInput
	if !decodeJSON(w, r, &input) {
		return
	}

	level, err := h.service.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, level)
}

func (h *LevelHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
