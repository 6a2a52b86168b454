// internal/handler/avantage.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/service"
)

type AvantageHandler struct {
	service *service.AvantageService
}

func NewAvantageHandler(service *service.AvantageService) *AvantageHandler {
	return &AvantageHandler{service: service}
}

func (h *AvantageHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *AvantageHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var input service.AvantageInput
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

func (h *AvantageHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input service.AvantageInput
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

func (h *AvantageHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
