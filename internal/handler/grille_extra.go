// internal/handler/grille_extra.go
package handler

import (
	"net/http"

	"github.com/leafthq/leaft/internal/service"
)

type GrilleExtraHandler struct {
	service *service.GrilleExtraService
}

func NewGrilleExtraHandler(service *service.GrilleExtraService) *GrilleExtraHandler {
	return &GrilleExtraHandler{service: service}
}

// List returns grille extras, optionally narrowed by type.
func (h *GrilleExtraHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	extraType, err := service.ParseGrilleExtraType(r.URL.Query().Get("type"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	extras, err := h.service.List(r.Context(), orgID, extraType)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, extras)
}

func (h *GrilleExtraHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}

	var input service.GrilleExtraInput
	if !decodeJSON(w, r, &input) {
		return
	}

	extra, err := h.service.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, extra)
}

func (h *GrilleExtraHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := organizationID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input service.GrilleExtraInput
	if !decodeJSON(w, r, &input) {
		return
	}

	extra, err := h.service.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, extra)
}

func (h *GrilleExtraHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
