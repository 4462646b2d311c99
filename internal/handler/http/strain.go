package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/utils"
	"github.com/MKhiriev/smoke-stack/models"
)

func (h *Handler) listStrains(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	strains, err := h.services.StrainService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listStrains").Msg("error listing strains")
		h.writeServiceError(w, err, app.MsgFailedToFetchStrains)
		return
	}
	if strains == nil {
		strains = []models.Strain{}
	}

	utils.WriteJSON(w, strains, http.StatusOK)
}

func (h *Handler) getStrain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	strain, err := h.services.StrainService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStrain").Str("id", id).Msg("error getting strain")
		h.writeServiceError(w, err, app.MsgFailedToFetchStrain)
		return
	}

	utils.WriteJSON(w, strain, http.StatusOK)
}

func (h *Handler) createStrain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.StrainInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createStrain").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.StrainService.Create(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createStrain").Msg("error creating strain")
		h.writeServiceError(w, err, app.MsgFailedToCreateStrain)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateStrain replaces every mutable field. An "id" in the body is ignored.
func (h *Handler) updateStrain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var in models.StrainInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.updateStrain").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	in.ID = ""

	updated, err := h.services.StrainService.Update(r.Context(), id, in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateStrain").Str("id", id).Msg("error updating strain")
		h.writeServiceError(w, err, app.MsgFailedToUpdateStrain)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteStrain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.StrainService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteStrain").Str("id", id).Msg("error deleting strain")
		h.writeServiceError(w, err, app.MsgFailedToDeleteStrain)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
