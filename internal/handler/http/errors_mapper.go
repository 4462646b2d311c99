package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrValidationNameAndTypeRequired: {http.StatusBadRequest, app.MsgNameAndTypeRequired},
	service.ErrStrainAlreadyExists:           {http.StatusBadRequest, app.MsgStrainAlreadyExists},
	service.ErrStrainNotFound:                {http.StatusNotFound, app.MsgStrainNotFound},
}

// responseFromError maps a service error to a status and body message.
// Unknown errors collapse to 500 with fallback.
func responseFromError(err error, fallback string) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, fallback}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	resp := responseFromError(err, fallback)
	utils.WriteError(w, resp.message, resp.status)
}
