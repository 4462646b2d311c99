package http

import (
	"net/http"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/utils"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router, so an unsupported method on a known path is
// indistinguishable from an unknown path.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}
