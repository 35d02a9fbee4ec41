package productapi

import (
	"net/http"
)

// healthCheck reports whether the product is usable. Nothing is actually
// checked yet, the integration has no downstream state to probe.
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, HealthCheckResponse{
		Healthy: true,
		Extra:   a.product.HealthCheckExtra,
	})
}
