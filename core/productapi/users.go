package productapi

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// readUser reads and validates a lifecycle notification body. On failure
// it writes the problem response and returns false.
func (a *API) readUser(w http.ResponseWriter, r *http.Request) (UserCRUDRequest, bool) {
	var user UserCRUDRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "cannot read request body")
		return user, false
	}
	if err := a.validator.ValidateBytes(body, userSchemaID); err != nil {
		writeProblem(w, http.StatusBadRequest, err.Error())
		return user, false
	}
	if err := json.Unmarshal(body, &user); err != nil {
		writeProblem(w, http.StatusBadRequest, err.Error())
		return user, false
	}
	return user, true
}

// userNotification returns the handler for one lifecycle event. The
// notifications are acknowledged and logged but nothing is provisioned
// yet; in particular the certificate payload is not verified, RASENMAEHER
// owns the certificate lifecycle.
func (a *API) userNotification(event string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.readUser(w, r)
		if !ok {
			return
		}
		logger.FromContext(r.Context()).Infoln("user", user.Callsign, "(", user.UUID, "):", event)
		writeJSON(w, r, OperationResult{Success: true})
	}
}
