package productapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// instructions returns the user instructions for the requested language.
func (a *API) instructions(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]
	user, ok := a.readUser(w, r)
	if !ok {
		return
	}
	logger.FromContext(r.Context()).Debugln("instructions for", user.Callsign, "in", language)

	// TODO: generate real instructions once the product has any, see the
	// info markdown endpoint for the v2 replacement
	writeJSON(w, r, InstructionsResponse{
		Callsign:     user.Callsign,
		Instructions: "FIXME: Return something sane",
		Language:     "en",
	})
}
