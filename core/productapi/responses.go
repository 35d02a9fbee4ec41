package productapi

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/moogar0880/problems"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// writeJSON serializes response to the client. Serialization failures are
// a programming error and surface as 500.
func writeJSON(w http.ResponseWriter, r *http.Request, response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		logger.FromContext(r.Context()).Errorln("cannot marshal response:", err)
		http.Error(w, "cannot marshal response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
}

// writeProblem writes an RFC 7807 problem response.
func writeProblem(w http.ResponseWriter, status int, detail string) {
	prob := problems.NewDetailedProblem(status, detail)
	data, err := json.Marshal(prob)
	if err != nil {
		http.Error(w, detail, status)
		return
	}
	w.Header().Set("Content-Type", problems.ProblemMediaType)
	w.WriteHeader(status)
	w.Write(data)
}
