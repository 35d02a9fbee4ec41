package productapi

import (
	"bytes"
	"net/http"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// adminFragment returns the deprecated server-rendered admin instruction
// snippet.
func (a *API) adminFragment(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.product.AdminFragmentTemplate.Execute(&buf, nil); err != nil {
		logger.FromContext(r.Context()).Errorln("cannot render admin fragment:", err)
		http.Error(w, "cannot render fragment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, AdminFragment{HTML: buf.String()})
}
