package productapi

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// description returns the v1 product description for the requested
// language. v1 has no fallback, an unknown language is a 404.
func (a *API) description(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]
	logger.FromContext(r.Context()).Debugln("got language", language)

	desc, ok := a.product.DescriptionsV1[language]
	if !ok {
		writeProblem(w, http.StatusNotFound, "no description for language "+language)
		return
	}
	writeJSON(w, r, desc)
}

// descriptionExtended returns the v2 product description. Unknown
// languages fall back to the default language entry with the requested
// language echoed back, so this endpoint never fails.
func (a *API) descriptionExtended(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]

	desc, ok := a.product.DescriptionsV2[language]
	if !ok {
		desc = a.product.DescriptionsV2[a.product.DefaultLanguage]
	}
	desc.Language = language
	desc.Component.Ref = strings.ReplaceAll(desc.Component.Ref, "{language}", language)
	writeJSON(w, r, desc)
}
