package productapi_test

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/vitamiini-0/matrix-rmapi/core/client"
	"github.com/vitamiini-0/matrix-rmapi/core/manifest"
	"github.com/vitamiini-0/matrix-rmapi/core/productapi"
)

func TestDescriptionV1(t *testing.T) {

	ta := newTestAPI(t)

	for _, lang := range []string{"en", "fi"} {
		var desc productapi.Description
		_, err := ta.anonymousClient().RawGet("/api/v1/description/"+lang, &desc)
		assert.Nil(t, err)
		assert.Equal(t, "matrix", desc.Shortname)
		assert.Equal(t, lang, desc.Language)
		assert.NotEmpty(t, desc.Title)
	}
}

func TestDescriptionV1_UnknownLanguage(t *testing.T) {

	ta := newTestAPI(t)

	status, err := ta.anonymousClient().RawGet("/api/v1/description/xx", nil)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDescriptionV2(t *testing.T) {

	ta := newTestAPI(t)

	var desc productapi.DescriptionExtended
	_, err := ta.anonymousClient().RawGet("/api/v2/description/sv", &desc)
	assert.Nil(t, err)
	assert.Equal(t, "matrix", desc.Shortname)
	assert.Equal(t, "sv", desc.Language)
	assert.NotEmpty(t, desc.Title)
	assert.NotEmpty(t, desc.Docs)
	assert.Equal(t, "component", desc.Component.Type)
}

func TestDescriptionV2_LanguagePlaceholderInRef(t *testing.T) {

	product := testProduct()
	for lang, desc := range product.DescriptionsV2 {
		desc.Component = productapi.Component{
			Type: "markdown",
			Ref:  "/api/v1/product/proxy/matrix/api/v2/clients/{language}/info.md",
		}
		product.DescriptionsV2[lang] = desc
	}

	router := mux.NewRouter()
	_, err := productapi.New(&productapi.Builder{
		Product:  product,
		Manifest: manifest.Default(),
		Router:   router,
	})
	assert.Nil(t, err)

	var desc productapi.DescriptionExtended
	_, err = client.NewWithRouter(router).RawGet("/api/v2/description/sv", &desc)
	assert.Nil(t, err)
	assert.Equal(t, "/api/v1/product/proxy/matrix/api/v2/clients/sv/info.md", desc.Component.Ref)
}

func TestDescriptionV2_UnknownLanguageFallsBack(t *testing.T) {

	ta := newTestAPI(t)

	// v2 never fails on the language, it echoes the requested language on
	// the default language entry
	var desc productapi.DescriptionExtended
	status, err := ta.anonymousClient().RawGet("/api/v2/description/xx", &desc)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "xx", desc.Language)
	assert.Equal(t, "Matrix", desc.Title)
	assert.NotEmpty(t, desc.Docs)
}
