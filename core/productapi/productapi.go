package productapi

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
	"github.com/vitamiini-0/matrix-rmapi/core/manifest"
	"github.com/vitamiini-0/matrix-rmapi/core/schema"
)

//go:embed schemas
var schemasFS embed.FS

// userSchemaID identifies the embedded schema for lifecycle notifications.
const userSchemaID = "https://pvarki.fi/schemas/user-crud-request.json"

// API is the generic product integration api
type API struct {
	product   *Product
	manifest  *manifest.Manifest
	router    *mux.Router
	validator *schema.Validator
	corsHost  string
}

// Builder is a builder helper for the API
type Builder struct {
	// Product is the static response configuration. This is mandatory.
	Product *Product
	// Manifest is the deployment manifest. This is mandatory.
	Manifest *manifest.Manifest
	// Router is a mux router. This is mandatory.
	Router *mux.Router
}

// MustNew is like New but panics on an invalid builder. Services call it
// at startup.
func MustNew(bb *Builder) *API {
	api, err := New(bb)
	if err != nil {
		panic(err)
	}
	return api
}

// New realizes the actual api. It adds all routes to the router together
// with the request ID and compression middlewares.
func New(bb *Builder) (*API, error) {

	if bb.Product == nil {
		return nil, fmt.Errorf("Product is missing")
	}
	if bb.Manifest == nil {
		return nil, fmt.Errorf("Manifest is missing")
	}
	if bb.Router == nil {
		return nil, fmt.Errorf("Router is missing")
	}
	if bb.Product.DefaultLanguage == "" {
		return nil, fmt.Errorf("Product has no default language")
	}
	if _, ok := bb.Product.DescriptionsV2[bb.Product.DefaultLanguage]; !ok {
		return nil, fmt.Errorf("Product has no v2 description for default language %q", bb.Product.DefaultLanguage)
	}
	if _, ok := bb.Product.InfoMarkdown[bb.Product.DefaultLanguage]; !ok {
		return nil, fmt.Errorf("Product has no info markdown for default language %q", bb.Product.DefaultLanguage)
	}

	base, err := url.Parse(bb.Manifest.Rasenmaeher.Init.BaseURI)
	if err != nil || base.Hostname() == "" {
		return nil, fmt.Errorf("cannot derive CORS origin from manifest base uri %q: %v",
			bb.Manifest.Rasenmaeher.Init.BaseURI, err)
	}

	schemasRoot, err := fs.Sub(schemasFS, "schemas")
	if err != nil {
		return nil, err
	}
	validator, err := schema.NewValidatorFromFS(schemasRoot)
	if err != nil {
		return nil, err
	}

	a := &API{
		product:   bb.Product,
		manifest:  bb.Manifest,
		router:    bb.Router,
		validator: validator,
		corsHost:  base.Hostname(),
	}

	logger.AddRequestID(a.router)
	a.handleCompression()
	a.handleRoutes()

	logger.Default().Debugln("productapi: CORS origin host is", a.corsHost)
	return a, nil
}

// Handler returns the fully assembled http handler with the CORS policy
// wrapped around the router. The allowed origins are derived from the
// manifest's RASENMAEHER base uri: the base host itself and any subdomain
// of it, https only.
func (a *API) Handler() http.Handler {
	return handlers.CORS(
		handlers.AllowedOriginValidator(a.allowOrigin),
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
		}),
	)(a.router)
}

func (a *API) allowOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	return host == a.corsHost || strings.HasSuffix(host, "."+a.corsHost)
}

func (a *API) handleCompression() {

	compressionMiddleware := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlers.CompressHandler(h).ServeHTTP(w, r)
		})
	}
	a.router.Use(compressionMiddleware)
}

// handleRoutes adds all route handlers under the versioned path prefixes.
// Which gate each route gets is an explicit choice per endpoint, see the
// gate constants.
func (a *API) handleRoutes() {

	v1 := a.router.PathPrefix("/api/v1").Subrouter()
	v2 := a.router.PathPrefix("/api/v2").Subrouter()

	v1.HandleFunc("/healthcheck", a.gated(gateIdentity, a.healthCheck)).Methods(http.MethodGet)

	// descriptions are public, the portal fetches them before any login
	v1.HandleFunc("/description/{language}", a.gated(gatePublic, a.description)).Methods(http.MethodGet)
	v2.HandleFunc("/description/{language}", a.gated(gatePublic, a.descriptionExtended)).Methods(http.MethodGet)

	for _, event := range []string{"created", "revoked", "promoted", "demoted", "updated"} {
		v1.HandleFunc("/users/"+event, a.gated(gateAuthority, a.userNotification(event))).Methods(http.MethodPost)
	}
	v1.HandleFunc("/users/updated", a.gated(gateAuthority, a.userNotification("updated"))).Methods(http.MethodPut)

	v1.HandleFunc("/clients/fragment", a.gated(gateIdentity, a.clientFragment)).Methods(http.MethodPost)
	v2.HandleFunc("/clients/{language}/info.md", a.gated(gateAuthority, a.clientInfo)).Methods(http.MethodPost)

	v1.HandleFunc("/admins/fragment", a.gated(gateIdentity, a.adminFragment)).Methods(http.MethodGet)
	v1.HandleFunc("/instructions/{language}", a.gated(gateIdentity, a.instructions)).Methods(http.MethodPost)
}
