package main

import (
	"embed"
	"flag"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"

	"github.com/gorilla/mux"

	"github.com/vitamiini-0/matrix-rmapi/core/client"
	"github.com/vitamiini-0/matrix-rmapi/core/identity"
	"github.com/vitamiini-0/matrix-rmapi/core/logger"
	"github.com/vitamiini-0/matrix-rmapi/core/manifest"
	"github.com/vitamiini-0/matrix-rmapi/core/productapi"
)

//go:embed templates
var templatesFS embed.FS

// Service holds the configuration for this service
type Service struct {
	Port          int    `env:"PORT,default=8012" description:"the port to listen on"`
	LogLevel      string `env:"LOG_LEVEL,default=info" description:"the logrus log level"`
	ManifestPath  string `env:"MANIFEST_PATH" description:"override for the kraftwerk manifest location"`
	TemplatesPath string `env:"TEMPLATES_PATH" description:"override directory for the html templates"`
}

func main() {
	healthcheck := flag.Bool("healthcheck", false, "probe the running service and exit")
	flag.Parse()

	service := &Service{}
	if err := envdecode.Decode(service); err != nil {
		panic(err)
	}

	level, err := logrus.ParseLevel(service.LogLevel)
	if err != nil {
		panic(err)
	}
	logger.InitLogger(level)

	if *healthcheck {
		os.Exit(runHealthCheck(service.Port))
	}

	if service.ManifestPath != "" {
		manifest.SetPath(service.ManifestPath)
	}

	adminTemplate := htmltemplate.Must(htmltemplate.ParseFS(templatesFS, "templates/admininfo.html"))
	if service.TemplatesPath != "" {
		adminTemplate = htmltemplate.Must(htmltemplate.ParseFiles(
			filepath.Join(service.TemplatesPath, "admininfo.html")))
	}

	router := mux.NewRouter()
	api := productapi.MustNew(&productapi.Builder{
		Product:  newProduct(adminTemplate),
		Manifest: manifest.MustGet(),
		Router:   router,
	})

	logger.Default().Infoln("matrix product api listening on port", service.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", service.Port), api.Handler()); err != nil {
		panic(err)
	}
}

// runHealthCheck does a GET request against the healthcheck route of the
// locally running service and returns the process exit code. Meant for
// container health probes.
func runHealthCheck(port int) int {
	c := client.NewWithURL(fmt.Sprintf("http://localhost:%d", port)).
		WithTimeout(2 * time.Second).
		WithHeader(identity.HeaderName, "CN=healthcheck.localhost")

	var status productapi.HealthCheckResponse
	if _, err := c.RawGet("/api/v1/healthcheck", &status); err != nil {
		logger.Default().Errorln("healthcheck:", err)
		return 1
	}
	if !status.Healthy {
		return 1
	}
	return 0
}
