/*Package manifest provides the kraftwerk deployment manifest.

The manifest is written to a fixed location by the deployment tooling. It
is loaded lazily on first access and memoized for the process lifetime;
all services share the one immutable document. A missing file is not an
error, the built-in default document is used so a service can always come
up in a development environment. A present but malformed file is fatal.
*/
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// DefaultPath is the fixed location the deployment tooling writes the init
// manifest to.
const DefaultPath = "/pvarki/kraftwerk-init.json"

// Manifest is the deployment configuration document shared by all product
// integration services.
type Manifest struct {
	Deployment  string      `json:"deployment"`
	Rasenmaeher Rasenmaeher `json:"rasenmaeher"`
	Product     Product     `json:"product"`
}

// Rasenmaeher describes the RASENMAEHER instance of this deployment.
type Rasenmaeher struct {
	Init   Init   `json:"init"`
	Mtls   Mtls   `json:"mtls"`
	CertCN string `json:"certcn"`
}

// Init holds the initial enrollment endpoint and token.
type Init struct {
	BaseURI string `json:"base_uri"`
	CSRJWT  string `json:"csr_jwt"`
}

// Mtls holds the mTLS endpoint.
type Mtls struct {
	BaseURI string `json:"base_uri"`
}

// Product describes this product as seen by RASENMAEHER.
type Product struct {
	DNS string `json:"dns"`
	API string `json:"api"`
	URI string `json:"uri"`
}

// Default returns the built-in fallback document with placeholder values
// for local development.
func Default() *Manifest {
	return &Manifest{
		Deployment: "manifest_notfound",
		Rasenmaeher: Rasenmaeher{
			Init: Init{
				BaseURI: "https://localmaeher.dev.pvarki.fi:4439/",
				CSRJWT:  "",
			},
			Mtls: Mtls{
				BaseURI: "https://mtls.localmaeher.dev.pvarki.fi:4439/",
			},
			CertCN: "rasenmaeher",
		},
		Product: Product{
			DNS: "matrix.localmaeher.dev.pvarki.fi",
			API: "https://matrix.localmaeher.dev.pvarki.fi:4626/",
			URI: "https://matrix.localmaeher.dev.pvarki.fi:4626/",
		},
	}
}

// Load reads and parses the manifest at the given path without touching
// the process-wide cache. A missing file yields the default document.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in manifest %s: %w", path, err)
	}
	return &m, nil
}

var (
	mutex   sync.Mutex
	once    sync.Once
	path    = DefaultPath
	cached  *Manifest
	loadErr error
)

// SetPath overrides the manifest location, typically from the MANIFEST_PATH
// environment. It must be called before the first Get; once the document is
// memoized the path no longer matters.
func SetPath(p string) {
	mutex.Lock()
	defer mutex.Unlock()
	path = p
}

// Get returns the memoized process-wide manifest. The first call reads the
// filesystem, every later call returns the identical document even if the
// file changes or disappears. There is no live reload.
func Get() (*Manifest, error) {
	once.Do(func() {
		mutex.Lock()
		defer mutex.Unlock()
		cached, loadErr = Load(path)
	})
	return cached, loadErr
}

// MustGet is Get, but panics on a malformed manifest. Services call it at
// startup; a deployment with a broken manifest must not start serving.
func MustGet() *Manifest {
	m, err := Get()
	if err != nil {
		panic(err)
	}
	return m
}
