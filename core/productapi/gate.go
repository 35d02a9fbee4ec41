package productapi

import (
	"net/http"

	"github.com/vitamiini-0/matrix-rmapi/core/identity"
	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// gate is the per-route access policy. The health check and the deprecated
// fragment endpoints only require that the proxy authenticated somebody,
// while the notification endpoints require the caller to be RASENMAEHER
// itself. This distinction is deliberate, do not collapse it into one
// blanket policy.
type gate int

const (
	// gatePublic routes are reachable without the identity header.
	gatePublic gate = iota
	// gateIdentity routes require the identity header to be present.
	gateIdentity
	// gateAuthority routes additionally require the caller CN to equal
	// the manifest's RASENMAEHER CN.
	gateAuthority
)

// gated wraps a handler with the identity checks for the given gate. The
// parsed attributes are stored in the request context and the caller CN is
// attached to the request logger. The decision is made fresh on every
// request.
func (a *API) gated(g gate, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if g == gatePublic {
			h(w, r)
			return
		}

		dn := r.Header.Get(identity.HeaderName)
		if dn == "" {
			writeProblem(w, http.StatusForbidden, "identity header missing")
			return
		}

		attributes := identity.ParseDN(dn)
		ctx := identity.ContextWithAttributes(r.Context(), attributes)
		ctx, rlog := logger.ContextWithLoggerIdentity(ctx, attributes.CommonName())

		if g == gateAuthority {
			if err := identity.VerifyAuthority(attributes, a.manifest.Rasenmaeher.CertCN); err != nil {
				rlog.Warnln("rejected call to", r.URL.Path, "from", attributes.CommonName())
				writeProblem(w, http.StatusForbidden, err.Error())
				return
			}
		}

		h(w, r.WithContext(ctx))
	}
}
