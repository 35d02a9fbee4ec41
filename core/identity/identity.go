/*Package identity handles the caller identity injected by the mTLS
terminating reverse proxy.

The proxy validates the client certificate and forwards the certificate
subject DN in a trusted header. This package parses that header into an
attribute set, stores it in the request context and provides the predicate
that decides whether a request originates from RASENMAEHER.
*/
package identity

import (
	"context"
	"errors"
	"strings"
)

// HeaderName is the trusted header the reverse proxy uses to forward the
// validated client certificate subject DN.
const HeaderName = "X-ClientCert-DN"

// contextKey is the type for context keys. Go linter does not like plain strings
type contextKey string

// the predefined context key
const (
	contextKeyAttributes contextKey = "_identity_attributes_"
)

// ErrUnauthorizedOrigin is returned by VerifyAuthority when the caller is
// not RASENMAEHER. It maps to http.StatusForbidden at the API boundary.
var ErrUnauthorizedOrigin = errors.New("caller CN does not match the authority CN")

// Attributes is the attribute set parsed from a certificate subject DN,
// e.g. "CN", "O", "L", "ST", "C". Keys are case-sensitive as received.
type Attributes map[string]string

// ParseDN parses a subject DN string of the form "CN=foo,O=bar,..." into
// an attribute set. The empty string yields an empty set. Segments without
// a '=' are ignored; for repeated keys the last occurrence wins.
func ParseDN(dn string) Attributes {
	attributes := Attributes{}
	for _, segment := range strings.Split(dn, ",") {
		segment = strings.TrimSpace(segment)
		key, value, found := strings.Cut(segment, "=")
		if !found || key == "" {
			continue
		}
		attributes[key] = value
	}
	return attributes
}

// CommonName returns the CN attribute, or the empty string if the set has
// no CN.
func (a Attributes) CommonName() string {
	return a["CN"]
}

// VerifyAuthority returns nil if the attributes carry a CN equal to the
// configured authority CN. The comparison is exact string equality, no
// case folding and no normalization. A missing CN fails closed.
func VerifyAuthority(a Attributes, certcn string) error {
	cn, ok := a["CN"]
	if !ok || cn != certcn {
		return ErrUnauthorizedOrigin
	}
	return nil
}

// ContextWithAttributes returns a new context with the attribute set added to it
func ContextWithAttributes(ctx context.Context, a Attributes) context.Context {
	return context.WithValue(ctx, contextKeyAttributes, a)
}

// AttributesFromContext retrieves the attribute set from the context. It
// returns nil if no identity middleware has run for this request.
func AttributesFromContext(ctx context.Context) Attributes {
	a, ok := ctx.Value(contextKeyAttributes).(Attributes)
	if ok {
		return a
	}
	return nil
}
