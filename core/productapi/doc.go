/*
Package productapi implements the generic RASENMAEHER product integration
API.

The package provides the full HTTP surface a product integration exposes
towards RASENMAEHER and the portal UI: user lifecycle notifications,
versioned product descriptions, health checks and canned user instruction
fragments. The two services in this repository are thin configurations of
this one package; they differ only in their static response tables, which
they pass in as a Product.

Every handler is stateless. Caller authentication happens upstream in the
mTLS terminating reverse proxy, which forwards the validated certificate
subject DN in a trusted header; handlers only decide per route whether
they require the header's presence, a full authority CN match, or nothing
at all.
*/
package productapi
