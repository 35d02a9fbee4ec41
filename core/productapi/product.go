package productapi

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Product is the static configuration that distinguishes one product
// integration service from another. All response content that is not
// computed from the manifest or the request comes from these tables.
type Product struct {
	// Shortname is the product slug used as key in dicts and urls.
	Shortname string

	// HealthCheckExtra is the free-form extra string of the health check.
	HealthCheckExtra string

	// DescriptionsV1 maps language codes to v1 descriptions. A language
	// without an entry is a 404, there is no fallback in v1.
	DescriptionsV1 map[string]Description

	// DescriptionsV2 maps language codes to extended descriptions. The
	// component ref may contain a "{language}" placeholder which is
	// substituted with the requested language.
	DescriptionsV2 map[string]DescriptionExtended

	// DefaultLanguage is the fallback language for v2 descriptions and
	// the info markdown. Unlike v1, these never fail on an unknown
	// language.
	DefaultLanguage string

	// InfoMarkdown maps language codes to the per-user markdown templates.
	// The templates see InfoData.
	InfoMarkdown map[string]*texttemplate.Template

	// FragmentTitles are the titles of the deprecated client instruction
	// fragments, one zip per title.
	FragmentTitles []string

	// AdminFragmentTemplate renders the deprecated admin instruction html.
	AdminFragmentTemplate *htmltemplate.Template
}

// InfoData is the template data for the per-user info markdown.
type InfoData struct {
	Callsign   string
	Deployment string
}
