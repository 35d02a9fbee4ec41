package main

import (
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/vitamiini-0/matrix-rmapi/core/productapi"
)

const (
	productShortname = "matrix"
	docsURL          = "https://pvarki.github.io/Docusaurus-docs/docs/android/deployapp/home/"

	// the fake product has no UI of its own, the portal renders our v2
	// info markdown through the RASENMAEHER product proxy
	infoMarkdownRef = "/api/v1/product/proxy/" + productShortname + "/api/v2/clients/{language}/info.md"
)

var infoMarkdownEN = texttemplate.Must(texttemplate.New("en").Parse(`## Matrix product

Hello {{.Callsign}}! This is a minimal example integration for integration developers' reference.

Running on deployment "{{.Deployment}}"
`))

var infoMarkdownFI = texttemplate.Must(texttemplate.New("fi").Parse(`## Feikkituote

Terve {{.Callsign}}! Tämä on esimerkki tuoteintegraatioiden kehittäjille.

Pyörii deploymentissa "{{.Deployment}}"
`))

// newProduct returns the static response tables of the fake reference
// product.
func newProduct(adminTemplate *htmltemplate.Template) *productapi.Product {
	component := productapi.Component{
		Type: "markdown",
		Ref:  infoMarkdownRef,
	}

	return &productapi.Product{
		Shortname:        productShortname,
		HealthCheckExtra: "Dummy, nothing actually checked",
		DefaultLanguage:  "en",
		DescriptionsV1: map[string]productapi.Description{
			"en": {
				Shortname:   productShortname,
				Title:       "Matrix",
				Icon:        nil,
				Description: "Matrix product",
				Language:    "en",
			},
			"fi": {
				Shortname:   productShortname,
				Title:       "Feikkituote",
				Icon:        nil,
				Description: `"tuote" integraatioiden testaamiseen`,
				Language:    "fi",
			},
		},
		DescriptionsV2: map[string]productapi.DescriptionExtended{
			"en": {
				Description: productapi.Description{
					Shortname:   productShortname,
					Title:       "Matrix Product",
					Icon:        nil,
					Description: "Matrix product for integrations testing and examples",
				},
				Docs:      docsURL,
				Component: component,
			},
			"fi": {
				Description: productapi.Description{
					Shortname:   productShortname,
					Title:       "Feikkituote",
					Icon:        nil,
					Description: `"tuote" integraatioiden testaamiseen`,
				},
				Docs:      docsURL,
				Component: component,
			},
			"sv": {
				Description: productapi.Description{
					Shortname:   productShortname,
					Title:       "Falsk produkt",
					Icon:        nil,
					Description: "Falsk produkt för integrationstestning och exempel",
				},
				Docs:      docsURL,
				Component: component,
			},
		},
		InfoMarkdown: map[string]*texttemplate.Template{
			"en": infoMarkdownEN,
			"fi": infoMarkdownFI,
		},
		FragmentTitles:        []string{"iMatrix", "aMatrix"},
		AdminFragmentTemplate: adminTemplate,
	}
}
