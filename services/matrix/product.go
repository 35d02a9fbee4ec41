package main

import (
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/vitamiini-0/matrix-rmapi/core/pointers"
	"github.com/vitamiini-0/matrix-rmapi/core/productapi"
)

const (
	productShortname = "matrix"
	docsURL          = "https://pvarki.github.io/Docusaurus-docs/docs/android/deployapp/home/"
)

var infoMarkdownEN = texttemplate.Must(texttemplate.New("en").Parse(`## Matrix

Hello {{.Callsign}}! The Matrix messaging service is at your disposal.

Running on deployment "{{.Deployment}}"
`))

var infoMarkdownFI = texttemplate.Must(texttemplate.New("fi").Parse(`## Matrix

Terve {{.Callsign}}! Matrix-viestipalvelu on käytössäsi.

Pyörii deploymentissa "{{.Deployment}}"
`))

// newProduct returns the static response tables of the Matrix messaging
// product.
func newProduct(adminTemplate *htmltemplate.Template) *productapi.Product {
	icon := pointers.StringPtr("ui/" + productShortname + "/matrixlogo.svg")
	component := productapi.Component{
		Type: "component",
		Ref:  "/ui/" + productShortname + "/remoteEntry.js",
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
				Description: "Matrix messaging service",
				Language:    "en",
			},
			"fi": {
				Shortname:   productShortname,
				Title:       "Matrix",
				Icon:        nil,
				Description: `"tuote" integraatioiden testaamiseen`,
				Language:    "fi",
			},
		},
		DescriptionsV2: map[string]productapi.DescriptionExtended{
			"en": {
				Description: productapi.Description{
					Shortname:   productShortname,
					Title:       "Matrix",
					Icon:        icon,
					Description: "Matrix messaging service",
				},
				Docs:      docsURL,
				Component: component,
			},
			"fi": {
				Description: productapi.Description{
					Shortname:   productShortname,
					Title:       "Feikkituote",
					Icon:        icon,
					Description: `"tuote" integraatioiden testaamiseen`,
				},
				Docs:      docsURL,
				Component: component,
			},
			"sv": {
				Description: productapi.Description{
					Shortname:   productShortname,
					Title:       "Falsk produkt",
					Icon:        icon,
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
