package productapi

// HealthCheckResponse tells RASENMAEHER whether the product is usable.
type HealthCheckResponse struct {
	Healthy bool   `json:"healthy"`
	Extra   string `json:"extra"`
}

// OperationResult is the generic acknowledgement for notification endpoints.
type OperationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// UserCRUDRequest is the user lifecycle notification RASENMAEHER sends when
// a device certificate is created, revoked, promoted, demoted or updated.
// The certificate material is carried verbatim and not verified here.
type UserCRUDRequest struct {
	UUID     string `json:"uuid"`
	Callsign string `json:"callsign"`
	Cert     string `json:"x509cert"`
}

// Description is the v1 product description shown in the portal.
type Description struct {
	Shortname   string  `json:"shortname"`
	Title       string  `json:"title"`
	Icon        *string `json:"icon"`
	Description string  `json:"description"`
	Language    string  `json:"language"`
}

// Component tells the portal UI how to render the product entry point.
// Type is one of "link", "markdown" or "component".
type Component struct {
	Type string `json:"type"`
	Ref  string `json:"ref"`
}

// DescriptionExtended is the v2 product description. Unlike v1 it resolves
// for every language, falling back to the default language table entry.
type DescriptionExtended struct {
	Description
	Docs      string    `json:"docs"`
	Component Component `json:"component"`
}

// InstructionFragment is one downloadable item of the deprecated client
// fragment response. Data is a base64 data URI wrapping a zip archive.
type InstructionFragment struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

// AdminFragment is the deprecated server-rendered admin instruction snippet.
type AdminFragment struct {
	HTML string `json:"html"`
}

// InstructionsResponse is the placeholder user instructions payload.
type InstructionsResponse struct {
	Callsign     string `json:"callsign"`
	Instructions string `json:"instructions"`
	Language     string `json:"language"`
}
