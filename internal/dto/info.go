package dto

// VersionResponse defines the body returned by the info endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
