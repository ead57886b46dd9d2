// ABOUTME: Shared API response models for the roadmap backend
// ABOUTME: JSON-serializable structures matching client expectations

package models

import "time"

// CatalogueResponse lists the operation catalogue with its resolved
// site defaults.
type CatalogueResponse struct {
	Operations []OperationDefinition `json:"operations"`
	Phases     []Phase               `json:"phases"`
	Metadata   Metadata              `json:"metadata"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
