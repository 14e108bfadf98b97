// Package api contains HTTP request contracts for the dashboard API.
// Version v1 represents the current stable API version.
package api

// MsgMissingURL is shown when a link is requested without a listing URL
const MsgMissingURL = "Please enter a listing URL."

// LinkRequest asks for a campaign tracking link. When Channel is set its
// preset fills Source and Medium unless they are given explicitly.
type LinkRequest struct {
	URL      string `json:"url" validate:"required,max=2048"`
	Channel  string `json:"channel,omitempty" validate:"omitempty,max=64"`
	Source   string `json:"source,omitempty" validate:"required_without=Channel,max=128"`
	Medium   string `json:"medium,omitempty" validate:"required_without=Channel,max=128"`
	Campaign string `json:"campaign" validate:"required,max=128"`
	Term     string `json:"term,omitempty" validate:"max=128"`
	Content  string `json:"content,omitempty" validate:"max=128"`
}

// ExportRequest names a table and an output format
type ExportRequest struct {
	Table  string `json:"table" validate:"required,max=64"`
	Format string `json:"format" validate:"required,oneof=csv pdf xlsx"`
	Title  string `json:"title,omitempty" validate:"max=200"`
}

// TableRequest pages through the rows of a table
type TableRequest struct {
	Offset int `json:"offset" query:"offset" validate:"min=0"`
	Limit  int `json:"limit" query:"limit" validate:"min=0,max=1000"`
}

// ClientLogRequest carries a log entry reported by the dashboard page
type ClientLogRequest struct {
	Level   string                 `json:"level" validate:"omitempty,oneof=debug info warn error"`
	Message string                 `json:"message" validate:"required,max=2000"`
	Source  string                 `json:"source,omitempty" validate:"max=128"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
