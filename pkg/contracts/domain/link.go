package domain

// Channel is a marketing channel with its default source and medium
type Channel struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Medium string `json:"medium"`
}

// TrackingLink is a built campaign link and the parameters that went into it
type TrackingLink struct {
	URL      string `json:"url"`
	BaseURL  string `json:"base_url"`
	Channel  string `json:"channel,omitempty"`
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}
