package utm

import (
	"net/url"
	"strings"
)

// Tracking parameter keys
const (
	KeySource   = "utm_source"
	KeyMedium   = "utm_medium"
	KeyCampaign = "utm_campaign"
	KeyTerm     = "utm_term"
	KeyContent  = "utm_content"
)

// Params holds the tracking values for one link
type Params struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

// WithPreset fills Source and Medium from the preset where they are empty.
// Values already set by the caller win over the preset.
func (p Params) WithPreset(preset ChannelPreset) Params {
	if strings.TrimSpace(p.Source) == "" {
		p.Source = preset.Source
	}
	if strings.TrimSpace(p.Medium) == "" {
		p.Medium = preset.Medium
	}
	return p
}

// BuildTrackingURL merges the tracking parameters into baseURL's query string.
//
// utm_source, utm_medium and utm_campaign always take the supplied values.
// utm_term and utm_content are written only when non-blank; a blank value
// does not remove one already present in baseURL. All other parameters keep
// their order and value, and everything outside the query is copied verbatim.
func BuildTrackingURL(baseURL string, p Params) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", &InvalidURLError{URL: baseURL, Reason: "url is empty"}
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", &InvalidURLError{URL: baseURL, Reason: "cannot parse url", Cause: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &InvalidURLError{URL: baseURL, Reason: "url must be absolute with scheme and host"}
	}

	head, rawQuery, fragment, hasFragment := splitURL(baseURL)

	query := ParseQuery(rawQuery)
	query.Set(KeySource, p.Source)
	query.Set(KeyMedium, p.Medium)
	query.Set(KeyCampaign, p.Campaign)
	query.SetIfNotBlank(KeyTerm, p.Term)
	query.SetIfNotBlank(KeyContent, p.Content)

	var b strings.Builder
	b.Grow(len(baseURL) + 64)
	b.WriteString(head)
	b.WriteByte('?')
	b.WriteString(query.Encode())
	if hasFragment && fragment != "" {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String(), nil
}

// splitURL cuts raw into the part before the query, the raw query and the
// fragment without re-encoding any of them.
func splitURL(raw string) (head, query, fragment string, hasFragment bool) {
	head, fragment, hasFragment = strings.Cut(raw, "#")
	head, query, _ = strings.Cut(head, "?")
	return head, query, fragment, hasFragment
}
