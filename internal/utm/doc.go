// Package utm builds campaign tracking links for listing URLs.
//
// A tracking link is the listing URL with the five conventional analytics
// parameters merged into its query string:
//
//	utm_source, utm_medium, utm_campaign   always written
//	utm_term, utm_content                  written only when non-blank
//
// Existing query parameters keep their position and value unless they are one
// of the keys being written. Scheme, authority, path and fragment of the input
// are copied through unchanged.
//
// Example usage:
//
//	preset, err := utm.ResolveChannel("Pinterest (organic)")
//	if err != nil {
//	    return err
//	}
//	params := utm.Params{Campaign: "spring_launch_2025"}.WithPreset(preset)
//	link, err := utm.BuildTrackingURL("https://www.etsy.com/listing/123/item", params)
//
// The package holds no state and does no logging; failures are reported only
// through the typed errors in errors.go.
package utm
