package utm

// ChannelPreset is the default source/medium pairing for a marketing channel
type ChannelPreset struct {
	Channel string `json:"channel"`
	Source  string `json:"source"`
	Medium  string `json:"medium"`
}

// Channel names, in the order they are offered to users
const (
	ChannelPinterestOrganic = "Pinterest (organic)"
	ChannelPinterestAds     = "Pinterest Ads"
	ChannelGoogleOrganic    = "Google (organic)"
	ChannelGoogleAdsSearch  = "Google Ads (Search)"
	ChannelInstagramOrganic = "Instagram (organic)"
	ChannelInstagramAds     = "Instagram Ads"
)

var presets = [...]ChannelPreset{
	{Channel: ChannelPinterestOrganic, Source: "pinterest", Medium: "social"},
	{Channel: ChannelPinterestAds, Source: "pinterest", Medium: "cpc"},
	{Channel: ChannelGoogleOrganic, Source: "google", Medium: "organic"},
	{Channel: ChannelGoogleAdsSearch, Source: "google", Medium: "cpc"},
	{Channel: ChannelInstagramOrganic, Source: "instagram", Medium: "social"},
	{Channel: ChannelInstagramAds, Source: "instagram", Medium: "cpc"},
}

// Channels returns every preset in display order
func Channels() []ChannelPreset {
	out := make([]ChannelPreset, len(presets))
	copy(out, presets[:])
	return out
}

// ResolveChannel looks up the preset for an exact channel name
func ResolveChannel(name string) (ChannelPreset, error) {
	for _, p := range presets {
		if p.Channel == name {
			return p, nil
		}
	}
	return ChannelPreset{}, &UnknownChannelError{Channel: name}
}
