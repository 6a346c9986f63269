package model

// MediaSize is one rendition of an uploaded image.
type MediaSize struct {
	SourceURL string `json:"source_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Media is the subset of a media item needed to show a featured image.
type Media struct {
	ID           int    `json:"id"`
	SourceURL    string `json:"source_url"`
	MediaDetails *struct {
		Sizes map[string]MediaSize `json:"sizes"`
	} `json:"media_details"`
}

// FullSizeURL returns the URL of the "full" rendition, or "" when the media has no details.
func (m Media) FullSizeURL() string {
	if m.MediaDetails == nil {
		return ""
	}
	return m.MediaDetails.Sizes["full"].SourceURL
}
