// Package preferences reads and writes visitor preferences kept in cookies.
package preferences

import (
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	// ParticlesKey is the cookie holding the particle effects preference.
	ParticlesKey = "hus-show-particles"
	// MaxAge keeps preferences for a year.
	MaxAge = 365 * 24 * 60 * 60
)

// DecodeParticles reads the stored preference. Missing or malformed values mean "show".
func DecodeParticles(raw string) bool {
	if unescaped, err := url.QueryUnescape(raw); err == nil {
		raw = unescaped
	}
	var show bool
	if err := json.Unmarshal([]byte(raw), &show); err != nil {
		return true
	}
	return show
}

// EncodeParticles renders the preference as stored in the cookie.
func EncodeParticles(show bool) string {
	return strconv.FormatBool(show)
}

// ParticlesLabel is the toggle label for the current state.
func ParticlesLabel(show bool) string {
	if show {
		return "Hide particles"
	}
	return "Show particles"
}
