package siteurl

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL performs comprehensive URL validation
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// Resolve resolves a possibly-relative href against a base URL and returns a string
func Resolve(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(u).String()
}

// PlayersURL rewrites a team info URL to its players page, where the
// roster and the officials section live.
func PlayersURL(teamURL string) string {
	return strings.ReplaceAll(teamURL, "/info", "/players")
}

// IsPlaceholderTeam reports whether a team URL points at the null-team
// placeholder the results service emits for unfilled fixture slots.
// Placeholder pages carry no roster and are skipped outright.
func IsPlaceholderTeam(teamURL string) bool {
	return strings.Contains(teamURL, "/team/0/")
}
