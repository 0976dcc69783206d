// internal/pages/collector.go
package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/siteurl"
	"github.com/seurahaku/harava/pkg/models"
)

// SiteCollector drives a live browser session against the results
// service. Methods expect ctx to be a chromedp context owned by the
// calling stage; the collector itself holds no browser state.
type SiteCollector struct {
	site    config.SiteConfig
	settle  time.Duration
	timeout time.Duration
}

// NewCollector creates a collector bound to the configured site
func NewCollector(cfg *config.Config) *SiteCollector {
	return &SiteCollector{
		site:    cfg.Site,
		settle:  cfg.Delays.PageLoadDuration(),
		timeout: cfg.Browser.NavTimeout,
	}
}

// Leagues opens the categories page, applies the configured filters
// and extracts the league list.
func (c *SiteCollector) Leagues(ctx context.Context) ([]models.League, error) {
	if err := Visit(ctx, c.site.CategoriesURL, c.settle); err != nil {
		return nil, err
	}

	if err := ApplyFilters(ctx, c.site.Filters); err != nil {
		return nil, fmt.Errorf("applying filters: %w", err)
	}

	if err := WaitForResults(ctx, c.timeout); err != nil {
		return nil, err
	}

	html, location, err := CurrentHTML(ctx)
	if err != nil {
		return nil, err
	}

	return ParseLeagues(html, location, c.seasonBanner())
}

// Teams opens a league page and extracts its team links. A league page
// without tables yields an empty list, not an error; the stage decides
// what an empty league means.
func (c *SiteCollector) Teams(ctx context.Context, leagueURL string) ([]models.Team, error) {
	if err := Visit(ctx, leagueURL, c.settle); err != nil {
		return nil, err
	}

	if err := WaitForTables(ctx, c.timeout); err != nil {
		log.Warn().Str("url", leagueURL).Err(err).Msg("League page has no tables")
		return nil, nil
	}

	html, location, err := CurrentHTML(ctx)
	if err != nil {
		return nil, err
	}

	return ParseTeams(html, location)
}

// Contact opens a team's roster page and extracts its administrator
// contact. Returns ErrNoContact when the page renders but lists no
// official with an email.
func (c *SiteCollector) Contact(ctx context.Context, teamURL string) (*models.Official, error) {
	playersURL := siteurl.PlayersURL(teamURL)

	if err := Visit(ctx, playersURL, c.settle); err != nil {
		return nil, err
	}

	if err := WaitForOfficials(ctx, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoContact, playersURL)
	}

	html, _, err := CurrentHTML(ctx)
	if err != nil {
		return nil, err
	}

	officials, err := ParseOfficials(html)
	if err != nil {
		return nil, err
	}

	contact := SelectContact(officials)
	if contact == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoContact, playersURL)
	}

	return contact, nil
}

// seasonBanner is the header line each result card repeats, derived
// from the applied area and sport labels plus the current year, e.g.
// "Etelä Jalkapallo 2025".
func (c *SiteCollector) seasonBanner() string {
	label := func(value string) string {
		if l, ok := filterLabels[value]; ok {
			return l
		}
		return value
	}
	return fmt.Sprintf("%s %s %d", label(c.site.Filters.Area), label(c.site.Filters.Sport), time.Now().Year())
}
