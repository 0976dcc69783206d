// internal/pages/league.go
package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/seurahaku/harava/internal/siteurl"
	"github.com/seurahaku/harava/pkg/models"
)

// WaitForTables blocks until the league page's standings tables render
func WaitForTables(ctx context.Context, timeout time.Duration) error {
	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(wctx, chromedp.WaitReady("table", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("no tables appeared: %w", err)
	}
	return nil
}

// ParseTeams extracts team links from a league page. Team links sit in
// the third cell of standings table rows; rows with fewer cells are
// header or spacer rows.
func ParseTeams(html, baseURL string) ([]models.Team, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing league page: %w", err)
	}

	var teams []models.Team
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 3 {
				return
			}
			cells.Eq(2).Find("a[href]").Each(func(_ int, link *goquery.Selection) {
				href := link.AttrOr("href", "")
				if !strings.Contains(href, "/team/") {
					return
				}
				name := strings.TrimSpace(link.Text())
				if name == "" {
					return
				}
				teams = append(teams, models.Team{
					Name: name,
					URL:  siteurl.Resolve(baseURL, href),
				})
			})
		})
	})

	return teams, nil
}
