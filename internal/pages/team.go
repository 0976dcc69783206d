// internal/pages/team.go
package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/pkg/models"
)

// AdminPosition is the Finnish title of the team administrator role
// prioritized when picking the contact.
const AdminPosition = "Joukkueenjohtaja"

// ErrNoContact reports that a team's roster page had no official with
// an email address.
var ErrNoContact = errors.New("no administrator contact with email found")

// WaitForOfficials blocks until the officials section renders
func WaitForOfficials(ctx context.Context, timeout time.Duration) error {
	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(wctx, chromedp.WaitReady(".activeofficials", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("officials section never appeared: %w", err)
	}
	return nil
}

// ParseOfficials extracts the officials listed on a team's roster
// page. Each row of the officials table carries the position in its
// first cell and the person in the namefield cell, with email and
// phone as mailto:/tel: links somewhere in that cell. The site nests
// the contact links inside the name anchor in the live DOM, but
// serializing and re-parsing that markup splits the anchors apart, so
// contacts are searched at the cell level. Officials without an email
// are dropped here; email is the join key downstream.
func ParseOfficials(html string) ([]models.Official, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing roster page: %w", err)
	}

	section := doc.Find(".activeofficials").First()
	if section.Length() == 0 {
		return nil, nil
	}

	var officials []models.Official
	section.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		position := strings.TrimSpace(cells.Eq(0).Text())

		nameCell := row.Find(".namefield").First()
		if nameCell.Length() == 0 {
			return
		}

		// The person's name is the first anchor that is not itself a
		// contact link, with any nested contact block stripped.
		name := ""
		found := false
		nameCell.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href := link.AttrOr("href", "")
			if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
				return true
			}
			clone := link.Clone()
			clone.Find("div").Remove()
			name = strings.TrimSpace(clone.Text())
			found = true
			return false
		})
		if !found {
			return
		}

		var email, phone string
		nameCell.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			href := link.AttrOr("href", "")
			switch {
			case strings.HasPrefix(href, "mailto:"):
				if email == "" {
					email = strings.TrimPrefix(href, "mailto:")
				}
			case strings.HasPrefix(href, "tel:"):
				if phone == "" {
					phone = strings.TrimPrefix(href, "tel:")
				}
			}
		})

		if email == "" {
			log.Debug().Str("name", name).Str("position", position).Msg("Official without email, dropped")
			return
		}

		officials = append(officials, models.Official{
			Name:     name,
			Position: position,
			Email:    email,
			Phone:    phone,
		})
	})

	return officials, nil
}

// SelectContact picks the team's contact from its officials: the
// administrator when one is listed, otherwise the first official with
// an email. Returns nil when the list is empty.
func SelectContact(officials []models.Official) *models.Official {
	for i := range officials {
		if strings.Contains(officials[i].Position, AdminPosition) {
			return &officials[i]
		}
	}
	if len(officials) > 0 {
		return &officials[0]
	}
	return nil
}
