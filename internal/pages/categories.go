// internal/pages/categories.go
package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/siteurl"
	"github.com/seurahaku/harava/pkg/models"
)

// Filter buttons on the categories page are matched by their value
// attribute first, with the visible Finnish label as a fallback when
// the markup changes.
var filterLabels = map[string]string{
	"football": "Jalkapallo",
	"spletela": "Etelä",
	"league":   "Sarja/cup",
	"B":        "Pojat",
}

// Bilingual descriptors recorded in the leagues artifact metadata
var filterDescriptors = map[string]string{
	"football": "Jalkapallo (Football)",
	"spletela": "Etelä (South)",
	"league":   "Sarja/cup (Leagues and Cups)",
	"B":        "Pojat (Boys)",
}

const (
	filterSettle  = 2 * time.Second
	resultsSettle = 5 * time.Second
	scrollSettle  = 3 * time.Second
)

// ApplyFilters clicks the sport, area, competition type and gender
// buttons in order. An empty value skips that filter. After the last
// click it closes any date picker overlay and scrolls to the bottom to
// trigger lazy loading.
func ApplyFilters(ctx context.Context, filters config.FilterValues) error {
	for _, value := range []string{filters.Sport, filters.Area, filters.Type, filters.Gender} {
		if value == "" {
			continue
		}
		if err := clickFilter(ctx, value); err != nil {
			return err
		}
	}

	closeOverlays(ctx)

	if err := chromedp.Run(ctx,
		chromedp.Sleep(resultsSettle),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(scrollSettle),
	); err != nil {
		return fmt.Errorf("settling filtered results: %w", err)
	}

	return nil
}

// clickFilter clicks a single filter button. The click goes through
// JavaScript so it works even when a floating element overlaps the
// button.
func clickFilter(ctx context.Context, value string) error {
	label := filterLabels[value]
	if label == "" {
		label = value
	}

	script := fmt.Sprintf(`(() => {
		let btn = document.querySelector('button[value=%q]');
		if (!btn) {
			const label = %q.toLowerCase();
			for (const b of document.querySelectorAll('button.v-btn')) {
				if (b.textContent.toLowerCase().includes(label)) { btn = b; break; }
			}
		}
		if (!btn) { return false; }
		btn.scrollIntoView({block: 'center'});
		btn.click();
		return true;
	})()`, value, label)

	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &clicked)); err != nil {
		return fmt.Errorf("clicking filter %q: %w", value, err)
	}
	if !clicked {
		return fmt.Errorf("filter button %q not found on page", value)
	}

	log.Debug().Str("filter", value).Msg("Filter applied")

	return chromedp.Run(ctx, chromedp.Sleep(filterSettle))
}

// Selecting the competition type can pop a date picker. Close it via
// its close button, the overlay scrim, or a confirm button, whichever
// exists.
const closeOverlaysScript = `(() => {
	const close = document.querySelector("button.v-dialog__close, button[aria-label='Close'], i.v-icon.notranslate.mdi.mdi-close");
	if (close) { close.click(); return 'close'; }
	const scrim = document.querySelector('.v-overlay__scrim');
	if (scrim) { scrim.click(); return 'scrim'; }
	for (const b of document.querySelectorAll('button')) {
		const t = b.textContent;
		if (t.includes('OK') || t.includes('Valitse') || t.includes('Vahvista')) {
			b.click();
			return 'confirm';
		}
	}
	return '';
})()`

func closeOverlays(ctx context.Context) {
	var closed string
	if err := chromedp.Run(ctx, chromedp.Evaluate(closeOverlaysScript, &closed)); err != nil {
		log.Debug().Err(err).Msg("Overlay check failed")
		return
	}
	if closed != "" {
		log.Debug().Str("via", closed).Msg("Closed overlay")
		_ = chromedp.Run(ctx, chromedp.Sleep(time.Second))
	}
}

// WaitForResults blocks until the results container renders
func WaitForResults(ctx context.Context, timeout time.Duration) error {
	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(wctx, chromedp.WaitReady("#results", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("results container never appeared: %w", err)
	}
	return nil
}

// ParseLeagues extracts league and cup links from the filtered
// categories page. Only anchors inside the results container that
// point at a category page count. Each result card repeats the season
// banner line, which is skipped when picking the league name.
func ParseLeagues(html, baseURL, banner string) ([]models.League, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing categories page: %w", err)
	}

	var leagues []models.League
	doc.Find("#results a[href]").Each(func(_ int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		if !strings.Contains(href, "/category/") {
			return
		}
		name := leagueName(link, banner)
		if name == "" {
			return
		}
		leagues = append(leagues, models.League{
			Name: name,
			URL:  siteurl.Resolve(baseURL, href),
		})
	})

	return leagues, nil
}

// leagueName picks the first meaningful text line of a result card.
// Candidates are the anchor's own text followed by its leaf divs, in
// document order.
func leagueName(link *goquery.Selection, banner string) string {
	var candidates []string
	if own := strings.TrimSpace(ownText(link)); own != "" {
		candidates = append(candidates, own)
	}
	link.Find("div").Each(func(_ int, div *goquery.Selection) {
		if div.Children().Filter("div").Length() > 0 {
			return
		}
		if t := strings.TrimSpace(div.Text()); t != "" {
			candidates = append(candidates, t)
		}
	})

	for _, c := range candidates {
		if c != banner {
			return c
		}
	}
	return ""
}

// ownText returns the text of s's direct text nodes, without
// descendant elements.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
		}
	})
	return b.String()
}

// FilterDescriptors builds the filters_applied metadata block for the
// leagues artifact. Unknown filter values fall back to the raw value.
func FilterDescriptors(filters config.FilterValues) models.FiltersApplied {
	describe := func(value string) string {
		if d, ok := filterDescriptors[value]; ok {
			return d
		}
		return value
	}
	return models.FiltersApplied{
		Sport:  describe(filters.Sport),
		Area:   describe(filters.Area),
		Type:   describe(filters.Type),
		Gender: describe(filters.Gender),
		Age:    "All ages",
	}
}
