// internal/pages/visit.go
package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// Visit navigates the session tab to url, dismisses the cookie consent
// dialog if one appears, and waits settle for client-side rendering.
// Callers read the DOM afterwards via CurrentHTML, once their own
// waits have run.
func Visit(ctx context.Context, url string, settle time.Duration) error {
	start := time.Now()

	// Scope the network listener to this visit so listeners do not pile
	// up on the long-lived session context.
	vctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var statusCode int64
	chromedp.ListenTarget(vctx, func(ev interface{}) {
		switch ev := ev.(type) {
		case *network.EventResponseReceived:
			if ev.Response.URL == url {
				statusCode = ev.Response.Status
			}
		}
	})

	if err := chromedp.Run(vctx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.Sleep(300*time.Millisecond),
	); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}

	// Best effort; a page without the dialog is the common case
	if _, err := DismissConsent(vctx); err != nil {
		log.Debug().Err(err).Msg("Consent check failed")
	}

	if settle > 0 {
		if err := chromedp.Run(vctx, chromedp.Sleep(settle)); err != nil {
			return err
		}
	}

	log.Debug().
		Str("url", url).
		Int64("status", statusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Page visited")

	return nil
}

// CurrentHTML reads the rendered document and its location, after the
// caller's clicks and waits have settled the page.
func CurrentHTML(ctx context.Context) (html string, location string, err error) {
	err = chromedp.Run(ctx,
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	return html, location, err
}
