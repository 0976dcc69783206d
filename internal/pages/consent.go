// internal/pages/consent.go
package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// The site uses a Cybot cookie banner. Selectors ordered by
// preference: allow-all first, then accept, then decline, then plain
// close, then the generic fallbacks some subpages use.
const consentScript = `(() => {
	if (!document.getElementById('CybotCookiebotDialog')) { return ''; }
	const selectors = [
		'#CybotCookiebotDialogBodyLevelButtonLevelOptinAllowAll',
		'#CybotCookiebotDialogBodyButtonAccept',
		'#CybotCookiebotDialogBodyButtonDecline',
		'.CybotCookiebotBannerCloseButton',
		'.cookie-accept',
		'[data-accept-cookies]',
	];
	for (const sel of selectors) {
		const btn = document.querySelector(sel);
		if (btn) { btn.click(); return sel; }
	}
	return 'unhandled';
})()`

// DismissConsent clicks the cookie consent dialog away if present.
// Returns the selector that was clicked, or "" when no dialog was
// shown.
func DismissConsent(ctx context.Context) (string, error) {
	var clicked string
	if err := chromedp.Run(ctx, chromedp.Evaluate(consentScript, &clicked)); err != nil {
		return "", fmt.Errorf("consent dialog check failed: %w", err)
	}

	switch clicked {
	case "":
		log.Debug().Msg("No cookie consent dialog")
	case "unhandled":
		log.Warn().Msg("Cookie consent dialog present but no known button found")
	default:
		log.Debug().Str("selector", clicked).Msg("Dismissed cookie consent dialog")
		// Let the banner animate out before the caller reads the DOM
		_ = chromedp.Run(ctx, chromedp.Sleep(time.Second))
	}

	return clicked, nil
}
