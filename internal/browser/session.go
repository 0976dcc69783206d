// internal/browser/session.go
package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// Options configures a browser session
type Options struct {
	Headless   bool
	WindowSize string // "1920x1080" or "1920,1080"
	ChromePath string
	UserAgent  string
	Proxy      string
	ExtraArgs  []chromedp.ExecAllocatorOption
}

// Session owns one Chrome process and one tab. The pipeline visits
// pages sequentially, so a single warm session per stage is enough and
// keeps state (cookies, consent) across page loads within the stage.
type Session struct {
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	closed        bool
}

// NewSession starts Chrome and warms it up on a blank page
func NewSession(parent context.Context, opts Options) (*Session, error) {
	chromePath := Locate(opts.ChromePath)

	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("disable-client-side-phishing-detection", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-hang-monitor", true),
		chromedp.Flag("disable-prompt-on-repost", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("log-level", "3"),
		chromedp.Flag("metrics-recording-only", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("window-size", normalizeWindowSize(opts.WindowSize)),
		chromedp.Flag("disk-cache-size", "0"),
	}

	if chromePath != "" {
		allocOpts = append([]chromedp.ExecAllocatorOption{chromedp.ExecPath(chromePath)}, allocOpts...)
	}

	if opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", "new"))
	} else {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}

	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	if opts.Proxy != "" {
		allocOpts = append(allocOpts, chromedp.ProxyServer(opts.Proxy))
	}

	allocOpts = append(allocOpts, opts.ExtraArgs...)

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	log.Debug().
		Bool("headless", opts.Headless).
		Str("chrome", chromePath).
		Msg("Browser session ready")

	return &Session{
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Context returns the chromedp context for running tasks in this session
func (s *Session) Context() context.Context {
	return s.browserCtx
}

// Close shuts down the tab and the Chrome process
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.browserCancel()
	s.allocCancel()

	log.Debug().Msg("Browser session closed")
	return nil
}

// WithSession runs fn inside a fresh browser session and guarantees
// the session is closed afterwards, whatever fn returns.
func WithSession(ctx context.Context, opts Options, fn func(ctx context.Context) error) error {
	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	return fn(session.Context())
}

// normalizeWindowSize converts "WxH" to the "W,H" form Chrome expects
func normalizeWindowSize(size string) string {
	if size == "" {
		return "1920,1080"
	}
	return strings.ReplaceAll(strings.TrimSpace(size), "x", ",")
}
