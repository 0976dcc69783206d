// internal/diag/recorder.go
package diag

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// Recorder persists page snapshots for offline diagnosis when a visit
// yields nothing. Every capture is best effort: a snapshot that cannot
// be written is logged and forgotten, never surfaced to the stage.
type Recorder struct {
	dir string
}

// NewRecorder creates a recorder writing under dir
func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// Dir returns the snapshot directory
func (r *Recorder) Dir() string {
	return r.dir
}

type snapshot struct {
	HTML       string
	Location   string
	Screenshot []byte
}

// CapturePage snapshots the current page of a chromedp session: the
// rendered HTML, a screenshot, a cleaned markdown rendition, and any
// data-bearing JS globals. Returns the base path of the written files,
// or "" when nothing could be captured.
func (r *Recorder) CapturePage(ctx context.Context, label string) string {
	var snap snapshot

	err := chromedp.Run(ctx,
		chromedp.Location(&snap.Location),
		chromedp.OuterHTML("html", &snap.HTML, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			shot, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				Do(ctx)
			if err != nil {
				// HTML alone is still worth keeping
				log.Warn().Err(err).Msg("Screenshot capture failed")
				return nil
			}
			snap.Screenshot = shot
			return nil
		}),
	)
	if err != nil {
		log.Warn().Err(err).Str("label", label).Msg("Page snapshot failed")
		return ""
	}

	return r.persist(label, snap)
}

// persist writes the snapshot files and returns their shared base path
func (r *Recorder) persist(label string, snap snapshot) string {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		log.Warn().Err(err).Str("dir", r.dir).Msg("Cannot create snapshot directory")
		return ""
	}

	base := filepath.Join(r.dir, fmt.Sprintf("%s_%s", label, time.Now().Format("20060102_150405")))

	if err := os.WriteFile(base+".html", []byte(snap.HTML), 0644); err != nil {
		log.Warn().Err(err).Msg("Cannot write HTML snapshot")
		return ""
	}

	if len(snap.Screenshot) > 0 {
		if err := os.WriteFile(base+".png", snap.Screenshot, 0644); err != nil {
			log.Warn().Err(err).Msg("Cannot write screenshot")
		}
	}

	if md, err := Markdown(snap.HTML, snap.Location); err != nil {
		log.Debug().Err(err).Msg("Markdown rendition failed")
	} else if err := os.WriteFile(base+".md", []byte(md), 0644); err != nil {
		log.Warn().Err(err).Msg("Cannot write markdown snapshot")
	}

	if globals := HarvestGlobals(snap.HTML, snap.Location); len(globals) > 0 {
		if data, err := json.MarshalIndent(globals, "", "  "); err == nil {
			if err := os.WriteFile(base+".globals.json", data, 0644); err != nil {
				log.Warn().Err(err).Msg("Cannot write globals snapshot")
			}
		}
	}

	log.Info().
		Str("label", label).
		Str("path", base).
		Str("url", snap.Location).
		Msg("Page snapshot saved")

	return base
}
