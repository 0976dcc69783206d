// Package pipeline implements the three-stage collection run:
// categories to leagues.json, leagues to teams.json, teams to
// contacts.csv. Each stage consumes its predecessor's artifact and
// writes its own in one pass; a generic runner enforces the shared
// precondition, resume and dry-run behavior.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/seurahaku/harava/pkg/models"
)

// Options are the run parameters shared by every stage
type Options struct {
	// Delay is the politeness pause between page visits and between
	// stages in a full run.
	Delay time.Duration
	// Resume makes a stage a no-op when its output artifact already
	// exists. Presence only; contents are not validated.
	Resume bool
	// DryRun validates preconditions and logs intent without touching
	// the network or the filesystem.
	DryRun bool
}

// Stage is one unit of the pipeline
type Stage interface {
	Name() string
	// RequiredInput is the upstream artifact path, "" when the stage
	// has no upstream.
	RequiredInput() string
	OutputPath() string
	// Execute performs the stage's page visits and writes its
	// artifact. The runner has already handled preconditions, resume
	// and dry-run when this is called.
	Execute(ctx context.Context, opts Options) (*StageResult, error)
}

// Collector extracts records from the live site. The production
// implementation drives a browser; tests substitute a fake.
type Collector interface {
	Leagues(ctx context.Context) ([]models.League, error)
	Teams(ctx context.Context, leagueURL string) ([]models.Team, error)
	Contact(ctx context.Context, teamURL string) (*models.Official, error)
}

// SessionFunc opens a page session, runs fn inside it and guarantees
// the session is released. Production wires browser.WithSession here.
type SessionFunc func(ctx context.Context, fn func(ctx context.Context) error) error

// newBar builds the per-item progress bar. A nil writer disables it,
// which is what tests and JSON-log runs want.
func newBar(out io.Writer, total int, description string) *progressbar.ProgressBar {
	if out == nil {
		return progressbar.NewOptions(total,
			progressbar.OptionSetWriter(io.Discard),
			progressbar.OptionSetVisibility(false),
		)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}
