// internal/pipeline/categories.go
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/artifact"
	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/diag"
	"github.com/seurahaku/harava/internal/pages"
	"github.com/seurahaku/harava/pkg/models"
)

// CategoriesStage opens the categories page, applies the configured
// filters and writes the discovered leagues as leagues.json.
type CategoriesStage struct {
	cfg       *config.Config
	collector Collector
	session   SessionFunc
	recorder  *diag.Recorder
}

// NewCategoriesStage builds the first pipeline stage
func NewCategoriesStage(cfg *config.Config, collector Collector, session SessionFunc, recorder *diag.Recorder) *CategoriesStage {
	return &CategoriesStage{cfg: cfg, collector: collector, session: session, recorder: recorder}
}

func (s *CategoriesStage) Name() string { return "categories" }

// RequiredInput is empty; the categories stage starts the pipeline
func (s *CategoriesStage) RequiredInput() string { return "" }

func (s *CategoriesStage) OutputPath() string { return s.cfg.Output.LeaguesFile }

// Execute collects the league list in one browser session. Zero
// leagues after filtering is a stage failure, not an empty artifact:
// an empty leagues.json would silently starve the rest of the
// pipeline, and the snapshot shows what the page looked like instead.
func (s *CategoriesStage) Execute(ctx context.Context, opts Options) (*StageResult, error) {
	var leagues []models.League

	err := s.session(ctx, func(bctx context.Context) error {
		var err error
		leagues, err = s.collector.Leagues(bctx)
		if err != nil {
			capture(s.recorder, bctx, "categories_failed")
			return NewStageError(ErrCodeNavigation, s.Name(), "collecting leagues failed", err)
		}
		if len(leagues) == 0 {
			capture(s.recorder, bctx, "no_leagues")
			return NewStageError(ErrCodeNoResults, s.Name(), "no leagues found after filtering", ErrNoResults)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int("leagues", len(leagues)).Msg("Leagues collected")

	doc := &models.LeaguesDocument{
		Timestamp:      time.Now().Format(time.RFC3339),
		FiltersApplied: pages.FilterDescriptors(s.cfg.Site.Filters),
		Leagues:        leagues,
	}
	if err := artifact.SaveLeagues(s.cfg.Output.LeaguesFile, doc); err != nil {
		return nil, NewStageError(ErrCodeArtifact, s.Name(), "saving leagues artifact failed", err)
	}

	items := make([]ItemResult, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, ItemResult{Name: l.Name, URL: l.URL, Status: ItemOK, Count: 1})
	}

	return &StageResult{Items: items, Records: len(leagues)}, nil
}

// capture snapshots the current page when a recorder is wired in
func capture(r *diag.Recorder, ctx context.Context, label string) {
	if r != nil {
		r.CapturePage(ctx, label)
	}
}
