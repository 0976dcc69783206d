// internal/pipeline/teams.go
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/artifact"
	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/diag"
	"github.com/seurahaku/harava/internal/ratelimit"
	"github.com/seurahaku/harava/pkg/models"
)

// TeamsStage visits every league from leagues.json and writes the
// teams it finds as teams.json.
type TeamsStage struct {
	cfg       *config.Config
	collector Collector
	session   SessionFunc
	recorder  *diag.Recorder

	// Progress receives the item progress bar; nil disables it
	Progress io.Writer
}

// NewTeamsStage builds the second pipeline stage
func NewTeamsStage(cfg *config.Config, collector Collector, session SessionFunc, recorder *diag.Recorder) *TeamsStage {
	return &TeamsStage{cfg: cfg, collector: collector, session: session, recorder: recorder}
}

func (s *TeamsStage) Name() string { return "teams" }

func (s *TeamsStage) RequiredInput() string { return s.cfg.Output.LeaguesFile }

func (s *TeamsStage) OutputPath() string { return s.cfg.Output.TeamsFile }

// Execute walks the league list in one browser session. A league
// whose visit fails is skipped and stays out of the document; a league
// that renders but lists no teams is kept with an empty team list.
// leagues_processed counts every league attempted either way.
func (s *TeamsStage) Execute(ctx context.Context, opts Options) (*StageResult, error) {
	leaguesDoc, err := artifact.LoadLeagues(s.cfg.Output.LeaguesFile)
	if err != nil {
		return nil, NewStageError(ErrCodeArtifact, s.Name(), "reading leagues artifact failed", err)
	}
	leagues := leaguesDoc.Leagues

	log.Info().Int("leagues", len(leagues)).Msg("Leagues to process")

	pacer := ratelimit.NewPacer(opts.Delay)

	var collected []models.LeagueTeams
	var items []ItemResult
	totalTeams := 0

	err = s.session(ctx, func(bctx context.Context) error {
		bar := newBar(s.Progress, len(leagues), "Collecting teams")

		for i, league := range leagues {
			if err := pacer.Wait(bctx); err != nil {
				return err
			}

			log.Info().
				Int("index", i+1).
				Int("of", len(leagues)).
				Str("league", league.Name).
				Msg("Processing league")

			teams, err := s.collector.Teams(bctx, league.URL)
			if err != nil {
				log.Error().Err(err).Str("league", league.Name).Msg("League visit failed, skipping")
				items = append(items, ItemResult{
					Name:   league.Name,
					URL:    league.URL,
					Status: ItemSkipped,
					Reason: SkipVisitFailed,
					Detail: err.Error(),
				})
				bar.Add(1)
				continue
			}

			if len(teams) == 0 {
				log.Warn().Str("league", league.Name).Msg("No teams found on league page")
				capture(s.recorder, bctx, "no_teams")
			}

			collected = append(collected, models.LeagueTeams{
				LeagueName: league.Name,
				LeagueURL:  league.URL,
				Teams:      teams,
			})
			totalTeams += len(teams)
			items = append(items, ItemResult{
				Name:   league.Name,
				URL:    league.URL,
				Status: ItemOK,
				Count:  len(teams),
			})
			bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc := &models.TeamsDocument{
		Timestamp:        time.Now().Format(time.RFC3339),
		LeaguesProcessed: len(leagues),
		TotalTeams:       totalTeams,
		Leagues:          collected,
	}
	if err := artifact.SaveTeams(s.cfg.Output.TeamsFile, doc); err != nil {
		return nil, NewStageError(ErrCodeArtifact, s.Name(), "saving teams artifact failed", err)
	}

	log.Info().Int("teams", totalTeams).Msg("Teams collected")

	return &StageResult{Items: items, Records: totalTeams}, nil
}
