// internal/pipeline/contacts.go
package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/artifact"
	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/diag"
	"github.com/seurahaku/harava/internal/pages"
	"github.com/seurahaku/harava/internal/ratelimit"
	"github.com/seurahaku/harava/internal/siteurl"
	"github.com/seurahaku/harava/pkg/models"
)

// ContactsStage visits every team roster from teams.json, picks each
// team's administrator contact and writes the deduplicated contacts
// as CSV.
type ContactsStage struct {
	cfg       *config.Config
	collector Collector
	session   SessionFunc
	recorder  *diag.Recorder

	// Progress receives the item progress bar; nil disables it
	Progress io.Writer
}

// NewContactsStage builds the third pipeline stage
func NewContactsStage(cfg *config.Config, collector Collector, session SessionFunc, recorder *diag.Recorder) *ContactsStage {
	return &ContactsStage{cfg: cfg, collector: collector, session: session, recorder: recorder}
}

func (s *ContactsStage) Name() string { return "contact" }

func (s *ContactsStage) RequiredInput() string { return s.cfg.Output.TeamsFile }

func (s *ContactsStage) OutputPath() string { return s.cfg.Output.ContactsFile }

// teamRef is one flattened team entry with its league attached
type teamRef struct {
	League string
	Name   string
	URL    string
}

// Execute walks the flattened team list in one browser session.
// Placeholder team URLs are skipped without a visit, teams without a
// contact become structured skips, and everything collected is merged
// by email before the CSV is written.
func (s *ContactsStage) Execute(ctx context.Context, opts Options) (*StageResult, error) {
	teamsDoc, err := artifact.LoadTeams(s.cfg.Output.TeamsFile)
	if err != nil {
		return nil, NewStageError(ErrCodeArtifact, s.Name(), "reading teams artifact failed", err)
	}

	var teams []teamRef
	for _, league := range teamsDoc.Leagues {
		for _, team := range league.Teams {
			teams = append(teams, teamRef{
				League: league.LeagueName,
				Name:   team.Name,
				URL:    team.URL,
			})
		}
	}

	log.Info().Int("teams", len(teams)).Msg("Teams to process")

	pacer := ratelimit.NewPacer(opts.Delay)

	var candidates []models.ContactCandidate
	var items []ItemResult

	err = s.session(ctx, func(bctx context.Context) error {
		bar := newBar(s.Progress, len(teams), "Collecting contacts")

		for i, team := range teams {
			// Null-team placeholders are part of the site's data, not
			// an error; skip before spending a page visit.
			if siteurl.IsPlaceholderTeam(team.URL) {
				log.Warn().Str("url", team.URL).Msg("Skipping null team placeholder")
				items = append(items, ItemResult{
					Name:   team.Name,
					URL:    team.URL,
					Status: ItemSkipped,
					Reason: SkipPlaceholder,
				})
				bar.Add(1)
				continue
			}

			if err := pacer.Wait(bctx); err != nil {
				return err
			}

			log.Info().
				Int("index", i+1).
				Int("of", len(teams)).
				Str("team", team.Name).
				Msg("Processing team")

			official, err := s.collector.Contact(bctx, team.URL)
			if err != nil {
				item := ItemResult{
					Name:   team.Name,
					URL:    team.URL,
					Status: ItemSkipped,
					Detail: err.Error(),
				}
				if errors.Is(err, pages.ErrNoContact) {
					log.Warn().Str("team", team.Name).Msg("No administrator contact found")
					capture(s.recorder, bctx, "no_contact")
					item.Reason = SkipNoContact
				} else {
					log.Error().Err(err).Str("team", team.Name).Msg("Team visit failed, skipping")
					item.Reason = SkipVisitFailed
				}
				items = append(items, item)
				bar.Add(1)
				continue
			}

			log.Info().
				Str("name", official.Name).
				Str("position", official.Position).
				Msg("Found administrator")

			candidates = append(candidates, models.ContactCandidate{
				Official: *official,
				Team:     team.Name,
				League:   team.League,
			})
			items = append(items, ItemResult{
				Name:   team.Name,
				URL:    team.URL,
				Status: ItemOK,
				Count:  1,
			})
			bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	contacts := Merge(candidates)

	if err := artifact.SaveContacts(s.cfg.Output.ContactsFile, contacts); err != nil {
		return nil, NewStageError(ErrCodeArtifact, s.Name(), "saving contacts artifact failed", err)
	}

	log.Info().
		Int("candidates", len(candidates)).
		Int("unique", len(contacts)).
		Msg("Contacts collected")

	return &StageResult{Items: items, Records: len(contacts)}, nil
}
