package pipeline

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/seurahaku/harava/pkg/models"
)

func TestRunAllThreeStages(t *testing.T) {
	cfg := testConfig(t)
	collector := &fakeCollector{
		leagues: []models.League{{Name: "A", URL: "u1"}},
		teamsByURL: map[string][]models.Team{
			"u1": {
				{Name: "T1", URL: "https://example.fi/team/1/info"},
				{Name: "T2", URL: "https://example.fi/team/2/info"},
			},
		},
		contactsBy: map[string]*models.Official{
			"https://example.fi/team/1/info": {Name: "X", Position: "Joukkueenjohtaja", Email: "a@x.fi"},
			"https://example.fi/team/2/info": {Name: "X", Position: "Joukkueenjohtaja", Email: "a@x.fi"},
		},
	}

	stages := []Stage{
		NewCategoriesStage(cfg, collector, passthroughSession, nil),
		NewTeamsStage(cfg, collector, passthroughSession, nil),
		NewContactsStage(cfg, collector, passthroughSession, nil),
	}

	results, err := RunAll(context.Background(), stages, Options{})
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 stage results, got %d", len(results))
	}

	if results[0].Records != 1 {
		t.Errorf("Stage 1 expected 1 league, got %d", results[0].Records)
	}
	if results[1].Records != 2 {
		t.Errorf("Stage 2 expected 2 teams, got %d", results[1].Records)
	}
	if results[2].Records != 1 {
		t.Errorf("Stage 3 expected 1 unique contact, got %d", results[2].Records)
	}

	for _, path := range []string{cfg.Output.LeaguesFile, cfg.Output.TeamsFile, cfg.Output.ContactsFile} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected artifact %s: %v", path, err)
		}
	}
}

func TestRunAllStopsAfterFailure(t *testing.T) {
	cfg := testConfig(t)

	// Stage 1 fails: no leagues at all
	collector := &fakeCollector{leagues: nil}

	stages := []Stage{
		NewCategoriesStage(cfg, collector, passthroughSession, nil),
		NewTeamsStage(cfg, collector, passthroughSession, nil),
		NewContactsStage(cfg, collector, passthroughSession, nil),
	}

	results, err := RunAll(context.Background(), stages, Options{})
	if err == nil {
		t.Fatal("Expected RunAll to fail")
	}
	if len(results) != 0 {
		t.Errorf("Expected no completed results, got %d", len(results))
	}

	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("Expected a *StageError, got %T", err)
	}
	if se.Stage != "categories" {
		t.Errorf("Expected the categories stage to fail, got %s", se.Stage)
	}

	// Later stages must not have run
	if _, err := os.Stat(cfg.Output.TeamsFile); err == nil {
		t.Error("Teams stage must not run after a categories failure")
	}
	if _, err := os.Stat(cfg.Output.ContactsFile); err == nil {
		t.Error("Contacts stage must not run after a categories failure")
	}
}

func TestRunAllResumeSkipsCompletedStages(t *testing.T) {
	cfg := testConfig(t)
	writeLeaguesFixture(t, cfg, []models.League{{Name: "A", URL: "u1"}})

	collector := &fakeCollector{
		teamsByURL: map[string][]models.Team{
			"u1": {{Name: "T1", URL: "https://example.fi/team/1/info"}},
		},
		contactsBy: map[string]*models.Official{
			"https://example.fi/team/1/info": {Name: "X", Position: "Joukkueenjohtaja", Email: "a@x.fi"},
		},
	}

	stages := []Stage{
		NewCategoriesStage(cfg, collector, passthroughSession, nil),
		NewTeamsStage(cfg, collector, passthroughSession, nil),
		NewContactsStage(cfg, collector, passthroughSession, nil),
	}

	results, err := RunAll(context.Background(), stages, Options{Resume: true})
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if !results[0].ResumeSkip {
		t.Error("Stage 1 should resume past its existing artifact")
	}
	if results[1].ResumeSkip || results[2].ResumeSkip {
		t.Error("Stages without artifacts must still run")
	}
	if results[2].Records != 1 {
		t.Errorf("Expected 1 contact from the resumed run, got %d", results[2].Records)
	}
}

func TestRunAllStopsAtInterStagePauseWhenCancelled(t *testing.T) {
	cfg := testConfig(t)
	collector := &fakeCollector{leagues: []models.League{{Name: "A", URL: "u1"}}}

	stages := []Stage{
		NewCategoriesStage(cfg, collector, passthroughSession, nil),
		NewTeamsStage(cfg, collector, passthroughSession, nil),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The fake collector ignores the context, so stage 1 completes;
	// the hour-long inter-stage pause must then notice the
	// cancellation instead of sleeping.
	results, err := RunAll(ctx, stages, Options{Delay: time.Hour})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected the completed stage 1 result returned, got %d", len(results))
	}
}
