package pipeline

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/seurahaku/harava/pkg/models"
)

func TestRunFailsOnMissingPrecondition(t *testing.T) {
	cfg := testConfig(t)
	collector := &fakeCollector{}
	stage := NewTeamsStage(cfg, collector, passthroughSession, nil)

	_, err := Run(context.Background(), stage, Options{})
	if err == nil {
		t.Fatal("Expected a precondition error")
	}

	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("Expected a *StageError, got %T", err)
	}
	if se.Code != ErrCodeMissingInput {
		t.Errorf("Expected code %s, got %s", ErrCodeMissingInput, se.Code)
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Error("Expected error to unwrap to ErrMissingInput")
	}

	if collector.calls != 0 {
		t.Errorf("Expected no page visits on precondition failure, got %d", collector.calls)
	}
	if _, err := os.Stat(cfg.Output.TeamsFile); err == nil {
		t.Error("Expected no output artifact on precondition failure")
	}
}

func TestRunResumeLeavesArtifactUntouched(t *testing.T) {
	cfg := testConfig(t)
	writeLeaguesFixture(t, cfg, []models.League{{Name: "A", URL: "u1"}})
	writeTeamsFixture(t, cfg, []models.LeagueTeams{{LeagueName: "A", LeagueURL: "u1"}})

	before := readFile(t, cfg.Output.TeamsFile)

	collector := &fakeCollector{}
	stage := NewTeamsStage(cfg, collector, passthroughSession, nil)

	result, err := Run(context.Background(), stage, Options{Resume: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.ResumeSkip {
		t.Error("Expected ResumeSkip on the result")
	}
	if collector.calls != 0 {
		t.Errorf("Expected no page visits on resume, got %d", collector.calls)
	}

	after := readFile(t, cfg.Output.TeamsFile)
	if string(before) != string(after) {
		t.Error("Resume must leave the artifact byte-for-byte unchanged")
	}
}

func TestRunWithoutResumeOverwrites(t *testing.T) {
	cfg := testConfig(t)
	writeLeaguesFixture(t, cfg, []models.League{{Name: "A", URL: "u1"}})
	writeTeamsFixture(t, cfg, []models.LeagueTeams{})

	collector := &fakeCollector{
		teamsByURL: map[string][]models.Team{"u1": {{Name: "T1", URL: "t1"}}},
	}
	stage := NewTeamsStage(cfg, collector, passthroughSession, nil)

	result, err := Run(context.Background(), stage, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.ResumeSkip {
		t.Error("Did not expect a resume skip without the flag")
	}
	if collector.calls == 0 {
		t.Error("Expected the stage to visit pages")
	}
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	cfg := testConfig(t)
	writeLeaguesFixture(t, cfg, []models.League{{Name: "A", URL: "u1"}})

	collector := &fakeCollector{}
	stage := NewTeamsStage(cfg, collector, passthroughSession, nil)

	result, err := Run(context.Background(), stage, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.DryRun {
		t.Error("Expected DryRun on the result")
	}
	if collector.calls != 0 {
		t.Errorf("Expected no page visits on dry run, got %d", collector.calls)
	}
	if _, err := os.Stat(cfg.Output.TeamsFile); err == nil {
		t.Error("Dry run must not create the output artifact")
	}
}

func TestRunDryRunStillChecksPrecondition(t *testing.T) {
	cfg := testConfig(t)
	collector := &fakeCollector{}
	stage := NewTeamsStage(cfg, collector, passthroughSession, nil)

	_, err := Run(context.Background(), stage, Options{DryRun: true})
	if err == nil {
		t.Fatal("Expected a precondition error even on dry run")
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("Expected ErrMissingInput, got %v", err)
	}
}

func TestRunCategoriesHasNoPrecondition(t *testing.T) {
	cfg := testConfig(t)
	collector := &fakeCollector{
		leagues: []models.League{{Name: "A", URL: "u1"}},
	}
	stage := NewCategoriesStage(cfg, collector, passthroughSession, nil)

	result, err := Run(context.Background(), stage, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Records != 1 {
		t.Errorf("Expected 1 record, got %d", result.Records)
	}
}

func TestRunWrapsSessionFailure(t *testing.T) {
	cfg := testConfig(t)
	collector := &fakeCollector{leagues: []models.League{{Name: "A", URL: "u1"}}}

	boom := errors.New("chrome exploded")
	failingSession := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return boom
	}
	stage := NewCategoriesStage(cfg, collector, failingSession, nil)

	_, err := Run(context.Background(), stage, Options{})
	if err == nil {
		t.Fatal("Expected an error from the failing session")
	}

	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("Expected a *StageError, got %T", err)
	}
	if se.Code != ErrCodeSession {
		t.Errorf("Expected code %s, got %s", ErrCodeSession, se.Code)
	}
	if !errors.Is(err, boom) {
		t.Error("Expected the original error preserved in the chain")
	}
}
