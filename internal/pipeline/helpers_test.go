package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seurahaku/harava/internal/artifact"
	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/pkg/models"
)

// fakeCollector stands in for the browser-backed collector. It serves
// canned data keyed by URL and counts every call so tests can assert
// that no page visit happened.
type fakeCollector struct {
	leagues     []models.League
	leaguesErr  error
	teamsByURL  map[string][]models.Team
	teamsErr    map[string]error
	contactsBy  map[string]*models.Official
	contactsErr map[string]error

	calls int
}

func (f *fakeCollector) Leagues(ctx context.Context) ([]models.League, error) {
	f.calls++
	return f.leagues, f.leaguesErr
}

func (f *fakeCollector) Teams(ctx context.Context, leagueURL string) ([]models.Team, error) {
	f.calls++
	if err, ok := f.teamsErr[leagueURL]; ok {
		return nil, err
	}
	return f.teamsByURL[leagueURL], nil
}

func (f *fakeCollector) Contact(ctx context.Context, teamURL string) (*models.Official, error) {
	f.calls++
	if err, ok := f.contactsErr[teamURL]; ok {
		return nil, err
	}
	if official, ok := f.contactsBy[teamURL]; ok {
		return official, nil
	}
	return nil, fmt.Errorf("no canned contact for %s", teamURL)
}

// passthroughSession runs the stage body without opening a browser
func passthroughSession(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// testConfig points every artifact at a per-test temp directory
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Output.LeaguesFile = filepath.Join(dir, "data", "intermediate", "leagues.json")
	cfg.Output.TeamsFile = filepath.Join(dir, "data", "intermediate", "teams.json")
	cfg.Output.ContactsFile = filepath.Join(dir, "data", "contacts.csv")
	cfg.Output.DebugDir = filepath.Join(dir, "data", "debug")
	cfg.Output.LogsDir = filepath.Join(dir, "logs")
	return cfg
}

func writeLeaguesFixture(t *testing.T, cfg *config.Config, leagues []models.League) {
	t.Helper()
	doc := &models.LeaguesDocument{
		Timestamp: time.Now().Format(time.RFC3339),
		Leagues:   leagues,
	}
	if err := artifact.SaveLeagues(cfg.Output.LeaguesFile, doc); err != nil {
		t.Fatalf("writing leagues fixture: %v", err)
	}
}

func writeTeamsFixture(t *testing.T, cfg *config.Config, leagues []models.LeagueTeams) {
	t.Helper()
	total := 0
	for _, l := range leagues {
		total += len(l.Teams)
	}
	doc := &models.TeamsDocument{
		Timestamp:        time.Now().Format(time.RFC3339),
		LeaguesProcessed: len(leagues),
		TotalTeams:       total,
		Leagues:          leagues,
	}
	if err := artifact.SaveTeams(cfg.Output.TeamsFile, doc); err != nil {
		t.Fatalf("writing teams fixture: %v", err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}
