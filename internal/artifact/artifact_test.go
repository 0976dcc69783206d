package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seurahaku/harava/pkg/models"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	if Exists(filepath.Join(dir, "missing.json")) {
		t.Error("Expected false for a missing file")
	}
	if Exists(dir) {
		t.Error("Expected false for a directory")
	}

	path := filepath.Join(dir, "present.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Expected true for an existing file")
	}
}

func TestLeaguesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "intermediate", "leagues.json")

	doc := &models.LeaguesDocument{
		Timestamp: time.Now().Format(time.RFC3339),
		FiltersApplied: models.FiltersApplied{
			Sport: "Jalkapallo (Football)",
			Age:   "All ages",
		},
		Leagues: []models.League{
			{Name: "P13 Alue 2. taso", URL: "https://example.fi/category/1"},
			{Name: "B-poikien Cup", URL: "https://example.fi/category/2"},
		},
	}

	if err := SaveLeagues(path, doc); err != nil {
		t.Fatalf("SaveLeagues failed: %v", err)
	}

	loaded, err := LoadLeagues(path)
	if err != nil {
		t.Fatalf("LoadLeagues failed: %v", err)
	}

	if len(loaded.Leagues) != 2 {
		t.Fatalf("Expected 2 leagues, got %d", len(loaded.Leagues))
	}
	if loaded.Leagues[0].Name != "P13 Alue 2. taso" {
		t.Errorf("Unexpected league name '%s'", loaded.Leagues[0].Name)
	}
	if loaded.FiltersApplied.Sport != "Jalkapallo (Football)" {
		t.Errorf("Unexpected sport '%s'", loaded.FiltersApplied.Sport)
	}

	// Field names are part of the artifact contract
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"timestamp"`, `"filters_applied"`, `"leagues"`, `"name"`, `"url"`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("Expected JSON key %s in artifact", key)
		}
	}
}

func TestLoadLeaguesRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.json")
	if err := os.WriteFile(path, []byte(`{"leagues": [`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLeagues(path); err == nil {
		t.Error("Expected an error for truncated JSON")
	}
}

func TestTeamsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")

	doc := &models.TeamsDocument{
		Timestamp:        time.Now().Format(time.RFC3339),
		LeaguesProcessed: 2,
		TotalTeams:       3,
		Leagues: []models.LeagueTeams{
			{
				LeagueName: "A",
				LeagueURL:  "u1",
				Teams: []models.Team{
					{Name: "T1", URL: "t1"},
					{Name: "T2", URL: "t2"},
				},
			},
			{
				LeagueName: "B",
				LeagueURL:  "u2",
				Teams: []models.Team{
					{Name: "T3", URL: "t3"},
				},
			},
		},
	}

	if err := SaveTeams(path, doc); err != nil {
		t.Fatalf("SaveTeams failed: %v", err)
	}

	loaded, err := LoadTeams(path)
	if err != nil {
		t.Fatalf("LoadTeams failed: %v", err)
	}

	if loaded.LeaguesProcessed != 2 || loaded.TotalTeams != 3 {
		t.Errorf("Counts lost in round trip: %d leagues, %d teams", loaded.LeaguesProcessed, loaded.TotalTeams)
	}
	if loaded.Leagues[0].Teams[1].Name != "T2" {
		t.Errorf("Unexpected team '%s'", loaded.Leagues[0].Teams[1].Name)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"leagues_processed"`, `"total_teams"`, `"league_name"`, `"league_url"`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("Expected JSON key %s in artifact", key)
		}
	}
}

func TestSaveContactsWithPhoneColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")

	contacts := []models.Contact{
		{
			Name:     "Liisa Virtanen",
			Position: "Joukkueenjohtaja",
			Email:    "liisa@example.fi",
			Phone:    "+358401234567",
			Teams:    []string{"T1", "T2"},
			Leagues:  []string{"A", "B"},
		},
		{
			Name:     "Matti Meikäläinen",
			Position: "Valmentaja",
			Email:    "matti@example.fi",
			Teams:    []string{"T3"},
			Leagues:  []string{"A"},
		},
	}

	if err := SaveContacts(path, contacts); err != nil {
		t.Fatalf("SaveContacts failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	if lines[0] != "administrator_name,position,email,phone,team,league" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"T1, T2"`) {
		t.Errorf("Expected comma-joined teams, got: %s", lines[1])
	}

	loaded, err := LoadContacts(path)
	if err != nil {
		t.Fatalf("LoadContacts failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 contacts, got %d", len(loaded))
	}
	if loaded[0].Phone != "+358401234567" {
		t.Errorf("Phone lost in round trip: '%s'", loaded[0].Phone)
	}
	if len(loaded[0].Teams) != 2 || loaded[0].Teams[1] != "T2" {
		t.Errorf("Teams lost in round trip: %v", loaded[0].Teams)
	}
	if loaded[1].Phone != "" {
		t.Errorf("Expected empty phone, got '%s'", loaded[1].Phone)
	}
}

func TestSaveContactsWithoutPhoneColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")

	contacts := []models.Contact{
		{Name: "X", Position: "Valmentaja", Email: "x@example.fi", Teams: []string{"T1"}, Leagues: []string{"A"}},
	}

	if err := SaveContacts(path, contacts); err != nil {
		t.Fatalf("SaveContacts failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	if lines[0] != "administrator_name,position,email,team,league" {
		t.Errorf("Phone column must be absent, got header: %s", lines[0])
	}

	loaded, err := LoadContacts(path)
	if err != nil {
		t.Fatalf("LoadContacts failed: %v", err)
	}
	if loaded[0].Email != "x@example.fi" {
		t.Errorf("Unexpected email '%s'", loaded[0].Email)
	}
}

func TestLoadContactsRejectsForeignCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadContacts(path); err == nil {
		t.Error("Expected an error for a CSV without the contact columns")
	}
}
