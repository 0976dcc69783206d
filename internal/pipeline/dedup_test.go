package pipeline

import (
	"reflect"
	"testing"

	"github.com/seurahaku/harava/pkg/models"
)

func candidate(name, position, email, phone, team, league string) models.ContactCandidate {
	return models.ContactCandidate{
		Official: models.Official{Name: name, Position: position, Email: email, Phone: phone},
		Team:     team,
		League:   league,
	}
}

func TestMergeAppendsTeamsAndLeagues(t *testing.T) {
	merged := Merge([]models.ContactCandidate{
		candidate("X", "Joukkueenjohtaja", "a@x.fi", "", "T1", "A"),
		candidate("X", "Joukkueenjohtaja", "a@x.fi", "", "T2", "B"),
	})

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged contact, got %d", len(merged))
	}

	c := merged[0]
	if !reflect.DeepEqual(c.Teams, []string{"T1", "T2"}) {
		t.Errorf("Expected teams [T1 T2] in order, got %v", c.Teams)
	}
	if !reflect.DeepEqual(c.Leagues, []string{"A", "B"}) {
		t.Errorf("Expected leagues [A B] in order, got %v", c.Leagues)
	}
	if c.Position != "Joukkueenjohtaja" {
		t.Errorf("Same position must not be appended, got '%s'", c.Position)
	}
}

func TestMergeAppendsDifferingPosition(t *testing.T) {
	merged := Merge([]models.ContactCandidate{
		candidate("X", "Joukkueenjohtaja", "a@x.fi", "", "T1", "A"),
		candidate("X", "Valmentaja", "a@x.fi", "", "T2", "A"),
	})

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged contact, got %d", len(merged))
	}
	if merged[0].Position != "Joukkueenjohtaja, Valmentaja" {
		t.Errorf("Expected both positions, got '%s'", merged[0].Position)
	}
}

func TestMergeFirstOccurrenceIsCanonical(t *testing.T) {
	merged := Merge([]models.ContactCandidate{
		candidate("Liisa Virtanen", "Joukkueenjohtaja", "Liisa@Example.fi", "", "T1", "A"),
		candidate("L. Virtanen", "Joukkueenjohtaja", "liisa@example.fi", "+358401234567", "T2", "A"),
	})

	if len(merged) != 1 {
		t.Fatalf("Email comparison must be case-insensitive, got %d records", len(merged))
	}

	c := merged[0]
	if c.Name != "Liisa Virtanen" {
		t.Errorf("First occurrence establishes the name, got '%s'", c.Name)
	}
	if c.Email != "Liisa@Example.fi" {
		t.Errorf("First spelling of the email is kept, got '%s'", c.Email)
	}
	if c.Phone != "+358401234567" {
		t.Errorf("A later phone fills the empty field, got '%s'", c.Phone)
	}
}

func TestMergeDiscardsEmptyEmail(t *testing.T) {
	merged := Merge([]models.ContactCandidate{
		candidate("X", "Valmentaja", "", "", "T1", "A"),
		candidate("Y", "Huoltaja", "   ", "", "T2", "A"),
		candidate("Z", "Joukkueenjohtaja", "z@x.fi", "", "T3", "A"),
	})

	if len(merged) != 1 {
		t.Fatalf("Candidates without email must be discarded, got %d", len(merged))
	}
	if merged[0].Email != "z@x.fi" {
		t.Errorf("Unexpected survivor '%s'", merged[0].Email)
	}
}

func TestMergeIdempotent(t *testing.T) {
	candidates := []models.ContactCandidate{
		candidate("X", "Joukkueenjohtaja", "a@x.fi", "", "T1", "A"),
		candidate("X", "Joukkueenjohtaja", "a@x.fi", "", "T2", "B"),
		candidate("Y", "Valmentaja", "b@x.fi", "", "T3", "A"),
	}

	once := Merge(candidates)
	twice := Merge(append(append([]models.ContactCandidate{}, candidates...), candidates...))

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merging the same candidates twice must change nothing:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeKeepsDistinctEmailsApart(t *testing.T) {
	merged := Merge([]models.ContactCandidate{
		candidate("X", "Joukkueenjohtaja", "a@x.fi", "", "T1", "A"),
		candidate("Y", "Joukkueenjohtaja", "b@x.fi", "", "T2", "A"),
	})

	if len(merged) != 2 {
		t.Fatalf("Expected 2 contacts, got %d", len(merged))
	}
	if merged[0].Email == merged[1].Email {
		t.Error("Distinct emails must stay distinct")
	}
}

func TestMergeEmptyInput(t *testing.T) {
	if merged := Merge(nil); len(merged) != 0 {
		t.Errorf("Expected no contacts from no candidates, got %d", len(merged))
	}
}
