// internal/pipeline/dedup.go
package pipeline

import (
	"strings"

	"github.com/seurahaku/harava/pkg/models"
)

// Merge deduplicates contact candidates by email. The first occurrence
// establishes the canonical record; later occurrences of the same
// email append their team and league, and their position when it
// differs. The same administrator often runs several teams, which is
// exactly the case this folds together.
//
// Emails compare case-insensitively and ignoring surrounding space,
// but the canonical record keeps the first spelling seen. Appends
// check containment first, so merging is idempotent: feeding the same
// candidate twice changes nothing. Candidates without an email are
// discarded; email is the join key.
func Merge(candidates []models.ContactCandidate) []models.Contact {
	var merged []models.Contact
	index := make(map[string]int)

	for _, cand := range candidates {
		key := strings.ToLower(strings.TrimSpace(cand.Email))
		if key == "" {
			continue
		}

		if i, seen := index[key]; seen {
			c := &merged[i]
			if !containsString(c.Teams, cand.Team) {
				c.Teams = append(c.Teams, cand.Team)
			}
			if !containsString(c.Leagues, cand.League) {
				c.Leagues = append(c.Leagues, cand.League)
			}
			if cand.Position != "" && !positionListed(c.Position, cand.Position) {
				c.Position += ", " + cand.Position
			}
			if c.Phone == "" && cand.Phone != "" {
				c.Phone = cand.Phone
			}
			continue
		}

		index[key] = len(merged)
		merged = append(merged, models.Contact{
			Name:     cand.Name,
			Position: cand.Position,
			Email:    cand.Email,
			Phone:    cand.Phone,
			Teams:    []string{cand.Team},
			Leagues:  []string{cand.League},
		})
	}

	return merged
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// positionListed checks whether position already appears in the
// comma-joined position field.
func positionListed(joined, position string) bool {
	for _, p := range strings.Split(joined, ", ") {
		if p == position {
			return true
		}
	}
	return false
}
