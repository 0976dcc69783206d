// internal/pipeline/result.go
package pipeline

import "time"

// ItemStatus tells whether an upstream item produced records or was
// skipped.
type ItemStatus string

const (
	ItemOK      ItemStatus = "ok"
	ItemSkipped ItemStatus = "skipped"
)

// Skip reason codes. Reasons are stable identifiers; the Detail field
// carries the human-readable cause.
const (
	SkipPlaceholder = "placeholder_team"
	SkipNoContact   = "no_contact"
	SkipVisitFailed = "visit_failed"
)

// ItemResult records the outcome of one upstream item: a league
// visited by the teams stage, a team visited by the contacts stage.
type ItemResult struct {
	Name   string
	URL    string
	Status ItemStatus
	Reason string // skip code, empty on success
	Detail string
	Count  int // records this item contributed
}

// StageResult summarizes one stage invocation
type StageResult struct {
	Stage      string
	OutputPath string
	ResumeSkip bool
	DryRun     bool
	Items      []ItemResult
	Records    int // records written to the artifact
	Duration   time.Duration
}

// Processed returns the number of upstream items the stage attempted
func (r *StageResult) Processed() int {
	return len(r.Items)
}

// Skipped returns the items that produced no records, with reasons
func (r *StageResult) Skipped() []ItemResult {
	var skipped []ItemResult
	for _, item := range r.Items {
		if item.Status == ItemSkipped {
			skipped = append(skipped, item)
		}
	}
	return skipped
}
