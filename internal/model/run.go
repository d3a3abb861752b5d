package model

import "time"

// RunStatus represents the state of a discovery run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run records one discovery execution for a city.
type Run struct {
	ID        string      `json:"id"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	Status    RunStatus   `json:"status"`
	Summary   *RunSummary `json:"summary,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RunSummary holds the outcome counts of a discovery run.
type RunSummary struct {
	Candidates int `json:"candidates"`
	Reconciled int `json:"reconciled"`
	Validated  int `json:"validated"`
	Verified   int `json:"verified"`
	NotFound   int `json:"not_found"`
	Closed     int `json:"closed"`
	Errors     int `json:"errors"`
}

// Summarize computes run counts from a reconciled record set.
func Summarize(records []Reconciled) *RunSummary {
	s := &RunSummary{Reconciled: len(records)}
	for _, r := range records {
		if r.Validated {
			s.Validated++
		}
		s.Candidates += r.SourceCount
		if r.Enrichment == nil {
			continue
		}
		switch r.Enrichment.VerificationStatus {
		case VerificationVerified:
			s.Verified++
		case VerificationNotFound:
			s.NotFound++
		case VerificationError:
			s.Errors++
		}
		if r.Enrichment.PermanentlyClosed {
			s.Closed++
		}
	}
	return s
}
