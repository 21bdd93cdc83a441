package domain

import "time"

// Report is the single aggregate verification outcome for a candidate.
// Invariant: at most one report per candidate, enforced by the report service
// at create time and backed by a unique constraint on candidate_id.
type Report struct {
	ID             int64      `json:"id"`
	Status         Status     `json:"status"`
	Package        string     `json:"package"`
	Adjudication   *string    `json:"adjudication"`
	TurnaroundTime int        `json:"turnaround_time"` // hours, always positive
	CompletedAt    *time.Time `json:"completed_at"`
	CandidateID    int64      `json:"candidateId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
