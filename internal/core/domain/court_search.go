package domain

import "time"

// CourtSearch is one jurisdictional criminal-record lookup performed for a
// candidate. A candidate may have any number of them.
type CourtSearch struct {
	ID          int64     `json:"id"`
	Status      Status    `json:"status"`
	SearchType  string    `json:"search_type"`
	Date        time.Time `json:"date"`
	CandidateID int64     `json:"candidateId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
