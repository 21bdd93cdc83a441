package domain

import "time"

// Charge is a single reviewed charge on a pre-adverse action. Status true
// means the charge is sustained.
type Charge struct {
	Charge string `json:"charge"`
	Status bool   `json:"status"`
}

// PreAdverseAction is a staged record of charges under review before a final
// adjudication is recorded on the candidate.
type PreAdverseAction struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	Charges     []Charge  `json:"charges"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasAdverseCharge reports whether any charge on the record is sustained.
func (p *PreAdverseAction) HasAdverseCharge() bool {
	for _, c := range p.Charges {
		if c.Status {
			return true
		}
	}
	return false
}
