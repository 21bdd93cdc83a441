package domain

import "time"

// Status is the adjudication outcome enum shared by candidates, reports, and
// court searches. Both values are freely transitionable in either direction.
type Status string

const (
	StatusClear    Status = "clear"
	StatusConsider Status = "consider"
)

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusClear || s == StatusConsider
}

// AdjudicationAdverseAction is the adjudication value derived from
// pre-adverse actions with at least one sustained charge.
const AdjudicationAdverseAction = "adverse action"

// Candidate is the aggregate root: a person undergoing a background check.
// It owns zero-or-one Report and zero-or-many CourtSearch records.
type Candidate struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DOB            time.Time `json:"dob"`
	Phone          string    `json:"phone"`
	Zipcode        string    `json:"zipcode"`
	SocialSecurity string    `json:"social_security"`
	DriversLicense string    `json:"drivers_license"`
	Adjudication   *string   `json:"adjudication"`
	Status         Status    `json:"status"`
	Location       string    `json:"location"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
