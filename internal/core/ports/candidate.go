package ports

import (
	"context"
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// CreateCandidateInput carries all data needed to create a new candidate.
// The transport layer validates it before it reaches the service.
type CreateCandidateInput struct {
	Name           string
	Email          string
	DOB            time.Time
	Phone          string
	Zipcode        string
	SocialSecurity string
	DriversLicense string
	Adjudication   *string
	Status         domain.Status
	Location       string
	Date           time.Time
}

// CandidatePatch is the explicit set of patchable candidate fields. Nil
// pointers mean "leave unchanged"; unknown fields are rejected at the
// transport boundary before a patch is built.
type CandidatePatch struct {
	Name           *string
	Email          *string
	DOB            *time.Time
	Phone          *string
	Zipcode        *string
	SocialSecurity *string
	DriversLicense *string
	Adjudication   *string
	Status         *domain.Status
	Location       *string
	Date           *time.Time
}

// CandidateSummary is the attribute-limited projection used in list views.
type CandidateSummary struct {
	Name         string        `json:"name"`
	Adjudication *string       `json:"adjudication"`
	Status       domain.Status `json:"status"`
	Location     string        `json:"location"`
	Date         time.Time     `json:"date"`
}

// ReportSummary is the report projection joined onto a single-candidate fetch.
type ReportSummary struct {
	Status         domain.Status `json:"status"`
	Package        string        `json:"package"`
	Adjudication   *string       `json:"adjudication"`
	TurnaroundTime int           `json:"turnaround_time"`
	CompletedAt    *time.Time    `json:"completed_at"`
}

// CourtSearchSummary is the court-search projection joined onto a
// single-candidate fetch.
type CourtSearchSummary struct {
	Status     domain.Status `json:"status"`
	SearchType string        `json:"search_type"`
	Date       time.Time     `json:"date"`
}

// CandidateDetail is the full view returned by GetByID: the candidate record
// plus its report (if any) and court searches.
type CandidateDetail struct {
	domain.Candidate
	Report        *ReportSummary       `json:"report"`
	CourtSearches []CourtSearchSummary `json:"court_searches"`
}

// ListCandidatesInput carries the query parameters for the list endpoint.
// Name, when non-empty, is matched as a case-insensitive substring.
type ListCandidatesInput struct {
	Name string
	Page int // 1-based; zero means first page
}

// ListCandidatesResult is one fixed-size page of candidate summaries.
type ListCandidatesResult struct {
	TotalCandidates int
	TotalPages      int
	CurrentPage     int
	Candidates      []CandidateSummary
}

// CandidateService defines the candidate lifecycle use-cases.
type CandidateService interface {
	Create(ctx context.Context, in CreateCandidateInput) (*domain.Candidate, error)
	GetByID(ctx context.Context, id int64) (*CandidateDetail, error)
	List(ctx context.Context, in ListCandidatesInput) (*ListCandidatesResult, error)
	Update(ctx context.Context, id int64, patch CandidatePatch) (*domain.Candidate, error)
	Delete(ctx context.Context, id int64) error
	RecordPreAdverseAction(ctx context.Context, id int64, charges []domain.Charge) (*domain.Candidate, error)
}

// CandidateRepository defines persistence operations for candidates.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	FindByID(ctx context.Context, id int64) (*domain.Candidate, error)
	FindByEmail(ctx context.Context, email string) (*domain.Candidate, error)
	FindAll(ctx context.Context) ([]*domain.Candidate, error)
	Update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	Delete(ctx context.Context, id int64) error
}

// PreAdverseActionRepository defines persistence for pre-adverse actions.
type PreAdverseActionRepository interface {
	Create(ctx context.Context, p *domain.PreAdverseAction) (*domain.PreAdverseAction, error)
	FindByCandidateID(ctx context.Context, candidateID int64) ([]*domain.PreAdverseAction, error)
}
