package ports

import (
	"context"
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// CreateCourtSearchInput carries the validated body of a court-search
// creation request.
type CreateCourtSearchInput struct {
	Status     domain.Status
	SearchType string
	Date       time.Time
}

// CourtSearchService defines court-search use-cases.
type CourtSearchService interface {
	Create(ctx context.Context, candidateID int64, in CreateCourtSearchInput) (*domain.CourtSearch, error)
	ListByCandidateID(ctx context.Context, candidateID int64) ([]*domain.CourtSearch, error)
	GetByID(ctx context.Context, id int64) (*domain.CourtSearch, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.CourtSearch, error)
	Delete(ctx context.Context, id int64) error
}

// CourtSearchRepository defines persistence operations for court searches.
type CourtSearchRepository interface {
	Create(ctx context.Context, s *domain.CourtSearch) (*domain.CourtSearch, error)
	FindByID(ctx context.Context, id int64) (*domain.CourtSearch, error)
	// FindByCandidateID returns the candidate's court searches ordered by id.
	// An empty slice is a valid result, not an error.
	FindByCandidateID(ctx context.Context, candidateID int64) ([]*domain.CourtSearch, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.CourtSearch, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByCandidateID removes every court-search row owned by the
	// candidate and returns how many rows were removed (cascade path).
	DeleteByCandidateID(ctx context.Context, candidateID int64) (int64, error)
}
