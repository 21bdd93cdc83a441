package ports

import (
	"context"
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// CreateReportInput carries the validated body of a report creation request.
type CreateReportInput struct {
	Status         domain.Status
	Package        string
	Adjudication   *string
	TurnaroundTime int
	CompletedAt    *time.Time
}

// ReportPatch is the explicit set of patchable report fields.
type ReportPatch struct {
	Status         *domain.Status
	Package        *string
	Adjudication   *string
	TurnaroundTime *int
	CompletedAt    *time.Time
}

// ReportService defines report use-cases. Reports are addressable both by the
// owning candidate (the singleton-child surface) and by their own id (the
// alternate lookup key).
type ReportService interface {
	Create(ctx context.Context, candidateID int64, in CreateReportInput) (*domain.Report, error)
	GetByCandidateID(ctx context.Context, candidateID int64) (*domain.Report, error)
	GetByID(ctx context.Context, reportID int64) (*domain.Report, error)
	UpdateByCandidateID(ctx context.Context, candidateID int64, patch ReportPatch) (*domain.Report, error)
	UpdateByID(ctx context.Context, reportID int64, patch ReportPatch) (*domain.Report, error)
	DeleteByCandidateID(ctx context.Context, candidateID int64) error
	DeleteByID(ctx context.Context, reportID int64) error
}

// ReportRepository defines persistence operations for reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	FindByID(ctx context.Context, id int64) (*domain.Report, error)
	FindByCandidateID(ctx context.Context, candidateID int64) (*domain.Report, error)
	Update(ctx context.Context, r *domain.Report) (*domain.Report, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByCandidateID removes every report row owned by the candidate and
	// returns how many rows were removed. Zero rows is not an error; it is
	// used by the candidate cascade, not by the REST delete.
	DeleteByCandidateID(ctx context.Context, candidateID int64) (int64, error)
}
