package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// ReportService enforces the one-report-per-candidate invariant and the
// candidate-existence precondition.
type ReportService struct {
	reports    ports.ReportRepository
	candidates ports.CandidateRepository
	logger     zerolog.Logger
}

func NewReportService(reports ports.ReportRepository, candidates ports.CandidateRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, candidates: candidates, logger: logger}
}

// Create links a new report to an existing candidate. The existence check
// here produces the friendly conflict; under a create/create race the store's
// unique constraint on candidate_id surfaces as the same conflict error.
func (s *ReportService) Create(ctx context.Context, candidateID int64, in ports.CreateReportInput) (*domain.Report, error) {
	if _, err := s.candidates.FindByID(ctx, candidateID); err != nil {
		return nil, err
	}

	_, err := s.reports.FindByCandidateID(ctx, candidateID)
	switch {
	case err == nil:
		return nil, domain.ErrReportExists
	case !errors.Is(err, domain.ErrReportNotFound):
		return nil, domain.Internal("check existing report", err)
	}

	created, err := s.reports.Create(ctx, &domain.Report{
		Status:         in.Status,
		Package:        in.Package,
		Adjudication:   in.Adjudication,
		TurnaroundTime: in.TurnaroundTime,
		CompletedAt:    in.CompletedAt,
		CandidateID:    candidateID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrReportExists) || errors.Is(err, domain.ErrCandidateNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("candidate_id", candidateID).Msg("failed to create report")
		return nil, domain.Internal("create report", err)
	}

	s.logger.Info().Int64("report_id", created.ID).Int64("candidate_id", candidateID).Msg("report created")
	return created, nil
}

func (s *ReportService) GetByCandidateID(ctx context.Context, candidateID int64) (*domain.Report, error) {
	return s.reports.FindByCandidateID(ctx, candidateID)
}

func (s *ReportService) GetByID(ctx context.Context, reportID int64) (*domain.Report, error) {
	return s.reports.FindByID(ctx, reportID)
}

func (s *ReportService) UpdateByCandidateID(ctx context.Context, candidateID int64, patch ports.ReportPatch) (*domain.Report, error) {
	report, err := s.reports.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, report, patch)
}

func (s *ReportService) UpdateByID(ctx context.Context, reportID int64, patch ports.ReportPatch) (*domain.Report, error) {
	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, report, patch)
}

func (s *ReportService) DeleteByCandidateID(ctx context.Context, candidateID int64) error {
	report, err := s.reports.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return err
	}
	return s.delete(ctx, report)
}

func (s *ReportService) DeleteByID(ctx context.Context, reportID int64) error {
	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return err
	}
	return s.delete(ctx, report)
}

func (s *ReportService) update(ctx context.Context, report *domain.Report, patch ports.ReportPatch) (*domain.Report, error) {
	if patch.Status != nil {
		report.Status = *patch.Status
	}
	if patch.Package != nil {
		report.Package = *patch.Package
	}
	if patch.Adjudication != nil {
		report.Adjudication = patch.Adjudication
	}
	if patch.TurnaroundTime != nil {
		report.TurnaroundTime = *patch.TurnaroundTime
	}
	if patch.CompletedAt != nil {
		report.CompletedAt = patch.CompletedAt
	}

	updated, err := s.reports.Update(ctx, report)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return nil, err
		}
		return nil, domain.Internal("update report", err)
	}
	return updated, nil
}

func (s *ReportService) delete(ctx context.Context, report *domain.Report) error {
	if err := s.reports.Delete(ctx, report.ID); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return err
		}
		return domain.Internal("delete report", err)
	}
	s.logger.Info().Int64("report_id", report.ID).Int64("candidate_id", report.CandidateID).Msg("report deleted")
	return nil
}
