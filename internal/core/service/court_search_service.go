package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// CourtSearchService manages candidate-scoped court-search records.
type CourtSearchService struct {
	searches   ports.CourtSearchRepository
	candidates ports.CandidateRepository
	logger     zerolog.Logger
}

func NewCourtSearchService(searches ports.CourtSearchRepository, candidates ports.CandidateRepository, logger zerolog.Logger) *CourtSearchService {
	return &CourtSearchService{searches: searches, candidates: candidates, logger: logger}
}

// Create links a new court search to an existing candidate.
func (s *CourtSearchService) Create(ctx context.Context, candidateID int64, in ports.CreateCourtSearchInput) (*domain.CourtSearch, error) {
	if _, err := s.candidates.FindByID(ctx, candidateID); err != nil {
		return nil, err
	}

	created, err := s.searches.Create(ctx, &domain.CourtSearch{
		Status:      in.Status,
		SearchType:  in.SearchType,
		Date:        in.Date,
		CandidateID: candidateID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("candidate_id", candidateID).Msg("failed to create court search")
		return nil, domain.Internal("create court search", err)
	}

	s.logger.Info().Int64("court_search_id", created.ID).Int64("candidate_id", candidateID).Msg("court search created")
	return created, nil
}

// ListByCandidateID returns the candidate's court searches; an empty slice is
// a normal result.
func (s *CourtSearchService) ListByCandidateID(ctx context.Context, candidateID int64) ([]*domain.CourtSearch, error) {
	searches, err := s.searches.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, domain.Internal("fetch court searches", err)
	}
	return searches, nil
}

func (s *CourtSearchService) GetByID(ctx context.Context, id int64) (*domain.CourtSearch, error) {
	return s.searches.FindByID(ctx, id)
}

// UpdateStatus sets the status of an existing court search. Status values are
// validated at the transport boundary before this call.
func (s *CourtSearchService) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.CourtSearch, error) {
	updated, err := s.searches.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrCourtSearchNotFound) {
			return nil, err
		}
		return nil, domain.Internal("update court search status", err)
	}
	return updated, nil
}

func (s *CourtSearchService) Delete(ctx context.Context, id int64) error {
	if err := s.searches.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCourtSearchNotFound) {
			return err
		}
		return domain.Internal("delete court search", err)
	}
	s.logger.Info().Int64("court_search_id", id).Msg("court search deleted")
	return nil
}
