package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// pageSize is the fixed number of candidates per list page.
const pageSize = 10

// CandidateService enforces candidate uniqueness, pagination/filtering,
// explicit cascading deletion, and adjudication recomputation.
type CandidateService struct {
	candidates ports.CandidateRepository
	reports    ports.ReportRepository
	searches   ports.CourtSearchRepository
	preAdverse ports.PreAdverseActionRepository
	tx         ports.TxRunner
	logger     zerolog.Logger
}

func NewCandidateService(
	candidates ports.CandidateRepository,
	reports ports.ReportRepository,
	searches ports.CourtSearchRepository,
	preAdverse ports.PreAdverseActionRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *CandidateService {
	return &CandidateService{
		candidates: candidates,
		reports:    reports,
		searches:   searches,
		preAdverse: preAdverse,
		tx:         tx,
		logger:     logger,
	}
}

// Create persists a new candidate. The email uniqueness check here yields the
// friendly conflict error; the store's unique constraint remains the backstop
// under concurrent creates and maps to the same error.
func (s *CandidateService) Create(ctx context.Context, in ports.CreateCandidateInput) (*domain.Candidate, error) {
	_, err := s.candidates.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrCandidateNotFound):
		return nil, domain.Internal("check candidate email", err)
	}

	created, err := s.candidates.Create(ctx, &domain.Candidate{
		Name:           in.Name,
		Email:          in.Email,
		DOB:            in.DOB,
		Phone:          in.Phone,
		Zipcode:        in.Zipcode,
		SocialSecurity: in.SocialSecurity,
		DriversLicense: in.DriversLicense,
		Adjudication:   in.Adjudication,
		Status:         in.Status,
		Location:       in.Location,
		Date:           in.Date,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create candidate")
		return nil, domain.Internal("create candidate", err)
	}

	s.logger.Info().Int64("candidate_id", created.ID).Msg("candidate created")
	return created, nil
}

// GetByID returns the candidate joined with its report and court-search
// summaries. A candidate without a report yields a nil report, not an error.
func (s *CandidateService) GetByID(ctx context.Context, id int64) (*ports.CandidateDetail, error) {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.CandidateDetail{Candidate: *candidate, CourtSearches: []ports.CourtSearchSummary{}}

	report, err := s.reports.FindByCandidateID(ctx, id)
	switch {
	case err == nil:
		detail.Report = &ports.ReportSummary{
			Status:         report.Status,
			Package:        report.Package,
			Adjudication:   report.Adjudication,
			TurnaroundTime: report.TurnaroundTime,
			CompletedAt:    report.CompletedAt,
		}
	case !errors.Is(err, domain.ErrReportNotFound):
		return nil, domain.Internal("fetch candidate report", err)
	}

	searches, err := s.searches.FindByCandidateID(ctx, id)
	if err != nil {
		return nil, domain.Internal("fetch candidate court searches", err)
	}
	for _, cs := range searches {
		detail.CourtSearches = append(detail.CourtSearches, ports.CourtSearchSummary{
			Status:     cs.Status,
			SearchType: cs.SearchType,
			Date:       cs.Date,
		})
	}

	return detail, nil
}

// List returns one fixed-size page of candidate summaries, optionally
// filtered by a case-insensitive name substring. A filter that matches
// nothing and a page past the last one are both distinct not-found outcomes;
// an empty overall result set is returned without error.
func (s *CandidateService) List(ctx context.Context, in ports.ListCandidatesInput) (*ports.ListCandidatesResult, error) {
	candidates, err := s.candidates.FindAll(ctx)
	if err != nil {
		return nil, domain.Internal("fetch candidates", err)
	}

	filtered := candidates
	if in.Name != "" {
		needle := strings.ToLower(in.Name)
		filtered = nil
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) == 0 {
			return nil, domain.ErrNameNotFound
		}
	}

	page := in.Page
	if page <= 0 {
		page = 1
	}

	total := len(filtered)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	result := &ports.ListCandidatesResult{
		TotalCandidates: total,
		TotalPages:      totalPages,
		CurrentPage:     page,
		Candidates:      []ports.CandidateSummary{},
	}
	if total == 0 {
		return result, nil
	}
	if page > totalPages {
		return nil, domain.PageOutOfRange(page, totalPages)
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	for _, c := range filtered[start:end] {
		result.Candidates = append(result.Candidates, ports.CandidateSummary{
			Name:         c.Name,
			Adjudication: c.Adjudication,
			Status:       c.Status,
			Location:     c.Location,
			Date:         c.Date,
		})
	}

	return result, nil
}

// Update merges the non-nil patch fields into the stored record and persists
// the result. Fields omitted from the patch are unchanged.
func (s *CandidateService) Update(ctx context.Context, id int64, patch ports.CandidatePatch) (*domain.Candidate, error) {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyCandidatePatch(candidate, patch)

	updated, err := s.candidates.Update(ctx, candidate)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrCandidateNotFound) {
			return nil, err
		}
		return nil, domain.Internal("update candidate", err)
	}

	s.logger.Info().Int64("candidate_id", id).Msg("candidate updated")
	return updated, nil
}

// Delete removes the candidate and all of its dependent rows. The child
// deletes are issued explicitly, children before parent, inside a single
// transaction; the schema's ON DELETE CASCADE is defense-in-depth only.
func (s *CandidateService) Delete(ctx context.Context, id int64) error {
	if _, err := s.candidates.FindByID(ctx, id); err != nil {
		return err
	}

	var reportsDeleted, searchesDeleted int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if reportsDeleted, err = s.reports.DeleteByCandidateID(ctx, id); err != nil {
			return err
		}
		if searchesDeleted, err = s.searches.DeleteByCandidateID(ctx, id); err != nil {
			return err
		}
		return s.candidates.Delete(ctx, id)
	})
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return de
		}
		s.logger.Error().Err(err).Int64("candidate_id", id).Msg("cascading delete failed")
		return domain.Internal("delete candidate", err)
	}

	s.logger.Info().
		Int64("candidate_id", id).
		Int64("reports_deleted", reportsDeleted).
		Int64("court_searches_deleted", searchesDeleted).
		Msg("candidate deleted")
	return nil
}

// RecordPreAdverseAction stores a new pre-adverse action for the candidate
// and recomputes the candidate's adjudication from all of its records.
func (s *CandidateService) RecordPreAdverseAction(ctx context.Context, id int64, charges []domain.Charge) (*domain.Candidate, error) {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.preAdverse.Create(ctx, &domain.PreAdverseAction{CandidateID: id, Charges: charges}); err != nil {
		return nil, domain.Internal("record pre-adverse action", err)
	}

	return s.recomputeAdjudication(ctx, candidate)
}

// recomputeAdjudication sets adjudication to "adverse action" when any charge
// across the candidate's pre-adverse actions is sustained. Re-running with
// unchanged inputs writes nothing.
func (s *CandidateService) recomputeAdjudication(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	actions, err := s.preAdverse.FindByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, domain.Internal("fetch pre-adverse actions", err)
	}

	adverse := false
	for _, a := range actions {
		if a.HasAdverseCharge() {
			adverse = true
			break
		}
	}
	if !adverse {
		return candidate, nil
	}
	if candidate.Adjudication != nil && *candidate.Adjudication == domain.AdjudicationAdverseAction {
		return candidate, nil
	}

	adjudication := domain.AdjudicationAdverseAction
	candidate.Adjudication = &adjudication
	updated, err := s.candidates.Update(ctx, candidate)
	if err != nil {
		return nil, domain.Internal("update adjudication", err)
	}

	s.logger.Info().Int64("candidate_id", candidate.ID).Msg("adjudication set to adverse action")
	return updated, nil
}

// applyCandidatePatch copies every non-nil patch field onto c.
func applyCandidatePatch(c *domain.Candidate, patch ports.CandidatePatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.DOB != nil {
		c.DOB = *patch.DOB
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Zipcode != nil {
		c.Zipcode = *patch.Zipcode
	}
	if patch.SocialSecurity != nil {
		c.SocialSecurity = *patch.SocialSecurity
	}
	if patch.DriversLicense != nil {
		c.DriversLicense = *patch.DriversLicense
	}
	if patch.Adjudication != nil {
		c.Adjudication = patch.Adjudication
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Location != nil {
		c.Location = *patch.Location
	}
	if patch.Date != nil {
		c.Date = *patch.Date
	}
}
