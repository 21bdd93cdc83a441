package service

import (
	"context"
	"sort"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// Hand-rolled in-memory repositories. They mimic the Postgres layer's error
// translation so services see the same sentinel errors in tests.

type stubCandidateRepo struct {
	candidates map[int64]*domain.Candidate
	nextID     int64
}

func newStubCandidateRepo() *stubCandidateRepo {
	return &stubCandidateRepo{candidates: make(map[int64]*domain.Candidate), nextID: 1}
}

func cloneCandidate(c *domain.Candidate) *domain.Candidate {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCandidateRepo) Create(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	for _, existing := range r.candidates {
		if existing.Email == c.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneCandidate(c)
	copy.ID = r.nextID
	r.nextID++
	r.candidates[copy.ID] = cloneCandidate(copy)
	return copy, nil
}

func (r *stubCandidateRepo) FindByID(_ context.Context, id int64) (*domain.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return cloneCandidate(c), nil
}

func (r *stubCandidateRepo) FindByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	for _, c := range r.candidates {
		if c.Email == email {
			return cloneCandidate(c), nil
		}
	}
	return nil, domain.ErrCandidateNotFound
}

func (r *stubCandidateRepo) FindAll(_ context.Context) ([]*domain.Candidate, error) {
	out := make([]*domain.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, cloneCandidate(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCandidateRepo) Update(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if _, ok := r.candidates[c.ID]; !ok {
		return nil, domain.ErrCandidateNotFound
	}
	for id, existing := range r.candidates {
		if id != c.ID && existing.Email == c.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.candidates[c.ID] = cloneCandidate(c)
	return cloneCandidate(c), nil
}

func (r *stubCandidateRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.candidates[id]; !ok {
		return domain.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	return nil
}

type stubReportRepo struct {
	reports map[int64]*domain.Report
	nextID  int64
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[int64]*domain.Report), nextID: 1}
}

func cloneReport(rep *domain.Report) *domain.Report {
	if rep == nil {
		return nil
	}
	clone := *rep
	return &clone
}

func (r *stubReportRepo) Create(_ context.Context, rep *domain.Report) (*domain.Report, error) {
	for _, existing := range r.reports {
		if existing.CandidateID == rep.CandidateID {
			return nil, domain.ErrReportExists
		}
	}
	copy := cloneReport(rep)
	copy.ID = r.nextID
	r.nextID++
	r.reports[copy.ID] = cloneReport(copy)
	return copy, nil
}

func (r *stubReportRepo) FindByID(_ context.Context, id int64) (*domain.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return cloneReport(rep), nil
}

func (r *stubReportRepo) FindByCandidateID(_ context.Context, candidateID int64) (*domain.Report, error) {
	for _, rep := range r.reports {
		if rep.CandidateID == candidateID {
			return cloneReport(rep), nil
		}
	}
	return nil, domain.ErrReportNotFound
}

func (r *stubReportRepo) Update(_ context.Context, rep *domain.Report) (*domain.Report, error) {
	if _, ok := r.reports[rep.ID]; !ok {
		return nil, domain.ErrReportNotFound
	}
	r.reports[rep.ID] = cloneReport(rep)
	return cloneReport(rep), nil
}

func (r *stubReportRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.reports[id]; !ok {
		return domain.ErrReportNotFound
	}
	delete(r.reports, id)
	return nil
}

func (r *stubReportRepo) DeleteByCandidateID(_ context.Context, candidateID int64) (int64, error) {
	var n int64
	for id, rep := range r.reports {
		if rep.CandidateID == candidateID {
			delete(r.reports, id)
			n++
		}
	}
	return n, nil
}

type stubCourtSearchRepo struct {
	searches map[int64]*domain.CourtSearch
	nextID   int64
}

func newStubCourtSearchRepo() *stubCourtSearchRepo {
	return &stubCourtSearchRepo{searches: make(map[int64]*domain.CourtSearch), nextID: 1}
}

func cloneCourtSearch(s *domain.CourtSearch) *domain.CourtSearch {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubCourtSearchRepo) Create(_ context.Context, s *domain.CourtSearch) (*domain.CourtSearch, error) {
	copy := cloneCourtSearch(s)
	copy.ID = r.nextID
	r.nextID++
	r.searches[copy.ID] = cloneCourtSearch(copy)
	return copy, nil
}

func (r *stubCourtSearchRepo) FindByID(_ context.Context, id int64) (*domain.CourtSearch, error) {
	s, ok := r.searches[id]
	if !ok {
		return nil, domain.ErrCourtSearchNotFound
	}
	return cloneCourtSearch(s), nil
}

func (r *stubCourtSearchRepo) FindByCandidateID(_ context.Context, candidateID int64) ([]*domain.CourtSearch, error) {
	out := []*domain.CourtSearch{}
	for _, s := range r.searches {
		if s.CandidateID == candidateID {
			out = append(out, cloneCourtSearch(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCourtSearchRepo) UpdateStatus(_ context.Context, id int64, status domain.Status) (*domain.CourtSearch, error) {
	s, ok := r.searches[id]
	if !ok {
		return nil, domain.ErrCourtSearchNotFound
	}
	s.Status = status
	return cloneCourtSearch(s), nil
}

func (r *stubCourtSearchRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.searches[id]; !ok {
		return domain.ErrCourtSearchNotFound
	}
	delete(r.searches, id)
	return nil
}

func (r *stubCourtSearchRepo) DeleteByCandidateID(_ context.Context, candidateID int64) (int64, error) {
	var n int64
	for id, s := range r.searches {
		if s.CandidateID == candidateID {
			delete(r.searches, id)
			n++
		}
	}
	return n, nil
}

type stubPreAdverseRepo struct {
	actions []*domain.PreAdverseAction
	nextID  int64
}

func newStubPreAdverseRepo() *stubPreAdverseRepo {
	return &stubPreAdverseRepo{nextID: 1}
}

func (r *stubPreAdverseRepo) Create(_ context.Context, p *domain.PreAdverseAction) (*domain.PreAdverseAction, error) {
	copy := *p
	copy.ID = r.nextID
	r.nextID++
	r.actions = append(r.actions, &copy)
	return &copy, nil
}

func (r *stubPreAdverseRepo) FindByCandidateID(_ context.Context, candidateID int64) ([]*domain.PreAdverseAction, error) {
	out := []*domain.PreAdverseAction{}
	for _, a := range r.actions {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

// stubTxRunner runs the callback inline and counts invocations.
type stubTxRunner struct {
	calls int
}

func (r *stubTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}
