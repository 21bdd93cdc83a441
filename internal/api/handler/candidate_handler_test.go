package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

type stubCandidateService struct {
	createFn           func(ctx context.Context, in ports.CreateCandidateInput) (*domain.Candidate, error)
	getFn              func(ctx context.Context, id int64) (*ports.CandidateDetail, error)
	listFn             func(ctx context.Context, in ports.ListCandidatesInput) (*ports.ListCandidatesResult, error)
	updateFn           func(ctx context.Context, id int64, patch ports.CandidatePatch) (*domain.Candidate, error)
	deleteFn           func(ctx context.Context, id int64) error
	recordPreAdverseFn func(ctx context.Context, id int64, charges []domain.Charge) (*domain.Candidate, error)
}

func (s *stubCandidateService) Create(ctx context.Context, in ports.CreateCandidateInput) (*domain.Candidate, error) {
	return s.createFn(ctx, in)
}

func (s *stubCandidateService) GetByID(ctx context.Context, id int64) (*ports.CandidateDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubCandidateService) List(ctx context.Context, in ports.ListCandidatesInput) (*ports.ListCandidatesResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubCandidateService) Update(ctx context.Context, id int64, patch ports.CandidatePatch) (*domain.Candidate, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubCandidateService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCandidateService) RecordPreAdverseAction(ctx context.Context, id int64, charges []domain.Charge) (*domain.Candidate, error) {
	return s.recordPreAdverseFn(ctx, id, charges)
}

const validCandidateBody = `{
	"name": "Alice Ray",
	"email": "alice@example.com",
	"dob": "1990-01-15",
	"phone": "555-0100",
	"zipcode": "94105",
	"social_security": "123-45-6789",
	"drivers_license": "D1234567",
	"status": "clear",
	"location": "San Francisco",
	"date": "2024-03-01"
}`

func TestCandidateHandler_Create_Success(t *testing.T) {
	stub := &stubCandidateService{
		createFn: func(ctx context.Context, in ports.CreateCandidateInput) (*domain.Candidate, error) {
			if in.Name != "Alice Ray" || in.Status != domain.StatusClear {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.DOB.Format("2006-01-02") != "1990-01-15" {
				t.Fatalf("dob not parsed: %v", in.DOB)
			}
			return &domain.Candidate{ID: 1, Name: in.Name, Email: in.Email, Status: in.Status}, nil
		},
	}
	h := NewCandidateHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/candidates", validCandidateBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCandidateHandler_Create_MissingFields(t *testing.T) {
	stub := &stubCandidateService{
		createFn: func(ctx context.Context, in ports.CreateCandidateInput) (*domain.Candidate, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCandidateHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/candidates", `{"email":"a@example.com"}`)
	details := validationDetails(t, h.Create(c))

	for _, want := range []string{
		"Name is required.",
		"Date of birth is required.",
		"Phone number is required.",
		"Zip code is required.",
		"Social security number is required.",
		"Driver's license is required.",
		"Status is required.",
		"Location is required.",
		"Date is required.",
	} {
		if !containsMessage(details, want) {
			t.Fatalf("missing %q in %v", want, details)
		}
	}
}

func TestCandidateHandler_Create_BadStatus(t *testing.T) {
	stub := &stubCandidateService{
		createFn: func(ctx context.Context, in ports.CreateCandidateInput) (*domain.Candidate, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCandidateHandler(stub)

	body := `{
		"name": "A", "email": "a@example.com", "dob": "1990-01-15", "phone": "1",
		"zipcode": "2", "social_security": "3", "drivers_license": "4",
		"status": "pending", "location": "SF", "date": "2024-03-01"
	}`
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/candidates", body)
	details := validationDetails(t, h.Create(c))
	if !containsMessage(details, "Status must be either 'clear' or 'consider'.") {
		t.Fatalf("missing status message, got %v", details)
	}
}

func TestCandidateHandler_Update_PartialPatch(t *testing.T) {
	stub := &stubCandidateService{
		updateFn: func(ctx context.Context, id int64, patch ports.CandidatePatch) (*domain.Candidate, error) {
			if id != 5 {
				t.Fatalf("unexpected id: %d", id)
			}
			if patch.Phone == nil || *patch.Phone != "555-0999" {
				t.Fatalf("phone missing from patch: %+v", patch)
			}
			if patch.Name != nil || patch.Email != nil {
				t.Fatalf("unset fields should be nil: %+v", patch)
			}
			return &domain.Candidate{ID: id, Phone: *patch.Phone}, nil
		},
	}
	h := NewCandidateHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/candidates/5", `{"phone":"555-0999"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Candidate updated successfully." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCandidateHandler_Update_UnknownFieldRejected(t *testing.T) {
	stub := &stubCandidateService{
		updateFn: func(ctx context.Context, id int64, patch ports.CandidatePatch) (*domain.Candidate, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCandidateHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/candidates/5", `{"nmae":"typo"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %v", err)
	}
}

func TestCandidateHandler_Delete_Success(t *testing.T) {
	stub := &stubCandidateService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 9 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	h := NewCandidateHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/candidates/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Candidate deleted successfully." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCandidateHandler_Delete_BadID(t *testing.T) {
	stub := &stubCandidateService{
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewCandidateHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/v1/candidates/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %v", err)
	}
}

func TestCandidateHandler_PreAdverseAction_Success(t *testing.T) {
	stub := &stubCandidateService{
		recordPreAdverseFn: func(ctx context.Context, id int64, charges []domain.Charge) (*domain.Candidate, error) {
			if len(charges) != 2 || charges[1].Charge != "fraud" || !charges[1].Status {
				t.Fatalf("unexpected charges: %+v", charges)
			}
			adjudication := domain.AdjudicationAdverseAction
			return &domain.Candidate{ID: id, Adjudication: &adjudication}, nil
		},
	}
	h := NewCandidateHandler(stub)

	body := `{"charges":[{"charge":"petty theft","status":false},{"charge":"fraud","status":true}]}`
	c, rec := newTestContext(t, http.MethodPut, "/api/v1/candidates/3/pre-adverse-action", body)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.UpdatePreAdverseAction(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Adjudication updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCandidateHandler_PreAdverseAction_InvalidCharges(t *testing.T) {
	stub := &stubCandidateService{
		recordPreAdverseFn: func(ctx context.Context, id int64, charges []domain.Charge) (*domain.Candidate, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCandidateHandler(stub)

	for _, body := range []string{
		`{}`,
		`{"charges":[]}`,
		`{"charges":[{"status":true}]}`,
	} {
		c, _ := newTestContext(t, http.MethodPut, "/api/v1/candidates/3/pre-adverse-action", body)
		c.SetParamNames("id")
		c.SetParamValues("3")

		details := validationDetails(t, h.UpdatePreAdverseAction(c))
		if !containsMessage(details, "Invalid charges provided") {
			t.Fatalf("missing charges message for %s, got %v", body, details)
		}
	}
}

func TestCandidateHandler_List_ForwardsQuery(t *testing.T) {
	stub := &stubCandidateService{
		listFn: func(ctx context.Context, in ports.ListCandidatesInput) (*ports.ListCandidatesResult, error) {
			if in.Name != "smith" || in.Page != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ListCandidatesResult{
				TotalCandidates: 11,
				TotalPages:      2,
				CurrentPage:     2,
				Candidates:      []ports.CandidateSummary{{Name: "Smith"}},
			}, nil
		},
	}
	h := NewCandidateHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/candidates?name=smith&page=2", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalCandidates"] != float64(11) || resp["currentPage"] != float64(2) {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
}

func TestCandidateHandler_Get_NotFound(t *testing.T) {
	stub := &stubCandidateService{
		getFn: func(ctx context.Context, id int64) (*ports.CandidateDetail, error) {
			return nil, domain.ErrCandidateNotFound
		},
	}
	h := NewCandidateHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/candidates/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Get(c); !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}
