package handler

import (
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// dateLayout is the wire format for the dob and date fields.
const dateLayout = "2006-01-02"

type createCandidateRequest struct {
	Name           string  `json:"name"             validate:"required"`
	Email          string  `json:"email"            validate:"required,email"`
	DOB            string  `json:"dob"              validate:"required,datetime=2006-01-02"`
	Phone          string  `json:"phone"            validate:"required"`
	Zipcode        string  `json:"zipcode"          validate:"required"`
	SocialSecurity string  `json:"social_security"  validate:"required"`
	DriversLicense string  `json:"drivers_license"  validate:"required"`
	Adjudication   *string `json:"adjudication"`
	Status         string  `json:"status"           validate:"required,oneof=clear consider"`
	Location       string  `json:"location"         validate:"required"`
	Date           string  `json:"date"             validate:"required,datetime=2006-01-02"`
}

// updateCandidateRequest is the partial-update body. Absent fields leave the
// stored value unchanged; unknown fields are rejected by strict decoding.
type updateCandidateRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"            validate:"omitempty,email"`
	DOB            *string `json:"dob"              validate:"omitempty,datetime=2006-01-02"`
	Phone          *string `json:"phone"`
	Zipcode        *string `json:"zipcode"`
	SocialSecurity *string `json:"social_security"`
	DriversLicense *string `json:"drivers_license"`
	Adjudication   *string `json:"adjudication"`
	Status         *string `json:"status"           validate:"omitempty,oneof=clear consider"`
	Location       *string `json:"location"`
	Date           *string `json:"date"             validate:"omitempty,datetime=2006-01-02"`
}

type chargeRequest struct {
	Charge string `json:"charge" validate:"required"`
	Status *bool  `json:"status" validate:"required"`
}

type preAdverseActionRequest struct {
	Charges []chargeRequest `json:"charges" validate:"required,min=1,dive"`
}

type listCandidatesResponse struct {
	TotalCandidates int                      `json:"totalCandidates"`
	TotalPages      int                      `json:"totalPages"`
	CurrentPage     int                      `json:"currentPage"`
	Candidates      []ports.CandidateSummary `json:"candidates"`
}

type updateCandidateResponse struct {
	Message   string            `json:"message"`
	Candidate *domain.Candidate `json:"candidate"`
}

func (r createCandidateRequest) toInput() ports.CreateCandidateInput {
	dob, _ := time.Parse(dateLayout, r.DOB)
	date, _ := time.Parse(dateLayout, r.Date)
	return ports.CreateCandidateInput{
		Name:           r.Name,
		Email:          r.Email,
		DOB:            dob,
		Phone:          r.Phone,
		Zipcode:        r.Zipcode,
		SocialSecurity: r.SocialSecurity,
		DriversLicense: r.DriversLicense,
		Adjudication:   r.Adjudication,
		Status:         domain.Status(r.Status),
		Location:       r.Location,
		Date:           date,
	}
}

func (r updateCandidateRequest) toPatch() ports.CandidatePatch {
	patch := ports.CandidatePatch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Zipcode:        r.Zipcode,
		SocialSecurity: r.SocialSecurity,
		DriversLicense: r.DriversLicense,
		Adjudication:   r.Adjudication,
		Location:       r.Location,
	}
	if r.DOB != nil {
		dob, _ := time.Parse(dateLayout, *r.DOB)
		patch.DOB = &dob
	}
	if r.Date != nil {
		date, _ := time.Parse(dateLayout, *r.Date)
		patch.Date = &date
	}
	if r.Status != nil {
		status := domain.Status(*r.Status)
		patch.Status = &status
	}
	return patch
}

func (r preAdverseActionRequest) toCharges() []domain.Charge {
	charges := make([]domain.Charge, 0, len(r.Charges))
	for _, c := range r.Charges {
		charges = append(charges, domain.Charge{Charge: c.Charge, Status: *c.Status})
	}
	return charges
}
