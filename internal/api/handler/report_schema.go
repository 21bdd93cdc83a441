package handler

import (
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

type createReportRequest struct {
	Status         string     `json:"status"          validate:"required,oneof=clear consider"`
	Package        string     `json:"package"         validate:"required"`
	Adjudication   *string    `json:"adjudication"`
	TurnaroundTime int        `json:"turnaround_time" validate:"required,gt=0"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// updateReportRequest is the partial-update body for reports.
type updateReportRequest struct {
	Status         *string    `json:"status"          validate:"omitempty,oneof=clear consider"`
	Package        *string    `json:"package"`
	Adjudication   *string    `json:"adjudication"`
	TurnaroundTime *int       `json:"turnaround_time" validate:"omitempty,gt=0"`
	CompletedAt    *time.Time `json:"completed_at"`
}

func (r createReportRequest) toInput() ports.CreateReportInput {
	return ports.CreateReportInput{
		Status:         domain.Status(r.Status),
		Package:        r.Package,
		Adjudication:   r.Adjudication,
		TurnaroundTime: r.TurnaroundTime,
		CompletedAt:    r.CompletedAt,
	}
}

func (r updateReportRequest) toPatch() ports.ReportPatch {
	patch := ports.ReportPatch{
		Package:        r.Package,
		Adjudication:   r.Adjudication,
		TurnaroundTime: r.TurnaroundTime,
		CompletedAt:    r.CompletedAt,
	}
	if r.Status != nil {
		status := domain.Status(*r.Status)
		patch.Status = &status
	}
	return patch
}
