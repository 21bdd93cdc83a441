package handler

import (
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

type createCourtSearchRequest struct {
	Status     string `json:"status"      validate:"required,oneof=clear consider"`
	SearchType string `json:"search_type" validate:"required"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
}

type updateCourtSearchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=clear consider"`
}

func (r createCourtSearchRequest) toInput() ports.CreateCourtSearchInput {
	date, _ := time.Parse(dateLayout, r.Date)
	return ports.CreateCourtSearchInput{
		Status:     domain.Status(r.Status),
		SearchType: r.SearchType,
		Date:       date,
	}
}
