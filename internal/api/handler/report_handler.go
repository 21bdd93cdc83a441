package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireproof/backcheck/internal/api/metrics"
	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// ReportHandler handles HTTP requests for report operations. Reports are
// reachable under the owning candidate's id and, on the /id subtree, under
// their own id.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Create handles POST /reports/:candidateId. A candidate can own at most one
// report; a second create is rejected.
//
// @Summary      Create a report for a candidate
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        candidateId  path      int                  true  "Candidate id"
// @Param        body         body      createReportRequest  true  "Report details"
// @Success      201          {object}  domain.Report
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /reports/{candidateId} [post]
func (h *ReportHandler) Create(c echo.Context) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.Create(c.Request().Context(), candidateID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrReportExists) {
			metrics.ReportsCreatedTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.ReportsCreatedTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.ReportsCreatedTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, report)
}

// GetByCandidate handles GET /reports/:candidateId.
//
// @Summary      Get a candidate's report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        candidateId  path      int  true  "Candidate id"
// @Success      200          {object}  domain.Report
// @Failure      404          {object}  map[string]string
// @Router       /reports/{candidateId} [get]
func (h *ReportHandler) GetByCandidate(c echo.Context) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}

	report, err := h.service.GetByCandidateID(c.Request().Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// GetByID handles GET /reports/id/:reportId.
//
// @Summary      Get a report by its own id
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        reportId  path      int  true  "Report id"
// @Success      200       {object}  domain.Report
// @Failure      404       {object}  map[string]string
// @Router       /reports/id/{reportId} [get]
func (h *ReportHandler) GetByID(c echo.Context) error {
	reportID, err := paramID(c, "reportId")
	if err != nil {
		return err
	}

	report, err := h.service.GetByID(c.Request().Context(), reportID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// UpdateByCandidate handles PUT /reports/:candidateId.
//
// @Summary      Update a candidate's report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        candidateId  path      int                  true  "Candidate id"
// @Param        body         body      updateReportRequest  true  "Fields to update"
// @Success      200          {object}  domain.Report
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /reports/{candidateId} [put]
func (h *ReportHandler) UpdateByCandidate(c echo.Context) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}

	var req updateReportRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.UpdateByCandidateID(c.Request().Context(), candidateID, req.toPatch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// UpdateByID handles PUT /reports/id/:reportId.
//
// @Summary      Update a report by its own id
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reportId  path      int                  true  "Report id"
// @Param        body      body      updateReportRequest  true  "Fields to update"
// @Success      200       {object}  domain.Report
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /reports/id/{reportId} [put]
func (h *ReportHandler) UpdateByID(c echo.Context) error {
	reportID, err := paramID(c, "reportId")
	if err != nil {
		return err
	}

	var req updateReportRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.UpdateByID(c.Request().Context(), reportID, req.toPatch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// DeleteByCandidate handles DELETE /reports/:candidateId.
//
// @Summary      Delete a candidate's report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        candidateId  path      int  true  "Candidate id"
// @Success      200          {object}  messageResponse
// @Failure      404          {object}  map[string]string
// @Router       /reports/{candidateId} [delete]
func (h *ReportHandler) DeleteByCandidate(c echo.Context) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteByCandidateID(c.Request().Context(), candidateID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Report deleted successfully."})
}

// DeleteByID handles DELETE /reports/id/:reportId.
//
// @Summary      Delete a report by its own id
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        reportId  path      int  true  "Report id"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  map[string]string
// @Router       /reports/id/{reportId} [delete]
func (h *ReportHandler) DeleteByID(c echo.Context) error {
	reportID, err := paramID(c, "reportId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteByID(c.Request().Context(), reportID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Report deleted successfully."})
}
