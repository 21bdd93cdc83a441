package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hireproof/backcheck/internal/api/metrics"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// CandidateHandler handles HTTP requests for candidate operations.
type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

// Create handles POST /candidates.
//
// @Summary      Create a new candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCandidateRequest  true  "Candidate details"
// @Success      201   {object}  domain.Candidate
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c echo.Context) error {
	var req createCandidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	candidate, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	metrics.CandidatesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, candidate)
}

// Get handles GET /candidates/:id. The response joins the candidate with its
// report summary (null when absent) and court-search summaries.
//
// @Summary      Get a candidate by id
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Candidate id"
// @Success      200  {object}  ports.CandidateDetail
// @Failure      404  {object}  map[string]string
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

// List handles GET /candidates with optional name filtering and pagination.
//
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        name  query     string  false  "Case-insensitive name substring filter"
// @Param        page  query     int     false  "Page number (1-based, 10 per page)"
// @Success      200   {object}  listCandidatesResponse
// @Failure      404   {object}  map[string]string
// @Router       /candidates [get]
func (h *CandidateHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.service.List(c.Request().Context(), ports.ListCandidatesInput{
		Name: c.QueryParam("name"),
		Page: page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listCandidatesResponse{
		TotalCandidates: result.TotalCandidates,
		TotalPages:      result.TotalPages,
		CurrentPage:     result.CurrentPage,
		Candidates:      result.Candidates,
	})
}

// Update handles PUT /candidates/:id. The body is a partial update; fields
// left out keep their stored values.
//
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Candidate id"
// @Param        body  body      updateCandidateRequest  true  "Fields to update"
// @Success      200   {object}  updateCandidateResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateCandidateRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	candidate, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateCandidateResponse{
		Message:   "Candidate updated successfully.",
		Candidate: candidate,
	})
}

// Delete handles DELETE /candidates/:id, removing the candidate together with
// its report and court searches.
//
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Candidate id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.CandidatesDeletedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Candidate deleted successfully."})
}

// UpdatePreAdverseAction handles PUT /candidates/:id/pre-adverse-action. It
// records the submitted charges and recomputes the candidate's adjudication.
//
// @Summary      Record a pre-adverse action
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Candidate id"
// @Param        body  body      preAdverseActionRequest  true  "Charges"
// @Success      200   {object}  updateCandidateResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /candidates/{id}/pre-adverse-action [put]
func (h *CandidateHandler) UpdatePreAdverseAction(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req preAdverseActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid charges provided")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	candidate, err := h.service.RecordPreAdverseAction(c.Request().Context(), id, req.toCharges())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateCandidateResponse{
		Message:   "Adjudication updated successfully",
		Candidate: candidate,
	})
}
