package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireproof/backcheck/internal/api/metrics"
	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// CourtSearchHandler handles HTTP requests for court-search operations.
type CourtSearchHandler struct {
	service ports.CourtSearchService
}

func NewCourtSearchHandler(service ports.CourtSearchService) *CourtSearchHandler {
	return &CourtSearchHandler{service: service}
}

// Create handles POST /court_searches/:candidateId.
//
// @Summary      Create a court search for a candidate
// @Tags         court searches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        candidateId  path      int                       true  "Candidate id"
// @Param        body         body      createCourtSearchRequest  true  "Court search details"
// @Success      201          {object}  domain.CourtSearch
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /court_searches/{candidateId} [post]
func (h *CourtSearchHandler) Create(c echo.Context) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}

	var req createCourtSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	search, err := h.service.Create(c.Request().Context(), candidateID, req.toInput())
	if err != nil {
		return err
	}
	metrics.CourtSearchesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, search)
}

// ListByCandidate handles GET /court_searches/candidate/:candidateId. A
// candidate with no searches yields an empty array.
//
// @Summary      List a candidate's court searches
// @Tags         court searches
// @Produce      json
// @Security     BearerAuth
// @Param        candidateId  path      int  true  "Candidate id"
// @Success      200          {array}   domain.CourtSearch
// @Failure      404          {object}  map[string]string
// @Router       /court_searches/candidate/{candidateId} [get]
func (h *CourtSearchHandler) ListByCandidate(c echo.Context) error {
	candidateID, err := paramID(c, "candidateId")
	if err != nil {
		return err
	}

	searches, err := h.service.ListByCandidateID(c.Request().Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searches)
}

// Get handles GET /court_searches/:id.
//
// @Summary      Get a court search by id
// @Tags         court searches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Court search id"
// @Success      200  {object}  domain.CourtSearch
// @Failure      404  {object}  map[string]string
// @Router       /court_searches/{id} [get]
func (h *CourtSearchHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	search, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, search)
}

// UpdateStatus handles PATCH /court_searches/:id. Status is the only mutable
// field; both values are reachable from each other.
//
// @Summary      Update a court search's status
// @Tags         court searches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                             true  "Court search id"
// @Param        body  body      updateCourtSearchStatusRequest  true  "New status"
// @Success      200   {object}  domain.CourtSearch
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /court_searches/{id} [patch]
func (h *CourtSearchHandler) UpdateStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateCourtSearchStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	search, err := h.service.UpdateStatus(c.Request().Context(), id, domain.Status(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, search)
}

// Delete handles DELETE /court_searches/:id.
//
// @Summary      Delete a court search
// @Tags         court searches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Court search id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /court_searches/{id} [delete]
func (h *CourtSearchHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Court search deleted successfully."})
}
