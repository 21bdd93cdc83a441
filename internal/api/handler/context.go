package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// paramID parses a numeric path parameter, rejecting anything that is not a
// positive integer before a service call is made.
func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+paramLabel(name)+".")
	}
	return id, nil
}

func paramLabel(name string) string {
	switch name {
	case "candidateId":
		return "candidate ID"
	case "reportId":
		return "report ID"
	default:
		return "ID"
	}
}

// bindStrict decodes a JSON body into v, rejecting unknown fields. Partial
// update endpoints use it so a typoed field name fails loudly instead of
// silently leaving the record unchanged.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
