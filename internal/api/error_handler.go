package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorMessage string `json:"errorMessage"`
}

// validationResponse is the envelope for validation failures, which carry one
// message per failing field.
type validationResponse struct {
	StatusCode int      `json:"statusCode"`
	Errors     []string `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps typed domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"statusCode": n, "errorMessage": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var de *domain.Error
		if errors.As(err, &de) {
			code := statusFor(de.Kind)
			if code == http.StatusInternalServerError {
				log.Error().
					Err(de.Err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("internal error")
			}
			if len(de.Details) > 0 {
				_ = c.JSON(code, validationResponse{StatusCode: code, Errors: de.Details})
				return
			}
			_ = c.JSON(code, errorResponse{StatusCode: code, ErrorMessage: de.Message})
			return
		}

		// Echo's own errors (bind failures, 404 from router, middleware rejections).
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{
				StatusCode:   he.Code,
				ErrorMessage: fmt.Sprintf("%v", he.Message),
			})
			return
		}

		// Unexpected error: log the real cause, return a generic message.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, errorResponse{
			StatusCode:   http.StatusInternalServerError,
			ErrorMessage: "Internal Server Error.",
		})
	}
}

// statusFor maps a domain error kind to its HTTP status. Conflicts render as
// 400 rather than 409 to preserve the API's published contract.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
