package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hireproof/backcheck/internal/core/domain"
	"github.com/hireproof/backcheck/internal/core/ports"
)

// Auth validates the bearer JWT and injects its claims into context. A missing
// or malformed Authorization header is 401; a token that fails verification,
// carries a bad payload, or has been revoked is 403.
func Auth(jwtSecret string, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNoToken.Message)
			}
			raw := strings.TrimPrefix(authHeader, "Bearer ")

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrInvalidToken.Message)
			}

			if claims["id"] == nil || claims["email"] == nil {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrInvalidToken.Message)
			}

			if denylist != nil {
				// Fail open on store errors: the token already passed signature
				// verification, so a denylist outage must not lock everyone out.
				if revoked, err := denylist.IsRevoked(c.Request().Context(), raw); err == nil && revoked {
					return echo.NewHTTPError(http.StatusForbidden, domain.ErrInvalidToken.Message)
				}
			}

			c.Set("user_id", claims["id"])
			c.Set("email", claims["email"])
			c.Set("token", raw)

			return next(c)
		}
	}
}
