package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"proplist/internal/auth"
	"proplist/internal/model"
)

// ContextClaimsKey is the echo context key under which verified claims are stored.
const ContextClaimsKey = "claims"

// Authenticate validates the bearer token and attaches its claims to the
// request context. Requests without a valid token never reach the handler.
func Authenticate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}

			claims, err := jwtService.Validate(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token"})
			}

			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// RequireRoles authorizes the already-authenticated caller. The caller's role
// set must intersect roles, and a caller holding the Staff role must
// additionally have its staff sub-role in staffRoles. Both checks must pass.
// Must run after Authenticate.
func RequireRoles(roles []model.Role, staffRoles ...model.StaffRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}

			hasRole := false
			for _, r := range roles {
				if claims.Roles.Contains(r) {
					hasRole = true
					break
				}
			}

			hasStaffRole := true
			if claims.Roles.Contains(model.RoleStaff) {
				hasStaffRole = false
				for _, sr := range staffRoles {
					if claims.StaffRole == sr {
						hasStaffRole = true
						break
					}
				}
			}

			if !hasRole || !hasStaffRole {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
			}
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims attached by Authenticate.
func ClaimsFromContext(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(ContextClaimsKey).(*auth.Claims)
	return claims, ok
}
