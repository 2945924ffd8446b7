package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
)

// Identity is the verified token identity attached to a request after the
// authentication phase. It is passed explicitly to every protected operation.
type Identity struct {
	UserID       uint
	Email        string
	Role         string
	DepartmentID *uint
}

// IdentityFromContext reconstructs the identity from the token the JWT
// middleware attached to the request. It fails with unauthorized when the
// middleware did not run or the claims are malformed.
func IdentityFromContext(c echo.Context) (*Identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}

	identity := &Identity{}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	identity.UserID = uint(userID)

	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	if deptID, ok := claims["department_id"].(float64); ok {
		id := uint(deptID)
		identity.DepartmentID = &id
	}

	return identity, nil
}

// RequireRoles returns middleware implementing the authorization phase: the
// authenticated identity's role must be a member of the given set. An empty
// set means any authenticated identity is allowed.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := IdentityFromContext(c)
			if err != nil {
				return err
			}

			if len(roles) == 0 {
				return next(c)
			}

			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "insufficient role",
				Code:  "FORBIDDEN",
			})
		}
	}
}

// RequireAdministrator is shorthand for the administrator-only authorization phase.
func RequireAdministrator() echo.MiddlewareFunc {
	return RequireRoles(model.RoleAdministrator)
}
