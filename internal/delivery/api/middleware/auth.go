package middleware

import (
	"strings"

	deliverycontext "parcel/internal/delivery/context"
	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the bearer access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("bearer token is missing")
		}

		claims, err := m.tokens.Decrypt(token)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		deliverycontext.SetClaims(c, claims.Sub, claims.Role)

		return next(c)
	}
}

// RequireRole rejects callers whose role is not one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetRole(c)
			if !ok || !allowed.Contains(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// GetRole returns the authenticated caller's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	return deliverycontext.GetRole(c)
}
