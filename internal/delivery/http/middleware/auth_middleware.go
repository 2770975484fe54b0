package middleware

import (
	"net/http"
	"strings"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyAccountID is the echo.Context key under which Authenticate
// stores the verified account's UUID.
const ContextKeyAccountID = "accountID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the asserted account ID
// on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Message(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Message(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Message(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(ContextKeyAccountID, claims.AccountID)

		return next(c)
	}
}
