package http

import (
	"context"
	"net/http"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

// Authenticator validates HS256 bearer tokens issued by the identity
// provider. The token subject is the user id.
type Authenticator struct {
	validator *validator.Validator
}

func NewAuthenticator(secret, issuer, audience string) (*Authenticator, error) {
	v, err := validator.New(
		func(context.Context) (any, error) { return []byte(secret), nil },
		validator.HS256,
		issuer,
		[]string{audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}
	return &Authenticator{validator: v}, nil
}

// Middleware rejects requests without a valid token and stores the caller's
// id in the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := jwtmiddleware.AuthHeaderTokenExtractor(c.Request())
			if err != nil || token == "" {
				return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "Missing or malformed bearer token")
			}

			claims, err := a.validator.ValidateToken(c.Request().Context(), token)
			if err != nil {
				c.Logger().Debugf("token rejected: %v", err)
				return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "Failed to validate token")
			}

			validated, ok := claims.(*validator.ValidatedClaims)
			if !ok {
				return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "Failed to validate token")
			}

			userID, err := kernel.UUIDFromString(validated.RegisteredClaims.Subject)
			if err != nil {
				return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "Token subject is not a user id")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) kernel.UUID {
	userID, _ := c.Get(userIDKey).(kernel.UUID)
	return userID
}

func currentRole(c echo.Context) profile.Role {
	role, ok := c.Get(roleKey).(profile.Role)
	if !ok {
		return profile.Customer
	}
	return role
}

// requireRole resolves the caller's role from their profile and lets the
// request through only when allowed accepts it.
func (s *Server) requireRole(allowed func(profile.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := s.sessions.Role(c.Request().Context(), currentUser(c))
			if err != nil {
				return s.fail(c, err)
			}
			if !allowed(role) {
				return writeProblem(c, http.StatusForbidden, "Forbidden", "Your role cannot access this resource")
			}
			c.Set(roleKey, role)
			return next(c)
		}
	}
}
