package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tourguard/tourguard-backend/internal/models"
	"github.com/tourguard/tourguard-backend/internal/repo"
	"github.com/tourguard/tourguard-backend/internal/tokens"
)

const userContextKey = "current_user"

// Resolver maps a bearer credential to the current user record. The
// token is verified before the store is touched, and the record is
// re-fetched on every request so role or name changes apply on the
// next call. Deleting a user is the only way to invalidate an already
// issued token short of rotating the secret.
type Resolver struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func NewResolver(r *repo.GormRepo, secret []byte) *Resolver {
	return &Resolver{Repo: r, JWTSecret: secret}
}

func (m *Resolver) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
		}

		subject, err := tokens.Parse(strings.TrimPrefix(header, prefix), m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
		}

		user, err := m.Repo.FindUserByEmail(c.Request().Context(), subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil on
// routes the middleware never ran for.
func CurrentUser(c echo.Context) *models.User {
	if u, ok := c.Get(userContextKey).(*models.User); ok {
		return u
	}
	return nil
}
