package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tourguard/tourguard-backend/internal/hash"
	"github.com/tourguard/tourguard-backend/internal/models"
	"github.com/tourguard/tourguard-backend/internal/repo"
)

func initTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Tourist{}, &models.Incident{}))

	return &repo.GormRepo{DB: db}
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	return &AuthHandler{
		Repo:      initTestRepo(t),
		JWTSecret: []byte("test-jwt-secret"),
	}
}

func postJSON(e *echo.Echo, path string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	bodyBytes, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	payload := map[string]string{
		"email":    "alice@test.com",
		"password": "pw123",
		"name":     "Alice",
	}
	c, rec := postJSON(e, "/api/auth/register", payload)

	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "alice@test.com", user.Email)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, "officer", user.Role)
	require.NotEmpty(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())
	require.NotContains(t, rec.Body.String(), "password_hash")
	require.NotContains(t, rec.Body.String(), "pw123")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	payload := map[string]string{
		"email":    "alice@test.com",
		"password": "pw123",
		"name":     "Alice",
	}
	c, rec := postJSON(e, "/api/auth/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	payload["name"] = "Impostor"
	cDup, _ := postJSON(e, "/api/auth/register", payload)
	err := h.Register(cDup)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)

	stored, err := h.Repo.FindUserByEmail(c.Request().Context(), "alice@test.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", stored.Name)
}

func TestRegister_Validation(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	cases := []map[string]string{
		{"password": "pw123", "name": "Alice"},
		{"email": "alice@test.com", "name": "Alice"},
		{"email": "alice@test.com", "password": "pw123"},
		{"email": "alice@test.com", "password": "pw123", "name": "Alice", "role": "superuser"},
	}
	for _, payload := range cases {
		c, _ := postJSON(e, "/api/auth/register", payload)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "expected HTTPError for %v", payload)
		require.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestLogin(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	pwHash, err := hash.HashPassword("pw123")
	require.NoError(t, err)
	require.NoError(t, h.Repo.DB.Create(&models.User{
		ID:           "u-1",
		Email:        "alice@test.com",
		Name:         "Alice",
		Role:         "officer",
		PasswordHash: pwHash,
	}).Error)

	c, rec := postJSON(e, "/api/auth/login", map[string]string{
		"email":    "alice@test.com",
		"password": "pw123",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	require.Equal(t, "bearer", resp["token_type"])
}

func TestLogin_UniformUnauthorized(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	pwHash, err := hash.HashPassword("pw123")
	require.NoError(t, err)
	require.NoError(t, h.Repo.DB.Create(&models.User{
		ID:           "u-1",
		Email:        "alice@test.com",
		Name:         "Alice",
		Role:         "officer",
		PasswordHash: pwHash,
	}).Error)

	wrongPassword, _ := postJSON(e, "/api/auth/login", map[string]string{
		"email":    "alice@test.com",
		"password": "wrong",
	})
	errWrongPassword := h.Login(wrongPassword)

	unknownEmail, _ := postJSON(e, "/api/auth/login", map[string]string{
		"email":    "nobody@test.com",
		"password": "pw123",
	})
	errUnknownEmail := h.Login(unknownEmail)

	heWrong, ok := errWrongPassword.(*echo.HTTPError)
	require.True(t, ok)
	heUnknown, ok := errUnknownEmail.(*echo.HTTPError)
	require.True(t, ok)

	// Same status and same message, so the endpoint leaks nothing about
	// which accounts exist.
	require.Equal(t, http.StatusUnauthorized, heWrong.Code)
	require.Equal(t, heWrong.Code, heUnknown.Code)
	require.Equal(t, heWrong.Message, heUnknown.Message)
}
