package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/tourguard/tourguard-backend/internal/models"
)

func postIncident(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/incidents", bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateIncident(t *testing.T) {
	h := &IncidentHandler{Repo: initTestRepo(t)}
	e := echo.New()

	c, rec := postIncident(e, `{
		"tourist_id": "t-1",
		"type": "panic",
		"description": "Panic button pressed",
		"location": {"lat": 26.1733, "lng": 91.7458},
		"severity": "high"
	}`)
	require.NoError(t, h.CreateIncident(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var incident models.Incident
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &incident))
	require.NotEmpty(t, incident.ID)
	require.Equal(t, "t-1", incident.TouristID)
	require.Equal(t, "open", incident.Status)
	require.False(t, incident.ReportedAt.IsZero())
	require.Equal(t, 26.1733, incident.Location.Lat)
}

func TestCreateIncident_RejectsUnknownFields(t *testing.T) {
	h := &IncidentHandler{Repo: initTestRepo(t)}
	e := echo.New()

	c, _ := postIncident(e, `{
		"tourist_id": "t-1",
		"type": "panic",
		"description": "Panic button pressed",
		"severity": "high",
		"extra_field": "boom"
	}`)
	err := h.CreateIncident(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateIncident_Validation(t *testing.T) {
	h := &IncidentHandler{Repo: initTestRepo(t)}
	e := echo.New()

	cases := []string{
		`{"type": "panic", "description": "x", "severity": "high"}`,
		`{"tourist_id": "t-1", "type": "earthquake", "description": "x", "severity": "high"}`,
		`{"tourist_id": "t-1", "type": "panic", "severity": "high"}`,
		`{"tourist_id": "t-1", "type": "panic", "description": "x", "severity": "catastrophic"}`,
		`{"tourist_id": "t-1", "type": "panic", "description": "x", "severity": "high", "status": "closed"}`,
	}
	for _, body := range cases {
		c, _ := postIncident(e, body)
		err := h.CreateIncident(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "expected HTTPError for %s", body)
		require.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestGetIncidents(t *testing.T) {
	store := initTestRepo(t)
	h := &IncidentHandler{Repo: store}
	e := echo.New()

	createBody := `{
		"tourist_id": "t-1",
		"type": "medical",
		"description": "Heat stroke reported",
		"severity": "medium"
	}`
	c, rec := postIncident(e, createBody)
	require.NoError(t, h.CreateIncident(c))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/incidents", nil)
	recList := httptest.NewRecorder()
	cList := e.NewContext(req, recList)
	require.NoError(t, h.GetIncidents(cList))
	require.Equal(t, http.StatusOK, recList.Code)

	var resp struct {
		Data []models.Incident      `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.EqualValues(t, 1, resp.Meta["total"])
}
