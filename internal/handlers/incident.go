package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tourguard/tourguard-backend/internal/events"
	"github.com/tourguard/tourguard-backend/internal/logging"
	"github.com/tourguard/tourguard-backend/internal/models"
	"github.com/tourguard/tourguard-backend/internal/repo"
	"github.com/tourguard/tourguard-backend/internal/util"
)

type IncidentHandler struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

var (
	incidentTypes      = map[string]bool{"panic": true, "missing": true, "medical": true, "security": true}
	incidentSeverities = map[string]bool{"low": true, "medium": true, "high": true, "critical": true}
	incidentStatuses   = map[string]bool{"open": true, "investigating": true, "resolved": true}
)

type createIncidentRequest struct {
	TouristID       string          `json:"tourist_id"`
	Type            string          `json:"type"`
	Description     string          `json:"description"`
	Location        models.Location `json:"location"`
	Severity        string          `json:"severity"`
	Status          string          `json:"status"`
	AssignedOfficer string          `json:"assigned_officer"`
}

func (r *createIncidentRequest) validate() error {
	if r.TouristID == "" {
		return fmt.Errorf("tourist_id is required")
	}
	if !incidentTypes[r.Type] {
		return fmt.Errorf("type must be one of panic, missing, medical, security")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	if !incidentSeverities[r.Severity] {
		return fmt.Errorf("severity must be one of low, medium, high, critical")
	}
	if r.Status == "" {
		r.Status = "open"
	}
	if !incidentStatuses[r.Status] {
		return fmt.Errorf("status must be one of open, investigating, resolved")
	}
	return nil
}

func (h *IncidentHandler) publish(c echo.Context, key string, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "incident_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *IncidentHandler) GetIncidents(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	items, total, err := h.Repo.ListIncidents(c.Request().Context(), offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list incidents")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": items,
		"meta": map[string]interface{}{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *IncidentHandler) CreateIncident(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "incident_create")

	// Incident reports come from field devices with drifting payload
	// shapes; unknown keys are rejected instead of silently stored.
	var req createIncidentRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid incident body: "+err.Error())
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	incident := models.Incident{
		ID:              uuid.NewString(),
		TouristID:       req.TouristID,
		Type:            req.Type,
		Description:     req.Description,
		Location:        req.Location,
		Severity:        req.Severity,
		Status:          req.Status,
		ReportedAt:      time.Now().UTC(),
		AssignedOfficer: req.AssignedOfficer,
	}
	if err := h.Repo.CreateIncident(ctx, &incident); err != nil {
		l.Error("incident_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create incident")
	}

	h.publish(c, incident.ID, map[string]interface{}{
		"type":        "incident_created",
		"incident_id": incident.ID,
		"tourist_id":  incident.TouristID,
		"severity":    incident.Severity,
	})

	return c.JSON(http.StatusOK, incident)
}
