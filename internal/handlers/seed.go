package handlers

import (
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tourguard/tourguard-backend/internal/logging"
	"github.com/tourguard/tourguard-backend/internal/models"
	"github.com/tourguard/tourguard-backend/internal/repo"
	"github.com/tourguard/tourguard-backend/internal/service/search"
)

// SeedHandler replaces the tourist and incident collections with demo
// fixtures for dashboard walkthroughs.
type SeedHandler struct {
	Repo  *repo.GormRepo
	ES    *elasticsearch.Client
	Index string
}

func sampleTourists(now time.Time) []models.Tourist {
	return []models.Tourist{
		{
			ID: uuid.NewString(), Name: "John Smith", PassportNumber: "US123456789",
			Nationality: "USA", Phone: "+1-555-0123", EmergencyContact: "+1-555-0124",
			Location: models.Location{Lat: 26.1445, Lng: 91.7362}, SafetyScore: 85,
			ZoneType: "safe", LastSeen: now, Status: "active",
			HotelName: "Hotel Royal", Itinerary: "Temple tour, Local markets",
		},
		{
			ID: uuid.NewString(), Name: "Emma Wilson", PassportNumber: "UK987654321",
			Nationality: "UK", Phone: "+44-20-7946-0958", EmergencyContact: "+44-20-7946-0959",
			Location: models.Location{Lat: 26.1158, Lng: 91.7086}, SafetyScore: 67,
			ZoneType: "caution", LastSeen: now, Status: "active",
			HotelName: "Brahmaputra Hotel", Itinerary: "Wildlife sanctuary, River cruise",
		},
		{
			ID: uuid.NewString(), Name: "Hans Mueller", PassportNumber: "DE456789123",
			Nationality: "Germany", Phone: "+49-30-12345678", EmergencyContact: "+49-30-12345679",
			Location: models.Location{Lat: 26.1733, Lng: 91.7458}, SafetyScore: 40,
			ZoneType: "danger", LastSeen: now, Status: "active",
			HotelName: "Northeast Inn", Itinerary: "Adventure trekking, Remote villages",
		},
		{
			ID: uuid.NewString(), Name: "Maria Garcia", PassportNumber: "ES789123456",
			Nationality: "Spain", Phone: "+34-91-123-4567", EmergencyContact: "+34-91-123-4568",
			Location: models.Location{Lat: 26.1341, Lng: 91.7880}, SafetyScore: 78,
			ZoneType: "safe", LastSeen: now, Status: "active",
			HotelName: "Paradise Resort", Itinerary: "Cultural sites, Photography",
		},
		{
			ID: uuid.NewString(), Name: "Yuki Tanaka", PassportNumber: "JP321654987",
			Nationality: "Japan", Phone: "+81-3-1234-5678", EmergencyContact: "+81-3-1234-5679",
			Location: models.Location{Lat: 26.1689, Lng: 91.7631}, SafetyScore: 92,
			ZoneType: "safe", LastSeen: now, Status: "active",
			HotelName: "Assam Palace", Itinerary: "Tea gardens, Monasteries",
		},
	}
}

func (h *SeedHandler) InitSampleData(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "init_sample_data")

	now := time.Now().UTC()
	tourists := sampleTourists(now)

	if err := h.Repo.ReplaceTourists(ctx, tourists); err != nil {
		l.Error("seed_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot seed tourists")
	}

	incidents := []models.Incident{
		{
			ID:          uuid.NewString(),
			TouristID:   tourists[2].ID,
			Type:        "panic",
			Description: "Tourist activated panic button near remote area",
			Location:    models.Location{Lat: 26.1733, Lng: 91.7458},
			Severity:    "high",
			Status:      "investigating",
			ReportedAt:  now,
		},
	}
	if err := h.Repo.ReplaceIncidents(ctx, incidents); err != nil {
		l.Error("seed_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot seed incidents")
	}

	if h.ES != nil {
		for _, t := range tourists {
			if err := search.IndexTourist(ctx, h.ES, h.Index, t); err != nil {
				l.Warn("seed_index_failed", "tourist_id", t.ID, "error", err)
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Sample data initialized successfully"})
}
