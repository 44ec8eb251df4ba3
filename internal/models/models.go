package models

import (
	"time"
)

// Location is a point on the map, stored flattened on the owning row.
type Location struct {
	Lat float64 `gorm:"column:lat" json:"lat"`
	Lng float64 `gorm:"column:lng" json:"lng"`
}

type User struct {
	ID           string    `gorm:"primaryKey"       json:"id"`
	Email        string    `gorm:"unique;not null"  json:"email"`
	Name         string    `gorm:"not null"         json:"name"`
	Role         string    `gorm:"not null"         json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	PasswordHash string    `gorm:"not null"         json:"-"`
}

type Tourist struct {
	ID               string    `gorm:"primaryKey"           json:"id"`
	Name             string    `gorm:"not null"             json:"name"`
	PassportNumber   string    `gorm:"not null"             json:"passport_number"`
	Nationality      string    `json:"nationality"`
	Phone            string    `json:"phone"`
	EmergencyContact string    `json:"emergency_contact"`
	Location         Location  `gorm:"embedded"             json:"location"`
	SafetyScore      int       `json:"safety_score"`
	ZoneType         string    `gorm:"index"                json:"zone_type"`
	LastSeen         time.Time `json:"last_seen"`
	Status           string    `gorm:"index;default:active" json:"status"`
	HotelName        string    `json:"hotel_name,omitempty"`
	Itinerary        string    `json:"itinerary,omitempty"`
}

type Incident struct {
	ID              string    `gorm:"primaryKey"         json:"id"`
	TouristID       string    `gorm:"index;not null"     json:"tourist_id"`
	Type            string    `gorm:"not null"           json:"type"`
	Description     string    `json:"description"`
	Location        Location  `gorm:"embedded"           json:"location"`
	Severity        string    `gorm:"index"              json:"severity"`
	Status          string    `gorm:"index;default:open" json:"status"`
	ReportedAt      time.Time `json:"reported_at"`
	AssignedOfficer string    `json:"assigned_officer,omitempty"`
}
