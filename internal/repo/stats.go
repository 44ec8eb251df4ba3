package repo

import (
	"context"

	"github.com/tourguard/tourguard-backend/internal/models"
)

type ZoneStats struct {
	Safe    int64 `json:"safe"`
	Caution int64 `json:"caution"`
	Danger  int64 `json:"danger"`
}

type DashboardStats struct {
	TotalTourists      int64     `json:"total_tourists"`
	ActiveTourists     int64     `json:"active_tourists"`
	MissingTourists    int64     `json:"missing_tourists"`
	EmergencyIncidents int64     `json:"emergency_incidents"`
	ZoneStats          ZoneStats `json:"zone_stats"`
}

func (r *GormRepo) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	db := r.DB.WithContext(ctx)
	stats := &DashboardStats{}

	if err := db.Model(&models.Tourist{}).Count(&stats.TotalTourists).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Tourist{}).Where("status = ?", "active").Count(&stats.ActiveTourists).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Tourist{}).Where("status = ?", "missing").Count(&stats.MissingTourists).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Incident{}).
		Where("status = ? AND severity IN ?", "open", []string{"high", "critical"}).
		Count(&stats.EmergencyIncidents).Error; err != nil {
		return nil, err
	}

	zones := map[string]*int64{
		"safe":    &stats.ZoneStats.Safe,
		"caution": &stats.ZoneStats.Caution,
		"danger":  &stats.ZoneStats.Danger,
	}
	for zone, dst := range zones {
		if err := db.Model(&models.Tourist{}).Where("zone_type = ?", zone).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
