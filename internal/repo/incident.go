package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tourguard/tourguard-backend/internal/models"
)

func (r *GormRepo) ListIncidents(ctx context.Context, offset, limit int) ([]models.Incident, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Incident{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Incident
	if err := r.DB.WithContext(ctx).Order("reported_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepo) CreateIncident(ctx context.Context, incident *models.Incident) error {
	return r.DB.WithContext(ctx).Create(incident).Error
}

func (r *GormRepo) ReplaceIncidents(ctx context.Context, incidents []models.Incident) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Incident{}).Error; err != nil {
			return err
		}
		if len(incidents) == 0 {
			return nil
		}
		return tx.Create(&incidents).Error
	})
}
