package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tourguard/tourguard-backend/internal/models"
)

func (r *GormRepo) ListTourists(ctx context.Context, offset, limit int) ([]models.Tourist, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Tourist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Tourist
	if err := r.DB.WithContext(ctx).Order("last_seen DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepo) GetTourist(ctx context.Context, id string) (*models.Tourist, error) {
	var tourist models.Tourist
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&tourist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tourist, nil
}

// ReplaceTourists wipes the collection and inserts the given set. Used
// by the sample-data endpoint only.
func (r *GormRepo) ReplaceTourists(ctx context.Context, tourists []models.Tourist) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Tourist{}).Error; err != nil {
			return err
		}
		if len(tourists) == 0 {
			return nil
		}
		return tx.Create(&tourists).Error
	})
}
