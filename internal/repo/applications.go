package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carrierx/carrierx/internal/models"
)

func (r *GormRepo) HasApplied(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

// CreateApplication relies on the (user_id, job_id) unique index as the
// authoritative duplicate guard; a constraint hit surfaces as
// gorm.ErrDuplicatedKey.
func (r *GormRepo) CreateApplication(ctx context.Context, app *models.Application) error {
	return r.DB.WithContext(ctx).Create(app).Error
}

func (r *GormRepo) CountApplications(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Application{}).Count(&count).Error
	return count, err
}

func (r *GormRepo) CountApplicationsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Application{}).
		Where("submitted_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *GormRepo) RecentApplications(ctx context.Context, limit int) ([]models.Application, error) {
	var apps []models.Application
	err := r.DB.WithContext(ctx).
		Preload("Job.Company").
		Preload("User").
		Order("submitted_at DESC").
		Limit(limit).
		Find(&apps).Error
	return apps, err
}
