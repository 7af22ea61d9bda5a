package repo

import (
	"context"

	"github.com/carrierx/carrierx/internal/models"
)

func (r *GormRepo) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *GormRepo) CountActiveJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Job{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *GormRepo) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

func (r *GormRepo) CountCompanies(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Company{}).Count(&count).Error
	return count, err
}

func (r *GormRepo) CountActiveEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Event{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
