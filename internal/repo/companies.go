package repo

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
)

func (r *GormRepo) companyQuery(ctx context.Context, premium bool) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&models.Company{})
	if premium {
		q = q.Where("is_premium = ?", true)
	}
	return q
}

func (r *GormRepo) ListCompanies(ctx context.Context, premium bool, offset, limit int) (int64, []models.Company, error) {
	var (
		total int64
		items []models.Company
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.companyQuery(gctx, premium).Count(&total).Error
	})
	g.Go(func() error {
		return r.companyQuery(gctx, premium).
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *GormRepo) ActiveJobsForCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.DB.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *GormRepo) CreateCompany(ctx context.Context, company *models.Company) error {
	return r.DB.WithContext(ctx).Create(company).Error
}
