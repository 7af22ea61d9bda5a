package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
)

// JobFilter describes the storage-layer part of a job listing query.
// The skills predicate is not here: the store cannot express
// "array intersects", so it is applied in memory after the fetch.
type JobFilter struct {
	Type    string
	Premium bool
	PPO     bool
	Now     time.Time
}

func (r *GormRepo) jobQuery(ctx context.Context, f JobFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&models.Job{}).
		Where("jobs.is_active = ?", true).
		Where("jobs.deadline >= ?", f.Now)
	if f.Type != "" {
		q = q.Where("jobs.type = ?", f.Type)
	}
	if f.PPO {
		q = q.Where("jobs.is_ppo = ?", true)
	}
	if f.Premium {
		q = q.Joins("JOIN companies ON companies.id = jobs.company_id").
			Where("companies.is_premium = ?", true)
	}
	return q
}

// ListJobs issues the page fetch and the total count concurrently and
// awaits them jointly; neither depends on the other.
func (r *GormRepo) ListJobs(ctx context.Context, f JobFilter, offset, limit int) (int64, []models.Job, error) {
	var (
		total int64
		items []models.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.jobQuery(gctx, f).Count(&total).Error
	})
	g.Go(func() error {
		return r.jobQuery(gctx, f).
			Preload("Company").
			Order("jobs.created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.DB.WithContext(ctx).Preload("Company").Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormRepo) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return r.GetJob(ctx, job.ID)
}

// DeactivateExpiredJobs flips is_active on jobs whose deadline has
// passed, keeping the stored flag consistent with the listing filter.
func (r *GormRepo) DeactivateExpiredJobs(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.Job{}).
		Where("is_active = ? AND deadline < ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
