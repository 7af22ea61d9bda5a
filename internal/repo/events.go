package repo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/carrierx/carrierx/internal/models"
)

func (r *GormRepo) ListEvents(ctx context.Context, offset, limit int) (int64, []models.Event, error) {
	var (
		total int64
		items []models.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.DB.WithContext(gctx).Model(&models.Event{}).
			Where("is_active = ?", true).
			Count(&total).Error
	})
	g.Go(func() error {
		return r.DB.WithContext(gctx).
			Preload("Company").
			Where("is_active = ?", true).
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
