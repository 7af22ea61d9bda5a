package repo

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
)

func (r *GormRepo) blogQuery(ctx context.Context, category string) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&models.Blog{}).
		Where("published_at IS NOT NULL")
	if category != "" && !strings.EqualFold(category, "All") {
		// Category is matched as a literal substring of the stored tag
		// list.
		q = q.Where(`LOWER(tags) LIKE ? ESCAPE '\'`, likePattern(category))
	}
	return q
}

func (r *GormRepo) ListBlogs(ctx context.Context, category string, offset, limit int) (int64, []models.Blog, error) {
	var (
		total int64
		items []models.Blog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.blogQuery(gctx, category).Count(&total).Error
	})
	g.Go(func() error {
		return r.blogQuery(gctx, category).
			Preload("Author").
			Order("published_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.DB.WithContext(ctx).Preload("Author").Where("slug = ?", slug).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}
