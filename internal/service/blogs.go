package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/util"
)

type BlogService struct {
	Repo *repo.GormRepo
}

type BlogPage struct {
	Blogs      []models.Blog `json:"blogs"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int64         `json:"totalPages"`
}

func (s *BlogService) List(ctx context.Context, category string, page, pageSize int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	offset, limit := util.Calculate(page, pageSize)

	total, blogs, err := s.Repo.ListBlogs(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}

	return &BlogPage{
		Blogs:      blogs,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: util.TotalPages(total, limit),
	}, nil
}

// GetBySlug hides unpublished posts: a draft and a missing slug are the
// same ErrNotFound to callers.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.Repo.GetBlogBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if blog.PublishedAt == nil {
		return nil, ErrNotFound
	}
	return blog, nil
}
