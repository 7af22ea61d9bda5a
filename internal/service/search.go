package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
)

// MinQueryLength below which search returns empty result sets without
// touching storage.
const MinQueryLength = 2

type SearchService struct {
	Repo *repo.GormRepo
}

type SearchResults struct {
	Jobs      []models.Job     `json:"jobs"`
	Companies []models.Company `json:"companies"`
	Events    []models.Event   `json:"events"`
	Blogs     []models.Blog    `json:"blogs"`
}

func emptyResults() *SearchResults {
	return &SearchResults{
		Jobs:      []models.Job{},
		Companies: []models.Company{},
		Events:    []models.Event{},
		Blogs:     []models.Blog{},
	}
}

// Search fans out to the four entity queries concurrently; each category
// is capped independently at the repo layer.
func (s *SearchService) Search(ctx context.Context, q string) (*SearchResults, error) {
	q = strings.TrimSpace(strings.ToLower(q))
	if len(q) < MinQueryLength {
		return emptyResults(), nil
	}

	res := emptyResults()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := s.Repo.SearchJobs(gctx, q)
		if err == nil && jobs != nil {
			res.Jobs = jobs
		}
		return err
	})
	g.Go(func() error {
		companies, err := s.Repo.SearchCompanies(gctx, q)
		if err == nil && companies != nil {
			res.Companies = companies
		}
		return err
	})
	g.Go(func() error {
		events, err := s.Repo.SearchEvents(gctx, q)
		if err == nil && events != nil {
			res.Events = events
		}
		return err
	})
	g.Go(func() error {
		blogs, err := s.Repo.SearchBlogs(gctx, q)
		if err == nil && blogs != nil {
			res.Blogs = blogs
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
