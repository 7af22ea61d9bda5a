package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
)

const statsCacheKey = "admin:stats:v1"

// StatsService aggregates the admin dashboard counters. When a redis
// client is wired, the snapshot is cached for CacheTTL; a cache failure
// only costs the recompute.
type StatsService struct {
	Repo     *repo.GormRepo
	Cache    *redis.Client
	CacheTTL time.Duration
}

type StatsCounts struct {
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TodayApplications int64 `json:"todayApplications"`
	TotalUsers        int64 `json:"totalUsers"`
	TotalCompanies    int64 `json:"totalCompanies"`
	TotalEvents       int64 `json:"totalEvents"`
}

type RecentApplication struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
}

type StatsSnapshot struct {
	Stats              StatsCounts         `json:"stats"`
	RecentApplications []RecentApplication `json:"recentApplications"`
}

func (s *StatsService) Stats(ctx context.Context) (*StatsSnapshot, error) {
	l := logging.FromContext(ctx).With("svc", "stats")

	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	var (
		snap StatsSnapshot
		apps []models.Application
	)

	// All counters and the recent-applications fetch are independent;
	// issue them together and await jointly.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Stats.TotalJobs, err = s.Repo.CountJobs(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Stats.ActiveJobs, err = s.Repo.CountActiveJobs(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Stats.TotalApplications, err = s.Repo.CountApplications(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Stats.TodayApplications, err = s.Repo.CountApplicationsSince(gctx, todayStart())
		return err
	})
	g.Go(func() (err error) {
		snap.Stats.TotalUsers, err = s.Repo.CountUsersByRole(gctx, models.RoleUser)
		return err
	})
	g.Go(func() (err error) {
		snap.Stats.TotalCompanies, err = s.Repo.CountCompanies(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Stats.TotalEvents, err = s.Repo.CountActiveEvents(gctx)
		return err
	})
	g.Go(func() (err error) {
		apps, err = s.Repo.RecentApplications(gctx, 10)
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error("stats_failed", "status", 500, "error", err)
		return nil, err
	}

	snap.RecentApplications = make([]RecentApplication, 0, len(apps))
	for _, app := range apps {
		ra := RecentApplication{
			ID:          app.ID,
			Status:      app.Status,
			SubmittedAt: app.SubmittedAt,
		}
		if app.Job != nil {
			ra.JobTitle = app.Job.Title
			if app.Job.Company != nil {
				ra.CompanyName = app.Job.Company.Name
			}
		}
		if app.User != nil {
			ra.UserName = app.User.Name
			ra.UserEmail = app.User.Email
		}
		snap.RecentApplications = append(snap.RecentApplications, ra)
	}

	s.toCache(ctx, &snap)
	return &snap, nil
}

func todayStart() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *StatsService) fromCache(ctx context.Context) *StatsSnapshot {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var snap StatsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	return &snap
}

func (s *StatsService) toCache(ctx context.Context, snap *StatsSnapshot) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.Cache.Set(ctx, statsCacheKey, raw, ttl).Err(); err != nil {
		logging.FromContext(ctx).Warn("stats_cache_set_failed", "error", err)
	}
}
