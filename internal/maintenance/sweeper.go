// Package maintenance runs the cron job that deactivates job listings
// whose deadline has passed, so the stored is_active flag stays in step
// with the listing filter.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/carrierx/carrierx/internal/repo"
)

type Sweeper struct {
	cron *cron.Cron
	repo *repo.GormRepo
	log  *slog.Logger
	spec string
}

func NewSweeper(r *repo.GormRepo, l *slog.Logger) *Sweeper {
	return &Sweeper{
		cron: cron.New(),
		repo: r,
		log:  l,
		spec: "@hourly",
	}
}

// Start registers the sweep and runs one immediately so a restart does
// not leave expired listings visible until the first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() { s.sweep(ctx) })
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("sweeper started", "spec", s.spec)

	go s.sweep(ctx)
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.log.Info("sweeper stopped")
}

func (s *Sweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := s.repo.DeactivateExpiredJobs(sweepCtx, time.Now())
	if err != nil {
		s.log.Error("sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("deactivated expired jobs", "count", n)
	}
}
