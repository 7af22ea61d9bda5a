package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/events"
	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/token"
	"github.com/carrierx/carrierx/internal/util"
)

type JobService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type ListJobsParams struct {
	Type     string
	Premium  bool
	PPO      bool
	Skills   []string
	Page     int
	PageSize int
}

type JobPage struct {
	Jobs       []models.Job `json:"jobs"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int64        `json:"totalPages"`
}

// List builds the storage query (active, deadline not passed, optional
// type/PPO/premium filters, newest first) and assembles the page
// envelope.
//
// The skills filter is applied in memory to the already-paginated page,
// and Total/TotalPages count only the storage-layer filter. A
// skills-filtered page can therefore hold fewer than PageSize items even
// when later pages match. Kept as-is for response compatibility.
func (s *JobService) List(ctx context.Context, p ListJobsParams) (*JobPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	offset, limit := util.Calculate(p.Page, p.PageSize)

	filter := repo.JobFilter{
		Type:    p.Type,
		Premium: p.Premium,
		PPO:     p.PPO,
		Now:     time.Now(),
	}
	total, jobs, err := s.Repo.ListJobs(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	if len(p.Skills) > 0 {
		filtered := make([]models.Job, 0, len(jobs))
		for _, job := range jobs {
			if job.TechStack.Intersects(p.Skills) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	return &JobPage{
		Jobs:       jobs,
		Total:      total,
		Page:       p.Page,
		PageSize:   limit,
		TotalPages: util.TotalPages(total, limit),
	}, nil
}

// Get returns the job plus whether the viewer (nil when anonymous) has
// already applied to it.
func (s *JobService) Get(ctx context.Context, id uuid.UUID, viewer *token.Identity) (*models.Job, bool, error) {
	job, err := s.Repo.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	hasApplied := false
	if viewer != nil {
		hasApplied, err = s.Repo.HasApplied(ctx, viewer.UserID, id)
		if err != nil {
			return nil, false, err
		}
	}
	return job, hasApplied, nil
}

type CreateJobParams struct {
	CompanyID       uuid.UUID
	Title           string
	Type            string
	Location        string
	Stipend         float64
	Duration        string
	TechStack       []string
	PrepGuide       string
	Deadline        time.Time
	ApplyLink       string
	IsInternalApply *bool
	IsPPO           bool
}

func (s *JobService) Create(ctx context.Context, p CreateJobParams) (*models.Job, error) {
	l := logging.FromContext(ctx).With("svc", "jobs.create")

	if p.CompanyID == uuid.Nil || p.Title == "" || p.Location == "" || p.Deadline.IsZero() {
		return nil, ErrValidation
	}
	if p.Type == "" {
		p.Type = models.JobTypeInternship
	}
	internalApply := true
	if p.IsInternalApply != nil {
		internalApply = *p.IsInternalApply
	}

	job := &models.Job{
		CompanyID:       p.CompanyID,
		Title:           p.Title,
		Type:            p.Type,
		Location:        p.Location,
		Stipend:         p.Stipend,
		Duration:        p.Duration,
		TechStack:       models.StringList(p.TechStack),
		PrepGuide:       p.PrepGuide,
		Deadline:        p.Deadline,
		ApplyLink:       p.ApplyLink,
		IsInternalApply: internalApply,
		IsPPO:           p.IsPPO,
		IsActive:        true,
	}

	created, err := s.Repo.CreateJob(ctx, job)
	if err != nil {
		l.Error("create_job_failed", "status", 500, "error", err)
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pubCtx, events.TopicJobEvents, created.ID.String(), map[string]any{
		"type":  "job_created",
		"jobId": created.ID,
		"title": created.Title,
	}); err != nil {
		l.Error("kafka_publish_failed", "topic", events.TopicJobEvents, "error", err)
	}

	l.Info("create_job_successful", "job_id", created.ID)
	return created, nil
}
