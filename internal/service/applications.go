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
)

type ApplicationService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Apply creates a PENDING application for the user on the job. A missing
// or inactive job is ErrNotFound; a second application by the same user
// is ErrConflict, whether caught by the fast-path check or by the
// (user_id, job_id) unique constraint under a concurrent race.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID uuid.UUID, answers *string) (*models.Application, error) {
	l := logging.FromContext(ctx).With("svc", "applications.apply", "job_id", jobID)

	job, err := s.Repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		l.Error("apply_failed", "status", 500, "error", err)
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrNotFound
	}

	applied, err := s.Repo.HasApplied(ctx, userID, jobID)
	if err != nil {
		l.Error("apply_failed", "status", 500, "error", err)
		return nil, err
	}
	if applied {
		return nil, ErrConflict
	}

	app := &models.Application{
		UserID:  userID,
		JobID:   jobID,
		Status:  models.ApplicationPending,
		Answers: answers,
	}
	if err := s.Repo.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		l.Error("apply_failed", "status", 500, "error", err)
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pubCtx, events.TopicApplicationEvents, app.ID.String(), map[string]any{
		"type":          "application_created",
		"applicationId": app.ID,
		"userId":        userID,
		"jobId":         jobID,
	}); err != nil {
		l.Error("kafka_publish_failed", "topic", events.TopicApplicationEvents, "error", err)
	}

	l.Info("apply_successful", "application_id", app.ID)
	return app, nil
}
