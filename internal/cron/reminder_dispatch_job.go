package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

type reminderSource interface {
	ListDueUnsent(ctx context.Context, before time.Time) ([]models.CalendarEvent, error)
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

type ReminderDispatchJobParams struct {
	Logger     *logger.Logger
	Repository reminderSource
}

// NewReminderDispatchJob builds the job that delivers due calendar
// reminders. Delivery itself is an external collaborator; this job marks the
// rows sent and logs the dispatch so the delivery channel can be swapped.
func NewReminderDispatchJob(params ReminderDispatchJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("calendar repository required")
	}
	return &reminderDispatchJob{
		logg: params.Logger,
		repo: params.Repository,
		now:  time.Now,
	}, nil
}

type reminderDispatchJob struct {
	logg *logger.Logger
	repo reminderSource
	now  func() time.Time
}

func (j *reminderDispatchJob) Name() string { return "reminder-dispatch" }

func (j *reminderDispatchJob) Run(ctx context.Context) error {
	due, err := j.repo.ListDueUnsent(ctx, j.now().UTC())
	if err != nil {
		return fmt.Errorf("list due reminders: %w", err)
	}
	if len(due) == 0 {
		j.logg.Debug(ctx, "no reminders due")
		return nil
	}

	var errs []error
	dispatched := 0
	for _, reminder := range due {
		if err := j.repo.MarkNotified(ctx, reminder.ID); err != nil {
			errs = append(errs, fmt.Errorf("reminder %s: %w", reminder.ID, err))
			continue
		}
		logCtx := j.logg.WithFields(ctx, map[string]any{
			"reminder_id": reminder.ID,
			"user_id":     reminder.UserID,
			"title":       reminder.Title,
			"event_type":  reminder.EventType,
			"due_date":    reminder.Date,
		})
		j.logg.Info(logCtx, "reminder dispatched")
		dispatched++
	}

	j.logg.Info(j.logg.WithFields(ctx, map[string]any{
		"due":        len(due),
		"dispatched": dispatched,
		"failed":     len(errs),
	}), "reminder dispatch cycle complete")
	return multierr.Combine(errs...)
}
