// Package jobs holds the background work run by the scheduler.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/observability"
	"github.com/Dustin-Locke/HealthAndwellness/internal/reminder"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/mailer"
)

const (
	defaultSubject = "Reminder"
	releaseTimeout = 5 * time.Second
)

var ErrJobRunning = errors.New("reminder job is already running")

// RunReport counts what happened to the reminders seen by one tick.
type RunReport struct {
	Evaluated int
	Sent      int
	Failed    int
	Skipped   int
}

// ReminderJob delivers due reminders. Delivery is at most once per period: a
// reminder is stamped before the e-mail goes out and the stamp is rolled back
// when sending fails.
type ReminderJob struct {
	store  repository.ReminderStampStore
	mailer mailer.Mailer
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger

	mu sync.Mutex
}

type ReminderJobOption func(*ReminderJob)

// WithLocation sets the zone "today" and the notify times are evaluated in.
func WithLocation(loc *time.Location) ReminderJobOption {
	return func(j *ReminderJob) {
		if loc != nil {
			j.loc = loc
		}
	}
}

func WithClock(now func() time.Time) ReminderJobOption {
	return func(j *ReminderJob) {
		if now != nil {
			j.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) ReminderJobOption {
	return func(j *ReminderJob) {
		if logger != nil {
			j.logger = logger
		}
	}
}

func NewReminderJob(store repository.ReminderStampStore, m mailer.Mailer, opts ...ReminderJobOption) *ReminderJob {
	j := &ReminderJob{
		store:  store,
		mailer: m,
		loc:    time.UTC,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(j)
	}
	j.logger = j.logger.With(slog.String("job", "reminders"))
	return j
}

// Run performs one tick. A tick that starts while another is in progress
// returns ErrJobRunning without doing anything. Per-reminder failures are
// logged and counted; only a failure to list reminders is returned.
func (j *ReminderJob) Run(ctx context.Context) (RunReport, error) {
	var report RunReport
	if !j.mu.TryLock() {
		j.logger.Warn("tick skipped: previous run still in progress")
		return report, ErrJobRunning
	}
	defer j.mu.Unlock()

	start := time.Now()
	defer func() {
		observability.ObserveReminderJob(time.Since(start))
	}()

	reminders, err := j.store.ListEnabledWithRecipients(ctx)
	if err != nil {
		j.logger.Error("listing reminders failed", slog.String("error", err.Error()))
		return report, errors.New("listing reminders error: " + err.Error())
	}

	now := j.now().In(j.loc)
	today := entity.DateOf(now)
	timeOfDay := entity.TimeOfDayOf(now)
	for _, r := range reminders {
		if ctx.Err() != nil {
			j.logger.Warn("tick interrupted", slog.String("error", ctx.Err().Error()))
			break
		}
		report.Evaluated++
		if !reminder.ShouldSendToday(r, today, timeOfDay) {
			report.Skipped++
			continue
		}
		j.deliver(ctx, r, today, &report)
	}

	j.logger.Info("tick finished",
		slog.Int("evaluated", report.Evaluated),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
	)
	return report, nil
}

func (j *ReminderJob) deliver(ctx context.Context, r *entity.Reminder, today time.Time, report *RunReport) {
	logger := j.logger.With(
		slog.String("reminder_id", r.ID.String()),
		slog.String("recipient", r.UserEmail),
	)
	if strings.TrimSpace(r.UserEmail) == "" {
		logger.Error("reminder has no recipient")
		report.Failed++
		observability.RecordReminderFailed()
		return
	}

	prevLast, prevPeriod := r.LastNotified, r.LastNotifiedPeriod
	reminder.Stamp(r, today)
	claimed := *r.LastNotified
	err := j.store.ClaimStamp(ctx, r.ID, prevLast, claimed, r.LastNotifiedPeriod)
	if err != nil {
		r.LastNotified, r.LastNotifiedPeriod = prevLast, prevPeriod
		if errors.Is(err, errorvalues.ErrReminderClaimed) {
			logger.Info("reminder already stamped by another run")
			report.Skipped++
			return
		}
		logger.Error("stamping reminder failed", slog.String("error", err.Error()))
		report.Failed++
		observability.RecordReminderFailed()
		return
	}

	subject := r.Title
	if strings.TrimSpace(subject) == "" {
		subject = defaultSubject
	}
	if err = j.mailer.SendReminderEmail(ctx, r.UserEmail, subject, r.Message); err != nil {
		logger.Error("sending reminder failed", slog.String("error", err.Error()))
		report.Failed++
		observability.RecordReminderFailed()
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if rerr := j.store.ReleaseStamp(releaseCtx, r.ID, claimed, prevLast, prevPeriod); rerr != nil {
			logger.Error("releasing reminder stamp failed", slog.String("error", rerr.Error()))
		}
		r.LastNotified, r.LastNotifiedPeriod = prevLast, prevPeriod
		return
	}

	report.Sent++
	observability.RecordReminderSent()
	logger.Info("reminder sent")
}
