package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/jobs"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository/mocks"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	mailmocks "github.com/Dustin-Locke/HealthAndwellness/pkg/mailer/mocks"
)

var (
	// Wednesday, 09:15 UTC
	tickTime = time.Date(2025, time.March, 12, 9, 15, 0, 0, time.UTC)
	today    = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
)

func dailyReminder(email, title string) *entity.Reminder {
	return &entity.Reminder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Type:       entity.ReminderWorkout,
		Enabled:    true,
		Frequency:  entity.FrequencyDaily,
		NotifyTime: entity.TimeOfDay{Hour: 8},
		Title:      title,
		Message:    "Time to exercise!",
		UserEmail:  email,
	}
}

func newJob(store *mocks.MockReminderStampStore, m *mailmocks.MockMailer) *jobs.ReminderJob {
	return jobs.NewReminderJob(store, m, jobs.WithClock(func() time.Time { return tickTime }))
}

func TestRunSendFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)
	first := dailyReminder("a@example.com", "Workout")
	second := dailyReminder("b@example.com", "Workout")
	third := dailyReminder("c@example.com", "")

	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).Return([]*entity.Reminder{first, second, third}, nil)
	gomock.InOrder(
		store.EXPECT().ClaimStamp(gomock.Any(), first.ID, nil, today, "DAILY").Return(nil),
		m.EXPECT().SendReminderEmail(gomock.Any(), "a@example.com", "Workout", "Time to exercise!").Return(nil),
		store.EXPECT().ClaimStamp(gomock.Any(), second.ID, nil, today, "DAILY").Return(nil),
		m.EXPECT().SendReminderEmail(gomock.Any(), "b@example.com", "Workout", "Time to exercise!").Return(errors.New("smtp down")),
		store.EXPECT().ReleaseStamp(gomock.Any(), second.ID, today, nil, "").Return(nil),
		store.EXPECT().ClaimStamp(gomock.Any(), third.ID, nil, today, "DAILY").Return(nil),
		m.EXPECT().SendReminderEmail(gomock.Any(), "c@example.com", "Reminder", "Time to exercise!").Return(nil),
	)

	report, err := newJob(store, m).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs.RunReport{Evaluated: 3, Sent: 2, Failed: 1, Skipped: 0}, report)

	require.NotNil(t, first.LastNotified)
	assert.Equal(t, today, *first.LastNotified)
	assert.Equal(t, "DAILY", first.LastNotifiedPeriod)
	assert.Nil(t, second.LastNotified)
	assert.Empty(t, second.LastNotifiedPeriod)
	require.NotNil(t, third.LastNotified)
	assert.Equal(t, today, *third.LastNotified)
}

func TestRunSkipsIneligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)

	notifiedToday := dailyReminder("a@example.com", "Workout")
	notifiedToday.LastNotified = &today
	notifiedToday.LastNotifiedPeriod = "DAILY"
	later := dailyReminder("b@example.com", "Bedtime")
	later.NotifyTime = entity.TimeOfDay{Hour: 22}
	oneTimeTomorrow := dailyReminder("c@example.com", "Weigh in")
	oneTimeTomorrow.Frequency = entity.FrequencyOnce
	oneTimeTomorrow.NotifyDate = ptr(today.AddDate(0, 0, 1))

	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).Return([]*entity.Reminder{notifiedToday, later, oneTimeTomorrow}, nil)

	report, err := newJob(store, m).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs.RunReport{Evaluated: 3, Skipped: 3}, report)
}

func TestRunClaimOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)

	raced := dailyReminder("a@example.com", "Workout")
	broken := dailyReminder("b@example.com", "Workout")
	noEmail := dailyReminder("", "Workout")

	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).Return([]*entity.Reminder{raced, broken, noEmail}, nil)
	store.EXPECT().ClaimStamp(gomock.Any(), raced.ID, nil, today, "DAILY").Return(errorvalues.ErrReminderClaimed)
	store.EXPECT().ClaimStamp(gomock.Any(), broken.ID, nil, today, "DAILY").Return(errors.New("connection reset"))

	report, err := newJob(store, m).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs.RunReport{Evaluated: 3, Failed: 2, Skipped: 1}, report)
	assert.Nil(t, raced.LastNotified)
	assert.Nil(t, broken.LastNotified)
}

func TestRunOneTimeStampsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)

	r := dailyReminder("a@example.com", "Weigh in")
	r.Frequency = ""
	r.NotifyDate = &today

	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).Return([]*entity.Reminder{r}, nil).Times(2)
	store.EXPECT().ClaimStamp(gomock.Any(), r.ID, nil, today, "ONCE").Return(nil)
	m.EXPECT().SendReminderEmail(gomock.Any(), "a@example.com", "Weigh in", "Time to exercise!").Return(nil)

	job := newJob(store, m)
	report, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)

	// the in-memory reminder now carries today's stamp, so a second tick skips it
	report, err = job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs.RunReport{Evaluated: 1, Skipped: 1}, report)
}

func TestRunListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)
	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).Return(nil, errors.New("db error"))

	_, err := newJob(store, m).Run(context.Background())
	assert.EqualError(t, err, "listing reminders error: db error")
}

func TestRunDoesNotOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)
	job := newJob(store, m)

	var nestedErr error
	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]*entity.Reminder, error) {
		_, nestedErr = job.Run(ctx)
		return nil, nil
	})

	_, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, nestedErr, jobs.ErrJobRunning)
}

func TestRunUsesConfiguredZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockReminderStampStore(ctrl)
	m := mailmocks.NewMockMailer(ctrl)

	// 09:15 UTC is 04:15 or 05:15 in New York, before an 08:00 reminder
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	r := dailyReminder("a@example.com", "Workout")
	store.EXPECT().ListEnabledWithRecipients(gomock.Any()).Return([]*entity.Reminder{r}, nil)

	job := jobs.NewReminderJob(store, m, jobs.WithClock(func() time.Time { return tickTime }), jobs.WithLocation(loc))
	report, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs.RunReport{Evaluated: 1, Skipped: 1}, report)
}

func ptr[T any](v T) *T {
	return &v
}
