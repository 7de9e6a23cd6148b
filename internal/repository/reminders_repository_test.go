package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

var reminderCols = []string{
	"id", "user_id", "reminder_type", "enabled", "frequency", "notify_time", "notify_date",
	"last_notified", "last_notified_period", "title", "message", "created_at",
}

func testReminder() entity.Reminder {
	return entity.Reminder{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Type:               entity.ReminderDrinkWater,
		Enabled:            true,
		Frequency:          entity.FrequencyDaily,
		NotifyTime:         entity.TimeOfDay{Hour: 9, Minute: 30},
		NotifyDate:         (*time.Time)(nil),
		LastNotified:       ptr(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)),
		LastNotifiedPeriod: "DAILY",
		Title:              "Water",
		Message:            "Time to hydrate!",
		CreatedAt:          time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC),
	}
}

func reminderValues(r entity.Reminder) []any {
	var frequency, period *string
	if r.Frequency != "" {
		frequency = ptr(string(r.Frequency))
	}
	if r.LastNotifiedPeriod != "" {
		period = ptr(r.LastNotifiedPeriod)
	}
	return []any{
		r.ID, r.UserID, r.Type, r.Enabled, frequency,
		pgtype.Time{Microseconds: int64(r.NotifyTime.Minutes()) * int64(time.Minute/time.Microsecond), Valid: true},
		r.NotifyDate, r.LastNotified, period, r.Title, r.Message, r.CreatedAt,
	}
}

func TestTimeOfDayToPg(t *testing.T) {
	pg := repository.TimeOfDayToPg(entity.TimeOfDay{Hour: 9, Minute: 30})
	assert.True(t, pg.Valid)
	assert.Equal(t, int64(9*3600+30*60)*1_000_000, pg.Microseconds)
}

func TestCreateReminder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	r := testReminder()
	query := regexp.QuoteMeta(`INSERT INTO reminders (user_id, reminder_type, enabled, frequency, notify_time, notify_date, title, message)`)
	args := []any{r.UserID, "DRINK_WATER", true, ptr("DAILY"), repository.TimeOfDayToPg(r.NotifyTime), r.NotifyDate, r.Title, r.Message}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(r.ID))
			},
		},
		{
			Desc:  "unknown owner",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating reminder error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &r)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, r.ID, id)
		})
	}
}

func TestGetReminder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`FROM reminders r WHERE r.id = $1;`)

	t.Run("recurring", func(t *testing.T) {
		r := testReminder()
		mock.ExpectQuery(query).WithArgs(r.ID).WillReturnRows(pgxmock.NewRows(reminderCols).AddRow(reminderValues(r)...))
		got, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r, *got)
	})
	t.Run("one-time never notified", func(t *testing.T) {
		r := testReminder()
		r.Frequency = ""
		r.NotifyDate = ptr(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
		r.LastNotified = nil
		r.LastNotifiedPeriod = ""
		mock.ExpectQuery(query).WithArgs(r.ID).WillReturnRows(pgxmock.NewRows(reminderCols).AddRow(reminderValues(r)...))
		got, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r, *got)
		assert.True(t, got.IsOneTime())
	})
	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrReminderNotFound)
	})
}

func TestListReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	r := testReminder()

	t.Run("enabled of type", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.user_id = $1 AND r.enabled AND r.reminder_type = $2 ORDER BY r.notify_time;`)).
			WithArgs(r.UserID, "DRINK_WATER").
			WillReturnRows(pgxmock.NewRows(reminderCols).AddRow(reminderValues(r)...))
		got, err := repo.ListByUser(ctx, r.UserID, repository.ReminderFilter{EnabledOnly: true, Type: entity.ReminderDrinkWater})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, r, *got[0])
	})
	t.Run("with recipients", func(t *testing.T) {
		values := append(reminderValues(r), "jane@example.com")
		mock.ExpectQuery(regexp.QuoteMeta(`u.email FROM reminders r JOIN users u ON u.id = r.user_id WHERE r.enabled;`)).
			WillReturnRows(pgxmock.NewRows(append(reminderCols, "email")).AddRow(values...))
		got, err := repo.ListEnabledWithRecipients(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "jane@example.com", got[0].UserEmail)
		assert.Equal(t, r.NotifyTime, got[0].NotifyTime)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.enabled;`)).WillReturnError(errors.New("db error"))
		_, err := repo.ListEnabledWithRecipients(ctx)
		assert.EqualError(t, err, "listing reminders error: db error")
	})
}

func TestClaimAndReleaseStamp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	prev := ptr(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC))
	today := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	claim := regexp.QuoteMeta(`UPDATE reminders SET last_notified = $1, last_notified_period = $2 WHERE id = $3 AND last_notified IS NOT DISTINCT FROM $4;`)
	release := regexp.QuoteMeta(`UPDATE reminders SET last_notified = $1, last_notified_period = $2 WHERE id = $3 AND last_notified = $4;`)

	t.Run("claimed", func(t *testing.T) {
		mock.ExpectExec(claim).WithArgs(today, "DAILY", id, prev).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.ClaimStamp(ctx, id, prev, today, "DAILY"))
	})
	t.Run("claimed from never notified", func(t *testing.T) {
		mock.ExpectExec(claim).WithArgs(today, "ONCE", id, (*time.Time)(nil)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.ClaimStamp(ctx, id, nil, today, "ONCE"))
	})
	t.Run("lost the race", func(t *testing.T) {
		mock.ExpectExec(claim).WithArgs(today, "DAILY", id, prev).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.ClaimStamp(ctx, id, prev, today, "DAILY"), errorvalues.ErrReminderClaimed)
	})
	t.Run("claim db error", func(t *testing.T) {
		mock.ExpectExec(claim).WithArgs(today, "DAILY", id, prev).WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.ClaimStamp(ctx, id, prev, today, "DAILY"), "stamping reminder error: db error")
	})
	t.Run("released", func(t *testing.T) {
		mock.ExpectExec(release).WithArgs(prev, ptr("DAILY"), id, today).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.ReleaseStamp(ctx, id, today, prev, "DAILY"))
	})
	t.Run("released to never notified", func(t *testing.T) {
		mock.ExpectExec(release).WithArgs((*time.Time)(nil), (*string)(nil), id, today).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.ReleaseStamp(ctx, id, today, nil, ""))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDeleteReminder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	r := testReminder()
	r.Frequency = ""

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reminders SET reminder_type = $1`)).
		WithArgs("DRINK_WATER", true, (*string)(nil), repository.TimeOfDayToPg(r.NotifyTime), r.NotifyDate, r.Title, r.Message, r.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(ctx, &r), errorvalues.ErrReminderNotFound)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reminders WHERE id = $1;`)).WithArgs(r.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(ctx, r.ID))
}
