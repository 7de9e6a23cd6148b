package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

// Wednesday 12 March 2025, 10:00 UTC
var reminderNow = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func newReminderService(repo *remindersRepoFake) *service.ReminderService {
	rs := service.NewReminderService(repo, time.UTC)
	rs.SetClock(func() time.Time { return reminderNow })
	return rs
}

func at(hour, minute int) *entity.TimeOfDay {
	return &entity.TimeOfDay{Hour: hour, Minute: minute}
}

func TestCreateReminder(t *testing.T) {
	ctx := context.Background()
	rs := newReminderService(newRemindersRepoFake())
	uid := uuid.New()

	t.Run("message backfilled from type", func(t *testing.T) {
		r, err := rs.Create(ctx, uid, &service.ReminderRequest{Type: entity.ReminderDrinkWater, NotifyTime: at(9, 0)})
		require.NoError(t, err)
		assert.Equal(t, "Time to hydrate!", r.Message)
		assert.True(t, r.Enabled)
		assert.True(t, r.IsOneTime())
	})
	t.Run("blank message backfilled", func(t *testing.T) {
		r, err := rs.Create(ctx, uid, &service.ReminderRequest{Type: entity.ReminderBedtime, NotifyTime: at(22, 0), Message: ptr("  ")})
		require.NoError(t, err)
		assert.Equal(t, "Time to wind down for bed.", r.Message)
	})
	t.Run("custom message and frequency", func(t *testing.T) {
		r, err := rs.Create(ctx, uid, &service.ReminderRequest{
			Type:       entity.ReminderWorkout,
			NotifyTime: at(18, 0),
			Frequency:  ptr(entity.FrequencyWeekdays),
			Message:    ptr("Leg day"),
			Enabled:    ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Leg day", r.Message)
		assert.Equal(t, entity.FrequencyWeekdays, r.Frequency)
		assert.False(t, r.Enabled)
	})
	t.Run("validation", func(t *testing.T) {
		_, err := rs.Create(ctx, uid, &service.ReminderRequest{Type: entity.ReminderWorkout})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		_, err = rs.Create(ctx, uid, &service.ReminderRequest{Type: "NAP", NotifyTime: at(13, 0)})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		_, err = rs.Create(ctx, uid, &service.ReminderRequest{Type: entity.ReminderWorkout, NotifyTime: at(13, 0), Frequency: ptr(entity.ReminderFrequency("HOURLY"))})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestUpdateReminderMessageFollowsType(t *testing.T) {
	ctx := context.Background()
	rs := newReminderService(newRemindersRepoFake())
	uid := uuid.New()
	r, err := rs.Create(ctx, uid, &service.ReminderRequest{Type: entity.ReminderWorkout, NotifyTime: at(7, 0)})
	require.NoError(t, err)

	updated, err := rs.Update(ctx, uid, r.ID, &service.ReminderRequest{Type: entity.ReminderWeighIn})
	require.NoError(t, err)
	assert.Equal(t, "Track your weight today.", updated.Message)

	updated, err = rs.Update(ctx, uid, r.ID, &service.ReminderRequest{Message: ptr("Step on the scale")})
	require.NoError(t, err)
	updated, err = rs.Update(ctx, uid, r.ID, &service.ReminderRequest{Type: entity.ReminderMealLog, NotifyTime: at(8, 30)})
	require.NoError(t, err)
	assert.Equal(t, "Step on the scale", updated.Message)
	assert.Equal(t, entity.ReminderMealLog, updated.Type)
	assert.Equal(t, entity.TimeOfDay{Hour: 8, Minute: 30}, updated.NotifyTime)

	_, err = rs.Update(ctx, uuid.New(), r.ID, &service.ReminderRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
}

func TestListAndUpcomingReminders(t *testing.T) {
	ctx := context.Background()
	rs := newReminderService(newRemindersRepoFake())
	uid := uuid.New()
	for _, req := range []service.ReminderRequest{
		{Type: entity.ReminderDrinkWater, NotifyTime: at(9, 0)},
		{Type: entity.ReminderDrinkWater, NotifyTime: at(15, 0)},
		{Type: entity.ReminderBedtime, NotifyTime: at(22, 0)},
		{Type: entity.ReminderWorkout, NotifyTime: at(18, 0), Enabled: ptr(false)},
	} {
		_, err := rs.Create(ctx, uid, &req)
		require.NoError(t, err)
	}

	all, err := rs.List(ctx, uid, service.ReminderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	enabled, err := rs.List(ctx, uid, service.ReminderFilter{EnabledOnly: true})
	require.NoError(t, err)
	assert.Len(t, enabled, 3)
	water, err := rs.List(ctx, uid, service.ReminderFilter{Type: entity.ReminderDrinkWater})
	require.NoError(t, err)
	assert.Len(t, water, 2)

	upcoming, err := rs.Upcoming(ctx, uid)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, entity.TimeOfDay{Hour: 15}, upcoming[0].NotifyTime)
	assert.Equal(t, entity.TimeOfDay{Hour: 22}, upcoming[1].NotifyTime)
}

func TestMarkNotifiedAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := newRemindersRepoFake()
	rs := newReminderService(repo)
	uid := uuid.New()
	r, err := rs.Create(ctx, uid, &service.ReminderRequest{
		Type:       entity.ReminderDrinkWater,
		NotifyTime: at(9, 0),
		Frequency:  ptr(entity.FrequencyDaily),
	})
	require.NoError(t, err)

	status, err := rs.Status(ctx, uid, r.ID)
	require.NoError(t, err)
	assert.True(t, status.DueNow)
	assert.Nil(t, status.LastNotified)

	stamped, err := rs.MarkNotified(ctx, uid, r.ID)
	require.NoError(t, err)
	today := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, *stamped.LastNotified)
	assert.Equal(t, "DAILY", stamped.LastNotifiedPeriod)

	status, err = rs.Status(ctx, uid, r.ID)
	require.NoError(t, err)
	assert.False(t, status.DueNow)
	assert.Equal(t, "DAILY", status.LastNotifiedPeriod)

	repo.claimErr = errorvalues.ErrReminderClaimed
	_, err = rs.MarkNotified(ctx, uid, r.ID)
	assert.ErrorIs(t, err, errorvalues.ErrReminderClaimed)

	_, err = rs.Status(ctx, uuid.New(), r.ID)
	assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
}

func TestDeleteReminder(t *testing.T) {
	ctx := context.Background()
	repo := newRemindersRepoFake()
	rs := newReminderService(repo)
	uid := uuid.New()
	r, err := rs.Create(ctx, uid, &service.ReminderRequest{Type: entity.ReminderRestDay, NotifyTime: at(8, 0)})
	require.NoError(t, err)

	assert.ErrorIs(t, rs.Delete(ctx, uuid.New(), r.ID), errorvalues.ErrWrongOwner)
	require.NoError(t, rs.Delete(ctx, uid, r.ID))
	assert.ErrorIs(t, rs.Delete(ctx, uid, r.ID), errorvalues.ErrReminderNotFound)

	repo.err = errDB
	_, err = rs.List(ctx, uid, service.ReminderFilter{})
	assert.EqualError(t, err, "reminders repository error: db error")
}
