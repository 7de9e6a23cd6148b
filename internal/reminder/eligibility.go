// Package reminder decides when a reminder is due and records that it was sent.
//
// The decision is a pure function of the reminder fields, the current date and
// the current wall-clock time; it never touches storage.
package reminder

import (
	"time"

	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

// PeriodOnce is stamped for reminders without a recurrence.
const PeriodOnce = "ONCE"

// ShouldSendToday reports whether r must be delivered on the tick at (today, now).
func ShouldSendToday(r *entity.Reminder, today time.Time, now entity.TimeOfDay) bool {
	if r == nil || !r.Enabled {
		return false
	}
	if now.Before(r.NotifyTime) {
		return false
	}
	if r.LastNotified != nil && entity.SameDate(*r.LastNotified, today) {
		return false
	}
	if r.IsOneTime() {
		return oneTimeDue(r, today)
	}
	return recurringDue(r, today)
}

func oneTimeDue(r *entity.Reminder, today time.Time) bool {
	if r.NotifyDate == nil {
		return r.LastNotified == nil
	}
	return entity.SameDate(*r.NotifyDate, today)
}

func recurringDue(r *entity.Reminder, today time.Time) bool {
	day := entity.DateOf(today)
	if r.NotifyDate != nil && day.Before(entity.DateOf(*r.NotifyDate)) {
		return false
	}
	switch r.Frequency {
	case entity.FrequencyWeekdays:
		wd := day.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case entity.FrequencyWeekends:
		wd := day.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	}
	if r.LastNotified == nil {
		return true
	}
	next, ok := NextDue(r.Frequency, *r.LastNotified)
	if !ok {
		return false
	}
	return !day.Before(next)
}

// NextDue returns the first date a recurring reminder re-arms after being sent
// on last. ok is false for frequencies without a fixed period.
func NextDue(freq entity.ReminderFrequency, last time.Time) (next time.Time, ok bool) {
	last = entity.DateOf(last)
	switch freq {
	case entity.FrequencyDaily, entity.FrequencyWeekdays, entity.FrequencyWeekends:
		return last.AddDate(0, 0, 1), true
	case entity.FrequencyWeekly:
		return last.AddDate(0, 0, 7), true
	case entity.FrequencyMonthly:
		return addMonthsClamped(last, 1), true
	case entity.FrequencyYearly:
		return addMonthsClamped(last, 12), true
	}
	return time.Time{}, false
}

// addMonthsClamped moves d by n months, clamping the day to the end of the
// target month, so Jan 31 + 1 month is Feb 28/29.
func addMonthsClamped(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

// Period is the tag stored alongside the last notification date.
func Period(r *entity.Reminder) string {
	if r.IsOneTime() {
		return PeriodOnce
	}
	return string(r.Frequency)
}

// Stamp marks r as notified on today.
func Stamp(r *entity.Reminder, today time.Time) {
	d := entity.DateOf(today)
	r.LastNotified = &d
	r.LastNotifiedPeriod = Period(r)
}

// Status summarises the notification state of r at (today, now).
func Status(r *entity.Reminder, today time.Time, now entity.TimeOfDay) entity.ReminderStatus {
	return entity.ReminderStatus{
		ID:                 r.ID,
		Enabled:            r.Enabled,
		LastNotified:       r.LastNotified,
		LastNotifiedPeriod: r.LastNotifiedPeriod,
		DueNow:             ShouldSendToday(r, today, now),
	}
}
