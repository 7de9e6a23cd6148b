package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

const reminderColumns = `r.id, r.user_id, r.reminder_type, r.enabled, r.frequency, r.notify_time, r.notify_date, r.last_notified, r.last_notified_period, r.title, r.message, r.created_at`

const microsecondsPerMinute = int64(time.Minute / time.Microsecond)

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepo(cfg DBConfig) *RemindersRepository {
	return NewRemindersRepoWithConn(NewPool(cfg))
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	mustPing(conn, "remindersRepo")
	return &RemindersRepository{
		conn: conn,
	}
}

// TimeOfDayToPg converts a wall-clock time to a TIME value.
func TimeOfDayToPg(t entity.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * microsecondsPerMinute, Valid: true}
}

func timeOfDayFromPg(t pgtype.Time) entity.TimeOfDay {
	minutes := int(t.Microseconds / microsecondsPerMinute)
	return entity.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

// scanReminder reads reminderColumns and, when withEmail is set, a trailing
// recipient e-mail column.
func scanReminder(row pgx.Row, withEmail bool) (*entity.Reminder, error) {
	var (
		r          entity.Reminder
		frequency  *string
		notifyTime pgtype.Time
		period     *string
	)
	dest := []any{
		&r.ID,
		&r.UserID,
		&r.Type,
		&r.Enabled,
		&frequency,
		&notifyTime,
		&r.NotifyDate,
		&r.LastNotified,
		&period,
		&r.Title,
		&r.Message,
		&r.CreatedAt,
	}
	if withEmail {
		dest = append(dest, &r.UserEmail)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if frequency != nil {
		r.Frequency = entity.ReminderFrequency(*frequency)
	}
	if period != nil {
		r.LastNotifiedPeriod = *period
	}
	r.NotifyTime = timeOfDayFromPg(notifyTime)
	return &r, nil
}

func (rr *RemindersRepository) Create(ctx context.Context, r *entity.Reminder) (uuid.UUID, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO reminders (user_id, reminder_type, enabled, frequency, notify_time, notify_date, title, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		r.UserID,
		string(r.Type),
		r.Enabled,
		nullableString(string(r.Frequency)),
		TimeOfDayToPg(r.NotifyTime),
		r.NotifyDate,
		r.Title,
		r.Message,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating reminder error: " + err.Error())
	}
	return id, nil
}

func (rr *RemindersRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	r, err := scanReminder(rr.conn.QueryRow(ctx, `SELECT `+reminderColumns+` FROM reminders r WHERE r.id = $1;`, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReminderNotFound
		}
		return nil, errors.New("getting reminder error: " + err.Error())
	}
	return r, nil
}

func (rr *RemindersRepository) list(ctx context.Context, withEmail bool, query string, args ...any) ([]*entity.Reminder, error) {
	rows, err := rr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing reminders error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Reminder, 0)
	for rows.Next() {
		r, err := scanReminder(rows, withEmail)
		if err != nil {
			return nil, errors.New("reminder row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected reminder rows error: " + err.Error())
	}
	return result, nil
}

func (rr *RemindersRepository) ListByUser(ctx context.Context, uid uuid.UUID, filter ReminderFilter) ([]*entity.Reminder, error) {
	conds := []string{"r.user_id = $1"}
	args := []any{uid}
	if filter.EnabledOnly {
		conds = append(conds, "r.enabled")
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, "r.reminder_type = $"+strconv.Itoa(len(args)))
	}
	return rr.list(ctx, false, `SELECT `+reminderColumns+` FROM reminders r WHERE `+strings.Join(conds, " AND ")+` ORDER BY r.notify_time;`, args...)
}

func (rr *RemindersRepository) ListEnabledWithRecipients(ctx context.Context) ([]*entity.Reminder, error) {
	return rr.list(ctx, true, `SELECT `+reminderColumns+`, u.email FROM reminders r JOIN users u ON u.id = r.user_id WHERE r.enabled;`)
}

func (rr *RemindersRepository) Update(ctx context.Context, r *entity.Reminder) error {
	ct, err := rr.conn.Exec(ctx, `UPDATE reminders SET reminder_type = $1, enabled = $2, frequency = $3, notify_time = $4, notify_date = $5, title = $6, message = $7 WHERE id = $8;`,
		string(r.Type),
		r.Enabled,
		nullableString(string(r.Frequency)),
		TimeOfDayToPg(r.NotifyTime),
		r.NotifyDate,
		r.Title,
		r.Message,
		r.ID,
	)
	if err != nil {
		return errors.New("updating reminder error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderNotFound
	}
	return nil
}

func (rr *RemindersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reminders WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting reminder error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderNotFound
	}
	return nil
}

func (rr *RemindersRepository) ClaimStamp(ctx context.Context, id uuid.UUID, prevLast *time.Time, last time.Time, period string) error {
	ct, err := rr.conn.Exec(ctx, `UPDATE reminders SET last_notified = $1, last_notified_period = $2 WHERE id = $3 AND last_notified IS NOT DISTINCT FROM $4;`,
		last, period, id, prevLast,
	)
	if err != nil {
		return errors.New("stamping reminder error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderClaimed
	}
	return nil
}

func (rr *RemindersRepository) ReleaseStamp(ctx context.Context, id uuid.UUID, claimedLast time.Time, prevLast *time.Time, prevPeriod string) error {
	ct, err := rr.conn.Exec(ctx, `UPDATE reminders SET last_notified = $1, last_notified_period = $2 WHERE id = $3 AND last_notified = $4;`,
		prevLast, nullableString(prevPeriod), id, claimedLast,
	)
	if err != nil {
		return errors.New("releasing reminder stamp error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderClaimed
	}
	return nil
}
