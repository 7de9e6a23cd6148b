package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/reminder"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

// ReminderService manages reminders. "Today" and notify times are read in
// the service location, the same one the delivery job uses.
type ReminderService struct {
	repo repository.RemindersRepositoryI
	loc  *time.Location
	now  func() time.Time
}

func NewReminderService(remindersRepo repository.RemindersRepositoryI, loc *time.Location) *ReminderService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderService{
		repo: remindersRepo,
		loc:  loc,
		now:  time.Now,
	}
}

func (rs *ReminderService) SetClock(now func() time.Time) {
	rs.now = now
}

func (rs *ReminderService) clock() (today time.Time, now entity.TimeOfDay) {
	t := rs.now().In(rs.loc)
	return entity.DateOf(t), entity.TimeOfDayOf(t)
}

func (rs *ReminderService) Create(ctx context.Context, uid uuid.UUID, req *ReminderRequest) (*entity.Reminder, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Type == "" || req.NotifyTime == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("type and notify time are required"))
	}
	r := entity.Reminder{
		UserID:     uid,
		Type:       req.Type,
		Enabled:    true,
		NotifyTime: *req.NotifyTime,
	}
	if req.Enabled != nil {
		r.Enabled = *req.Enabled
	}
	if req.Frequency != nil {
		r.Frequency = *req.Frequency
	}
	if req.NotifyDate != nil {
		d := entity.DateOf(*req.NotifyDate)
		r.NotifyDate = &d
	}
	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Message != nil {
		r.Message = *req.Message
	}
	r.ApplyDefaultMessage()

	id, err := rs.repo.Create(ctx, &r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	r.ID = id
	return &r, nil
}

func (rs *ReminderService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.Reminder, error) {
	r, err := rs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	if r.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return r, nil
}

func (rs *ReminderService) List(ctx context.Context, uid uuid.UUID, filter ReminderFilter) ([]*entity.Reminder, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown reminder type "+string(filter.Type)))
	}
	list, err := rs.repo.ListByUser(ctx, uid, repository.ReminderFilter{
		EnabledOnly: filter.EnabledOnly,
		Type:        filter.Type,
	})
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return list, nil
}

func (rs *ReminderService) Upcoming(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	list, err := rs.List(ctx, uid, ReminderFilter{EnabledOnly: true})
	if err != nil {
		return nil, err
	}
	_, now := rs.clock()
	upcoming := make([]*entity.Reminder, 0, len(list))
	for _, r := range list {
		if now.Before(r.NotifyTime) {
			upcoming = append(upcoming, r)
		}
	}
	return upcoming, nil
}

// Update merges the non-nil request fields onto the stored reminder. A type
// change carries a default message along to the new type.
func (rs *ReminderService) Update(ctx context.Context, uid, id uuid.UUID, req *ReminderRequest) (*entity.Reminder, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	r, err := rs.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if req.Type != "" {
		r.ChangeType(req.Type)
	}
	if req.Message != nil {
		r.SetMessage(*req.Message)
	}
	if req.Enabled != nil {
		r.Enabled = *req.Enabled
	}
	if req.Frequency != nil {
		r.Frequency = *req.Frequency
	}
	if req.NotifyTime != nil {
		r.NotifyTime = *req.NotifyTime
	}
	if req.NotifyDate != nil {
		d := entity.DateOf(*req.NotifyDate)
		r.NotifyDate = &d
	}
	if req.Title != nil {
		r.Title = *req.Title
	}
	r.ApplyDefaultMessage()
	if err = rs.repo.Update(ctx, r); err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return r, nil
}

func (rs *ReminderService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := rs.Get(ctx, uid, id); err != nil {
		return err
	}
	if err := rs.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return err
		}
		return errors.New("reminders repository error: " + err.Error())
	}
	return nil
}

// MarkNotified stamps the reminder for today the same way delivery does.
// ErrReminderClaimed means a concurrent writer changed the stamp first.
func (rs *ReminderService) MarkNotified(ctx context.Context, uid, id uuid.UUID) (*entity.Reminder, error) {
	r, err := rs.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	today, _ := rs.clock()
	prevLast := r.LastNotified
	reminder.Stamp(r, today)
	if err = rs.repo.ClaimStamp(ctx, r.ID, prevLast, *r.LastNotified, r.LastNotifiedPeriod); err != nil {
		if errors.Is(err, errorvalues.ErrReminderClaimed) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return r, nil
}

func (rs *ReminderService) Status(ctx context.Context, uid, id uuid.UUID) (*entity.ReminderStatus, error) {
	r, err := rs.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	today, now := rs.clock()
	status := reminder.Status(r, today, now)
	return &status, nil
}
