package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

type WeighInService struct {
	repo      repository.WeighInsRepositoryI
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

func NewWeighInService(weighInsRepo repository.WeighInsRepositoryI, usersRepo repository.UsersRepositoryI) *WeighInService {
	return &WeighInService{
		repo:      weighInsRepo,
		usersRepo: usersRepo,
		now:       time.Now,
	}
}

func (ws *WeighInService) SetClock(now func() time.Time) {
	ws.now = now
}

// syncCurrentWeight copies the weight of w to the profile when w is the
// user's most recent weigh-in.
func (ws *WeighInService) syncCurrentWeight(ctx context.Context, w *entity.WeighIn) error {
	if w.Weight == nil {
		return nil
	}
	latest, err := ws.repo.Latest(ctx, w.UserID)
	if err != nil {
		return errors.New("weigh-ins repository error: " + err.Error())
	}
	if latest == nil || latest.ID != w.ID {
		return nil
	}
	if err = ws.usersRepo.UpdateWeight(ctx, w.UserID, *w.Weight); err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}

func (ws *WeighInService) Create(ctx context.Context, uid uuid.UUID, req *WeighInRequest) (*entity.WeighIn, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	w := entity.WeighIn{
		UserID: uid,
		Date:   entity.DateOf(ws.now()),
		Height: req.Height,
		Weight: req.Weight,
		Notes:  req.Notes,
	}
	if req.Date != nil {
		w.Date = entity.DateOf(*req.Date)
	}
	id, err := ws.repo.Create(ctx, &w)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("weigh-ins repository error: " + err.Error())
	}
	w.ID = id
	if err = ws.syncCurrentWeight(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (ws *WeighInService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.WeighIn, error) {
	w, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWeighInNotFound) {
			return nil, err
		}
		return nil, errors.New("weigh-ins repository error: " + err.Error())
	}
	if w.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return w, nil
}

func (ws *WeighInService) List(ctx context.Context, uid uuid.UUID) ([]*entity.WeighIn, error) {
	list, err := ws.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("weigh-ins repository error: " + err.Error())
	}
	return list, nil
}

func (ws *WeighInService) Update(ctx context.Context, uid, id uuid.UUID, req *WeighInRequest) (*entity.WeighIn, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	w, err := ws.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		w.Date = entity.DateOf(*req.Date)
	}
	if req.Height != nil {
		w.Height = req.Height
	}
	if req.Weight != nil {
		w.Weight = req.Weight
	}
	w.Notes = req.Notes
	if err = ws.repo.Update(ctx, w); err != nil {
		if errors.Is(err, errorvalues.ErrWeighInNotFound) {
			return nil, err
		}
		return nil, errors.New("weigh-ins repository error: " + err.Error())
	}
	if err = ws.syncCurrentWeight(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (ws *WeighInService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ws.Get(ctx, uid, id); err != nil {
		return err
	}
	if err := ws.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrWeighInNotFound) {
			return err
		}
		return errors.New("weigh-ins repository error: " + err.Error())
	}
	return nil
}
