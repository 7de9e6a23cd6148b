package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Dustin-Locke/HealthAndwellness/internal/calories"
	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/observability"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

// WorkoutService keeps the exercise log. Burned calories are derived from the
// exercise type, the logged amounts and the owner's weight, and are recomputed
// on every change.
type WorkoutService struct {
	logRepo       repository.UserExercisesRepositoryI
	exercisesRepo repository.ExercisesRepositoryI
	usersRepo     repository.UsersRepositoryI
	now           func() time.Time
}

func NewWorkoutService(logRepo repository.UserExercisesRepositoryI, exercisesRepo repository.ExercisesRepositoryI,
	usersRepo repository.UsersRepositoryI) *WorkoutService {
	return &WorkoutService{
		logRepo:       logRepo,
		exercisesRepo: exercisesRepo,
		usersRepo:     usersRepo,
		now:           time.Now,
	}
}

func (ws *WorkoutService) SetClock(now func() time.Time) {
	ws.now = now
}

func (ws *WorkoutService) exercise(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	exercise, err := ws.exercisesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

// estimate fills CaloriesBurned of ue using the owner's current weight, then
// initial weight, then the default body weight.
func (ws *WorkoutService) estimate(ctx context.Context, ue *entity.UserExercise, exercise *entity.Exercise) error {
	user, err := ws.usersRepo.FindByID(ctx, ue.UserID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	kcal, err := calories.Estimate(calories.Input{
		BodyWeightLbs:     user.Weight,
		FallbackWeightLbs: user.InitialWeight,
		Type:              exercise.Type,
		Intensity:         ue.Intensity,
		DurationMinutes:   ue.DurationMinutes,
		Reps:              ue.Reps,
		Sets:              ue.Sets,
	})
	if err != nil {
		return errors.New("estimating calories error: " + err.Error())
	}
	observability.RecordCalorieEstimate(string(exercise.Type))
	ue.CaloriesBurned = kcal
	ue.ExerciseName = exercise.Name
	return nil
}

func (ws *WorkoutService) Create(ctx context.Context, uid uuid.UUID, req *WorkoutRequest) (*entity.UserExercise, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.ExerciseID == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("exercise id is required"))
	}
	exercise, err := ws.exercise(ctx, *req.ExerciseID)
	if err != nil {
		return nil, err
	}
	ue := entity.UserExercise{
		UserID:          uid,
		ExerciseID:      exercise.ID,
		Date:            entity.DateOf(ws.now()),
		DurationMinutes: req.DurationMinutes,
		Reps:            req.Reps,
		Sets:            req.Sets,
		Intensity:       req.Intensity,
	}
	if req.Date != nil {
		ue.Date = entity.DateOf(*req.Date)
	}
	if req.Complete != nil {
		ue.Complete = *req.Complete
	}
	if err = ws.estimate(ctx, &ue, exercise); err != nil {
		return nil, err
	}
	id, err := ws.logRepo.Create(ctx, &ue)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercise log repository error: " + err.Error())
	}
	ue.ID = id
	return &ue, nil
}

func (ws *WorkoutService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.UserExercise, error) {
	ue, err := ws.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercise log repository error: " + err.Error())
	}
	if ue.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return ue, nil
}

func (ws *WorkoutService) List(ctx context.Context, uid uuid.UUID, filter WorkoutFilter) ([]*entity.UserExercise, error) {
	entries, err := ws.logRepo.ListByUser(ctx, uid, repository.UserExerciseFilter{
		Date:       filter.Date,
		ExerciseID: filter.ExerciseID,
		Complete:   filter.Complete,
		From:       filter.From,
		To:         filter.To,
	})
	if err != nil {
		return nil, errors.New("exercise log repository error: " + err.Error())
	}
	return entries, nil
}

// Update merges the non-nil request fields onto the stored entry and
// recomputes its calories.
func (ws *WorkoutService) Update(ctx context.Context, uid, id uuid.UUID, req *WorkoutRequest) (*entity.UserExercise, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ue, err := ws.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if req.ExerciseID != nil {
		ue.ExerciseID = *req.ExerciseID
	}
	if req.Date != nil {
		ue.Date = entity.DateOf(*req.Date)
	}
	if req.DurationMinutes != nil {
		ue.DurationMinutes = req.DurationMinutes
	}
	if req.Reps != nil {
		ue.Reps = req.Reps
	}
	if req.Sets != nil {
		ue.Sets = req.Sets
	}
	if req.Intensity != "" {
		ue.Intensity = req.Intensity
	}
	if req.Complete != nil {
		ue.Complete = *req.Complete
	}
	exercise, err := ws.exercise(ctx, ue.ExerciseID)
	if err != nil {
		return nil, err
	}
	if err = ws.estimate(ctx, ue, exercise); err != nil {
		return nil, err
	}
	if err = ws.logRepo.Update(ctx, ue); err != nil {
		if errors.Is(err, errorvalues.ErrUserExerciseNotFound) || errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercise log repository error: " + err.Error())
	}
	return ue, nil
}

func (ws *WorkoutService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ws.Get(ctx, uid, id); err != nil {
		return err
	}
	if err := ws.logRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrUserExerciseNotFound) {
			return err
		}
		return errors.New("exercise log repository error: " + err.Error())
	}
	return nil
}
