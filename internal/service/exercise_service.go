package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

type ExerciseService struct {
	repo repository.ExercisesRepositoryI
}

func NewExerciseService(exercisesRepo repository.ExercisesRepositoryI) *ExerciseService {
	return &ExerciseService{
		repo: exercisesRepo,
	}
}

func (es *ExerciseService) get(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	exercise, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (es *ExerciseService) Create(ctx context.Context, req *ExerciseRequest) (*entity.Exercise, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	id, err := es.repo.Create(ctx, &entity.Exercise{Name: req.Name, Type: req.Type})
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseExists) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return es.get(ctx, id)
}

func (es *ExerciseService) Get(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	return es.get(ctx, id)
}

func (es *ExerciseService) GetByName(ctx context.Context, name string) (*entity.Exercise, error) {
	exercise, err := es.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (es *ExerciseService) List(ctx context.Context, exerciseType entity.ExerciseType) ([]*entity.Exercise, error) {
	if exerciseType != "" && !exerciseType.Valid() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown exercise type "+string(exerciseType)))
	}
	exercises, err := es.repo.List(ctx, exerciseType)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExerciseService) Update(ctx context.Context, id uuid.UUID, req *ExerciseRequest) (*entity.Exercise, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	exercise := entity.Exercise{ID: id, Name: req.Name, Type: req.Type}
	if err := es.repo.Update(ctx, &exercise); err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) || errors.Is(err, errorvalues.ErrExerciseExists) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return &exercise, nil
}

func (es *ExerciseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := es.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}
