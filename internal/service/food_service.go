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

type FoodService struct {
	repo repository.FoodsRepositoryI
}

func NewFoodService(foodsRepo repository.FoodsRepositoryI) *FoodService {
	return &FoodService{
		repo: foodsRepo,
	}
}

func foodFromRequest(req *FoodRequest) entity.Food {
	return entity.Food{
		Name:     req.Name,
		Calories: req.Calories,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Servings: req.Servings,
	}
}

func (fs *FoodService) Create(ctx context.Context, req *FoodRequest) (*entity.Food, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	food := foodFromRequest(req)
	id, err := fs.repo.Create(ctx, &food)
	if err != nil {
		return nil, errors.New("foods repository error: " + err.Error())
	}
	food.ID = id
	return &food, nil
}

func (fs *FoodService) Get(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	food, err := fs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("foods repository error: " + err.Error())
	}
	return food, nil
}

func (fs *FoodService) Search(ctx context.Context, name string) ([]*entity.Food, error) {
	var (
		foods []*entity.Food
		err   error
	)
	if name = strings.TrimSpace(name); name == "" {
		foods, err = fs.repo.List(ctx)
	} else {
		foods, err = fs.repo.SearchByName(ctx, name)
	}
	if err != nil {
		return nil, errors.New("foods repository error: " + err.Error())
	}
	return foods, nil
}

func (fs *FoodService) ListByCalorieRange(ctx context.Context, min, max float64) ([]*entity.Food, error) {
	if min < 0 || max < min {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("invalid calorie range"))
	}
	foods, err := fs.repo.ListByCalorieRange(ctx, min, max)
	if err != nil {
		return nil, errors.New("foods repository error: " + err.Error())
	}
	return foods, nil
}

func (fs *FoodService) Update(ctx context.Context, id uuid.UUID, req *FoodRequest) (*entity.Food, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	food := foodFromRequest(req)
	food.ID = id
	if err := fs.repo.Update(ctx, &food); err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("foods repository error: " + err.Error())
	}
	return &food, nil
}

func (fs *FoodService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := fs.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) {
			return err
		}
		return errors.New("foods repository error: " + err.Error())
	}
	return nil
}
