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

type MealService struct {
	repo repository.MealsRepositoryI
	now  func() time.Time
}

func NewMealService(mealsRepo repository.MealsRepositoryI) *MealService {
	return &MealService{
		repo: mealsRepo,
		now:  time.Now,
	}
}

func (ms *MealService) SetClock(now func() time.Time) {
	ms.now = now
}

func (ms *MealService) Create(ctx context.Context, uid uuid.UUID, req *MealRequest) (*entity.Meal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	meal := entity.Meal{
		UserID: uid,
		Type:   req.Type,
		Date:   entity.DateOf(ms.now()),
	}
	if req.Date != nil {
		meal.Date = entity.DateOf(*req.Date)
	}
	id, err := ms.repo.Create(ctx, &meal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	meal.ID = id
	return &meal, nil
}

func (ms *MealService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.Meal, error) {
	meal, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	if meal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return meal, nil
}

func (ms *MealService) List(ctx context.Context, uid uuid.UUID, filter MealFilter) ([]*entity.Meal, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown meal type "+string(filter.Type)))
	}
	meals, err := ms.repo.ListByUser(ctx, uid, repository.MealFilter{Date: filter.Date, Type: filter.Type})
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meals, nil
}

func (ms *MealService) Update(ctx context.Context, uid, id uuid.UUID, req *MealRequest) (*entity.Meal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	meal, err := ms.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	meal.Type = req.Type
	if req.Date != nil {
		meal.Date = entity.DateOf(*req.Date)
	}
	if err = ms.repo.Update(ctx, meal); err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meal, nil
}

func (ms *MealService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ms.Get(ctx, uid, id); err != nil {
		return err
	}
	if err := ms.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return err
		}
		return errors.New("meals repository error: " + err.Error())
	}
	return nil
}

// mealFood loads a meal food entry and checks that its meal belongs to uid.
func (ms *MealService) mealFood(ctx context.Context, uid, id uuid.UUID) (*entity.MealFood, error) {
	mf, err := ms.repo.GetMealFood(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	if _, err = ms.Get(ctx, uid, mf.MealID); err != nil {
		return nil, err
	}
	return mf, nil
}

func (ms *MealService) AddFood(ctx context.Context, uid, mealID uuid.UUID, req *MealFoodRequest) (*entity.MealFood, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ms.Get(ctx, uid, mealID); err != nil {
		return nil, err
	}
	id, err := ms.repo.AddFood(ctx, &entity.MealFood{
		MealID:   mealID,
		FoodID:   req.FoodID,
		Servings: req.Servings,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	mf, err := ms.repo.GetMealFood(ctx, id)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return mf, nil
}

func (ms *MealService) UpdateServings(ctx context.Context, uid, mealFoodID uuid.UUID, servings float64) (*entity.MealFood, error) {
	if servings <= 0 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("servings must be positive"))
	}
	mf, err := ms.mealFood(ctx, uid, mealFoodID)
	if err != nil {
		return nil, err
	}
	if err = ms.repo.UpdateServings(ctx, mealFoodID, servings); err != nil {
		if errors.Is(err, errorvalues.ErrMealFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	mf.Servings = servings
	return mf, nil
}

func (ms *MealService) RemoveFood(ctx context.Context, uid, mealFoodID uuid.UUID) error {
	if _, err := ms.mealFood(ctx, uid, mealFoodID); err != nil {
		return err
	}
	if err := ms.repo.RemoveFood(ctx, mealFoodID); err != nil {
		if errors.Is(err, errorvalues.ErrMealFoodNotFound) {
			return err
		}
		return errors.New("meals repository error: " + err.Error())
	}
	return nil
}

func (ms *MealService) ListFoods(ctx context.Context, uid, mealID uuid.UUID) ([]*entity.MealFood, error) {
	if _, err := ms.Get(ctx, uid, mealID); err != nil {
		return nil, err
	}
	foods, err := ms.repo.ListFoods(ctx, mealID)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return foods, nil
}

// Calories sums the meal's portions. A meal without foods has no total and
// yields ErrMealHasNoFoods.
func (ms *MealService) Calories(ctx context.Context, uid, mealID uuid.UUID) (float64, error) {
	foods, err := ms.ListFoods(ctx, uid, mealID)
	if err != nil {
		return 0, err
	}
	if len(foods) == 0 {
		return 0, errorvalues.ErrMealHasNoFoods
	}
	total := 0.0
	for _, mf := range foods {
		total += mf.Calories()
	}
	return total, nil
}
