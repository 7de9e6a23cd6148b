package api

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/httputil"
)

type WeighInRequest struct {
	Date   string   `json:"date,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

type FoodRequest struct {
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Amount   *float64 `json:"amount,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Servings *float64 `json:"servings,omitempty"`
}

type MealRequest struct {
	Type string `json:"type"`
	Date string `json:"date,omitempty"`
}

type MealFoodRequest struct {
	FoodID   uuid.UUID `json:"food_id"`
	Servings float64   `json:"servings"`
}

type ServingsRequest struct {
	Servings float64 `json:"servings"`
}

type MealCaloriesResponse struct {
	MealID   string  `json:"meal_id"`
	Calories float64 `json:"calories"`
}

func (req *WeighInRequest) toService() (*service.WeighInRequest, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &service.WeighInRequest{
		Date:   date,
		Height: req.Height,
		Weight: req.Weight,
		Notes:  req.Notes,
	}, nil
}

func (s *Server) CreateWeighIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create weigh-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WeighInRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("create weigh-in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("create weigh-in error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	weighIn, err := s.weighInService.Create(ctx, uid, svcReq)
	if err != nil {
		writeServiceError(w, logger, "create weigh-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, weighIn)
	logger.Info("weigh-in created")
}

func (s *Server) ListWeighIns(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list weigh-ins error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	weighIns, err := s.weighInService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list weigh-ins", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, weighIns)
}

func (s *Server) GetWeighIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get weigh-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get weigh-in error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid weigh-in id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	weighIn, err := s.weighInService.Get(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get weigh-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, weighIn)
}

func (s *Server) UpdateWeighIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update weigh-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("update weigh-in error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid weigh-in id in path value", nil)
		return
	}
	var req WeighInRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update weigh-in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("update weigh-in error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	weighIn, err := s.weighInService.Update(ctx, uid, id, svcReq)
	if err != nil {
		writeServiceError(w, logger, "update weigh-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, weighIn)
	logger.Info("weigh-in updated")
}

func (s *Server) DeleteWeighIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete weigh-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("delete weigh-in error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid weigh-in id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.weighInService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete weigh-in", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("weigh-in deleted")
}

func (req *FoodRequest) toService() *service.FoodRequest {
	return &service.FoodRequest{
		Name:     req.Name,
		Calories: req.Calories,
		Amount:   req.Amount,
		Unit:     entity.MeasurementUnit(req.Unit),
		Servings: req.Servings,
	}
}

func (s *Server) CreateFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req FoodRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("create food error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	food, err := s.foodService.Create(ctx, req.toService())
	if err != nil {
		writeServiceError(w, logger, "create food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, food)
	logger.Info("food created")
}

// ListFoods searches by the name parameter, or filters by min_calories and
// max_calories when either is given.
// calorieBounds reads min_calories and max_calories. A missing lower bound is
// 0 and a missing upper bound is unbounded.
func calorieBounds(q url.Values) (float64, float64, error) {
	minCal, maxCal := 0.0, math.Inf(1)
	var err error
	if q.Has("min_calories") {
		if minCal, err = strconv.ParseFloat(q.Get("min_calories"), 64); err != nil {
			return 0, 0, err
		}
	}
	if q.Has("max_calories") {
		if maxCal, err = strconv.ParseFloat(q.Get("max_calories"), 64); err != nil {
			return 0, 0, err
		}
	}
	return minCal, maxCal, nil
}

func (s *Server) ListFoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	var (
		foods []*entity.Food
		err   error
	)
	if q.Has("min_calories") || q.Has("max_calories") {
		var minCal, maxCal float64
		if minCal, maxCal, err = calorieBounds(q); err != nil {
			logger.Error("list foods error: invalid calorie range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "min_calories and max_calories must be numbers", err)
			return
		}
		foods, err = s.foodService.ListByCalorieRange(ctx, minCal, maxCal)
	} else {
		foods, err = s.foodService.Search(ctx, q.Get("name"))
	}
	if err != nil {
		writeServiceError(w, logger, "list foods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, foods)
}

func (s *Server) GetFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get food error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid food id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	food, err := s.foodService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, food)
}

func (s *Server) UpdateFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("update food error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid food id in path value", nil)
		return
	}
	var req FoodRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update food error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	food, err := s.foodService.Update(ctx, id, req.toService())
	if err != nil {
		writeServiceError(w, logger, "update food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, food)
	logger.Info("food updated")
}

func (s *Server) DeleteFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("delete food error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid food id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.foodService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete food", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("food deleted")
}

func (req *MealRequest) toService() (*service.MealRequest, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &service.MealRequest{
		Type: entity.MealType(req.Type),
		Date: date,
	}, nil
}

func (s *Server) CreateMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MealRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("create meal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("create meal error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meal, err := s.mealService.Create(ctx, uid, svcReq)
	if err != nil {
		writeServiceError(w, logger, "create meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, meal)
	logger.Info("meal created")
}

func (s *Server) ListMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list meals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := parseOptionalDate(r.URL.Query().Get("date"))
	if err != nil {
		logger.Error("list meals error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meals, err := s.mealService.List(ctx, uid, service.MealFilter{
		Date: date,
		Type: entity.MealType(r.URL.Query().Get("type")),
	})
	if err != nil {
		writeServiceError(w, logger, "list meals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meals)
}

func (s *Server) GetMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get meal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meal, err := s.mealService.Get(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meal)
}

func (s *Server) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("update meal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	var req MealRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update meal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("update meal error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meal, err := s.mealService.Update(ctx, uid, id, svcReq)
	if err != nil {
		writeServiceError(w, logger, "update meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meal)
	logger.Info("meal updated")
}

func (s *Server) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("delete meal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.mealService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete meal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("meal deleted")
}

// MealCalories answers 404 for a meal without foods.
func (s *Server) MealCalories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("meal calories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("meal calories error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	total, err := s.mealService.Calories(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "meal calories", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MealCaloriesResponse{
		MealID:   id.String(),
		Calories: total,
	})
}

func (s *Server) ListMealFoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list meal foods error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("list meal foods error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	foods, err := s.mealService.ListFoods(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "list meal foods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, foods)
}

func (s *Server) AddMealFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add meal food error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("add meal food error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	var req MealFoodRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("add meal food error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	mf, err := s.mealService.AddFood(ctx, uid, id, &service.MealFoodRequest{
		FoodID:   req.FoodID,
		Servings: req.Servings,
	})
	if err != nil {
		writeServiceError(w, logger, "add meal food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, mf)
	logger.Info("food added to meal")
}

func (s *Server) UpdateMealFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update meal food error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("update meal food error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal food id in path value", nil)
		return
	}
	var req ServingsRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update meal food error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	mf, err := s.mealService.UpdateServings(ctx, uid, id, req.Servings)
	if err != nil {
		writeServiceError(w, logger, "update meal food", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, mf)
	logger.Info("meal food servings updated")
}

func (s *Server) RemoveMealFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("remove meal food error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("remove meal food error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal food id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.mealService.RemoveFood(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "remove meal food", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("food removed from meal")
}
