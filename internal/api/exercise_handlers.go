package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/httputil"
)

type ExerciseRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type WorkoutRequest struct {
	ExerciseID      *uuid.UUID `json:"exercise_id,omitempty"`
	Date            string     `json:"date,omitempty"`
	DurationMinutes *float64   `json:"duration_minutes,omitempty"`
	Reps            *int       `json:"reps,omitempty"`
	Sets            *int       `json:"sets,omitempty"`
	Intensity       string     `json:"intensity,omitempty"`
	Complete        *bool      `json:"complete,omitempty"`
}

func (req *ExerciseRequest) toService() *service.ExerciseRequest {
	return &service.ExerciseRequest{
		Name: req.Name,
		Type: entity.ExerciseType(req.Type),
	}
}

func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ExerciseRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("create exercise error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercise, err := s.exerciseService.Create(ctx, req.toService())
	if err != nil {
		writeServiceError(w, logger, "create exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, exercise)
	logger.Info("exercise created")
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercises, err := s.exerciseService.List(ctx, entity.ExerciseType(r.URL.Query().Get("type")))
	if err != nil {
		writeServiceError(w, logger, "list exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercises)
	logger.Info("exercises provided")
}

func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercise, err := s.exerciseService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
}

func (s *Server) GetExerciseByName(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercise, err := s.exerciseService.GetByName(ctx, r.PathValue("name"))
	if err != nil {
		writeServiceError(w, logger, "get exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
}

func (s *Server) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("update exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	var req ExerciseRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update exercise error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercise, err := s.exerciseService.Update(ctx, id, req.toService())
	if err != nil {
		writeServiceError(w, logger, "update exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
	logger.Info("exercise updated")
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("delete exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.exerciseService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete exercise", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("exercise deleted")
}

func (req *WorkoutRequest) toService() (*service.WorkoutRequest, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &service.WorkoutRequest{
		ExerciseID:      req.ExerciseID,
		Date:            date,
		DurationMinutes: req.DurationMinutes,
		Reps:            req.Reps,
		Sets:            req.Sets,
		Intensity:       entity.ExerciseIntensity(req.Intensity),
		Complete:        req.Complete,
	}, nil
}

func (s *Server) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WorkoutRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("create workout error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("create workout error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workout, err := s.workoutService.Create(ctx, uid, svcReq)
	if err != nil {
		writeServiceError(w, logger, "create workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout logged")
}

// workoutFilter reads date, exercise_id, complete, from and to query parameters.
func workoutFilter(r *http.Request) (service.WorkoutFilter, error) {
	q := r.URL.Query()
	var (
		filter service.WorkoutFilter
		err    error
	)
	if filter.Date, err = parseOptionalDate(q.Get("date")); err != nil {
		return filter, err
	}
	if filter.From, err = parseOptionalDate(q.Get("from")); err != nil {
		return filter, err
	}
	if filter.To, err = parseOptionalDate(q.Get("to")); err != nil {
		return filter, err
	}
	if v := q.Get("exercise_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.ExerciseID = &id
	}
	if v := q.Get("complete"); v != "" {
		complete, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.Complete = &complete
	}
	return filter, nil
}

func (s *Server) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	filter, err := workoutFilter(r)
	if err != nil {
		logger.Error("list workouts error: invalid query")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query parameters", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workouts, err := s.workoutService.List(ctx, uid, filter)
	if err != nil {
		writeServiceError(w, logger, "list workouts", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workouts)
	logger.Info("workouts provided")
}

func (s *Server) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workout, err := s.workoutService.Get(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
}

func (s *Server) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("update workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req WorkoutRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update workout error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("update workout error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workout, err := s.workoutService.Update(ctx, uid, id, svcReq)
	if err != nil {
		writeServiceError(w, logger, "update workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout updated")
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("delete workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.workoutService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete workout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("workout deleted")
}
