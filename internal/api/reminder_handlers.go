package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/httputil"
)

// ReminderRequest fields left out of an update keep their stored values.
// Frequency "ONCE" turns a recurring reminder into a one-time one.
type ReminderRequest struct {
	Type       string            `json:"type,omitempty"`
	Enabled    *bool             `json:"enabled,omitempty"`
	Frequency  *string           `json:"frequency,omitempty"`
	NotifyTime *entity.TimeOfDay `json:"notify_time,omitempty"`
	NotifyDate string            `json:"notify_date,omitempty"`
	Title      *string           `json:"title,omitempty"`
	Message    *string           `json:"message,omitempty"`
}

func (req *ReminderRequest) toService() (*service.ReminderRequest, error) {
	date, err := parseOptionalDate(req.NotifyDate)
	if err != nil {
		return nil, err
	}
	svcReq := &service.ReminderRequest{
		Type:       entity.ReminderType(req.Type),
		Enabled:    req.Enabled,
		NotifyTime: req.NotifyTime,
		NotifyDate: date,
		Title:      req.Title,
		Message:    req.Message,
	}
	if req.Frequency != nil {
		f := entity.ReminderFrequency(*req.Frequency)
		svcReq.Frequency = &f
	}
	return svcReq, nil
}

func (s *Server) CreateReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReminderRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("create reminder error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("create reminder error: invalid notify date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notify date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.reminderService.Create(ctx, uid, svcReq)
	if err != nil {
		writeServiceError(w, logger, "create reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, reminder)
	logger.Info("reminder created")
}

func (s *Server) ListReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	q := r.URL.Query()
	filter := service.ReminderFilter{Type: entity.ReminderType(q.Get("type"))}
	if v := q.Get("enabled"); v != "" {
		if filter.EnabledOnly, err = strconv.ParseBool(v); err != nil {
			logger.Error("list reminders error: invalid enabled parameter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "enabled must be a boolean", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminders, err := s.reminderService.List(ctx, uid, filter)
	if err != nil {
		writeServiceError(w, logger, "list reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminders)
}

func (s *Server) UpcomingReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upcoming reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminders, err := s.reminderService.Upcoming(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "upcoming reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminders)
}

func (s *Server) GetReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get reminder error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.reminderService.Get(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminder)
}

func (s *Server) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("update reminder error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	var req ReminderRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update reminder error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("update reminder error: invalid notify date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notify date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.reminderService.Update(ctx, uid, id, svcReq)
	if err != nil {
		writeServiceError(w, logger, "update reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminder)
	logger.Info("reminder updated")
}

func (s *Server) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("delete reminder error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.reminderService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete reminder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("reminder deleted")
}

// MarkReminderNotified stamps the reminder for today without sending it.
func (s *Server) MarkReminderNotified(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("mark reminder error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.reminderService.MarkNotified(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "mark reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminder)
	logger.Info("reminder marked as notified")
}

func (s *Server) ReminderStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reminder status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("reminder status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	status, err := s.reminderService.Status(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "reminder status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}
