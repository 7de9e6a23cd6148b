package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/httputil"
)

const requestTimeout = time.Second * 10

type RegisterRequest struct {
	Username          string   `json:"username"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	DateOfBirth       string   `json:"date_of_birth,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	GoalWeight        *float64 `json:"goal_weight,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	MeasurementSystem string   `json:"measurement_system,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type ProfileRequest struct {
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	DateOfBirth       string   `json:"date_of_birth,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	GoalWeight        *float64 `json:"goal_weight,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	MeasurementSystem string   `json:"measurement_system,omitempty"`
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

// parseOptionalDate reads an ISO date; a blank string gives nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

func notFound(err error) bool {
	for _, target := range []error{
		errorvalues.ErrUserNotFound,
		errorvalues.ErrWrongOwner,
		errorvalues.ErrExerciseNotFound,
		errorvalues.ErrUserExerciseNotFound,
		errorvalues.ErrWeighInNotFound,
		errorvalues.ErrFoodNotFound,
		errorvalues.ErrMealNotFound,
		errorvalues.ErrMealFoodNotFound,
		errorvalues.ErrMealHasNoFoods,
		errorvalues.ErrReminderNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeServiceError maps service errors of resource handlers to responses.
// Resources of other users are reported as missing.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid data", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request data", err)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: resource has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "resource doesn't exist", nil)
	case notFound(err):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrExerciseExists):
		logger.Error(op + " error: duplicate exercise")
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrReminderClaimed):
		logger.Error(op + " error: reminder already stamped")
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("registering error: invalid date of birth")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date of birth", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, svcReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such email or username already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid data")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid registration data", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (req *RegisterRequest) toService() (*service.RegisterRequest, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &service.RegisterRequest{
		Username:          req.Username,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Password:          req.Password,
		DateOfBirth:       dob,
		Weight:            req.Weight,
		GoalWeight:        req.GoalWeight,
		Height:            req.Height,
		MeasurementSystem: entity.MeasurementSystem(req.MeasurementSystem),
	}, nil
}

func (s *Server) PreRegister(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("pre-registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		logger.Error("pre-registering error: invalid date of birth")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date of birth", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.userService.PreRegister(ctx, svcReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("pre-registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such email or username already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("pre-registering error: invalid data")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid registration data", err)
		default:
			logger.Error("pre-registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusAccepted, map[string]any{
		"message": "verification code sent",
	})
	logger.Info("verification code sent")
}

// writeCodeError handles the errors of verification and reset code checks.
func writeCodeError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidCode):
		logger.Error(op + " error: wrong code")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid code", nil)
	case errors.Is(err, errorvalues.ErrVerificationExpired):
		logger.Error(op + " error: expired code")
		httputil.WriteErrorResponse(w, http.StatusGone, "code expired or was never requested", nil)
	case errors.Is(err, errorvalues.ErrEmailVerified):
		logger.Error(op + " error: e-mail already verified")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "e-mail is already verified", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op + " error: invalid data")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request data", err)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such email or username already exists", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func (s *Server) VerifyCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req VerifyCodeRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("code verification error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.VerifyCode(ctx, req.Email, req.Code); err != nil {
		writeCodeError(w, logger, "code verification", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"verified": true})
	logger.Info("code verified")
}

func (s *Server) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req EmailRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("completing registration error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.CompleteRegistration(ctx, req.Email)
	if err != nil {
		writeCodeError(w, logger, "completing registration", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("completing registration error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such email doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password", nil)
		case errors.Is(err, errorvalues.ErrAccountLocked):
			logger.Error("login error: account locked")
			httputil.WriteErrorResponse(w, http.StatusLocked, "too many failed attempts, try again later", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// ForgotPassword answers the same way for known and unknown addresses.
func (s *Server) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req EmailRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("forgot password error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.ForgotPassword(ctx, req.Email); err != nil {
		logger.Error("forgot password error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending reset code", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusAccepted, map[string]any{
		"message": "if the account exists, a reset code was sent",
	})
	logger.Info("password reset requested")
}

func (s *Server) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req VerifyCodeRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("reset code verification error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.VerifyResetCode(ctx, req.Email, req.Code); err != nil {
		writeCodeError(w, logger, "reset code verification", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"verified": true})
	logger.Info("reset code verified")
}

func (s *Server) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ResetPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("password reset error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.ResetPassword(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		writeCodeError(w, logger, "password reset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("password reset")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile provided")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ProfileRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		logger.Error("update profile error: invalid date of birth")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date of birth", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       dob,
		Weight:            req.Weight,
		GoalWeight:        req.GoalWeight,
		Height:            req.Height,
		MeasurementSystem: entity.MeasurementSystem(req.MeasurementSystem),
	})
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("password change error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChangePasswordRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("password change error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.userService.ChangePassword(ctx, uid, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("password change error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
			return
		}
		writeServiceError(w, logger, "password change", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("password changed")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
			return
		}
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

// SendEmailVerification mails a confirmation code to the signed-in user.
func (s *Server) SendEmailVerification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("e-mail verification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.userService.SendEmailVerification(ctx, uid); err != nil {
		writeCodeError(w, logger, "e-mail verification", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusAccepted, map[string]any{
		"message": "verification code sent",
	})
	logger.Info("e-mail verification code sent")
}

func (s *Server) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("e-mail verification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CodeRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("e-mail verification error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.userService.VerifyEmail(ctx, uid, req.Code); err != nil {
		writeCodeError(w, logger, "e-mail verification", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"verified": true,
	})
	logger.Info("e-mail verified")
}
