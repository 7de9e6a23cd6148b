package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/mailer"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/tempstore"
)

const (
	MaxFailedLogins     = 5
	LockoutDuration     = 10 * time.Minute
	DefaultCodeTTL      = 15 * time.Minute
	verificationCodeMax = 1_000_000
)

type pendingRegistration struct {
	user     entity.User
	code     string
	verified bool
}

type UserService struct {
	repo    repository.UsersRepositoryI
	mailer  mailer.Mailer
	pending *tempstore.Store[pendingRegistration]
	resets  *tempstore.Store[string]
	// e-mail confirmation codes of registered users, keyed by uid
	confirmations *tempstore.Store[string]
	now           func() time.Time
	genCode       func() (string, error)
	logger        *slog.Logger
}

type UserServiceOption func(*UserService)

func WithMailer(m mailer.Mailer) UserServiceOption {
	return func(us *UserService) {
		if m != nil {
			us.mailer = m
		}
	}
}

// WithCodeTTL sets how long verification and reset codes stay valid.
func WithCodeTTL(ttl time.Duration) UserServiceOption {
	return func(us *UserService) {
		if ttl > 0 {
			us.pending = tempstore.New[pendingRegistration](ttl, ttl)
			us.resets = tempstore.New[string](ttl, ttl)
			us.confirmations = tempstore.New[string](ttl, ttl)
		}
	}
}

func WithUserClock(now func() time.Time) UserServiceOption {
	return func(us *UserService) {
		if now != nil {
			us.now = now
		}
	}
}

// WithCodeGenerator replaces the random six digit code source.
func WithCodeGenerator(gen func() (string, error)) UserServiceOption {
	return func(us *UserService) {
		if gen != nil {
			us.genCode = gen
		}
	}
}

func NewUserService(usersRepo repository.UsersRepositoryI, opts ...UserServiceOption) *UserService {
	us := &UserService{
		repo:          usersRepo,
		mailer:        mailer.NewLogMailer(slog.Default()),
		pending:       tempstore.New[pendingRegistration](DefaultCodeTTL, DefaultCodeTTL),
		resets:        tempstore.New[string](DefaultCodeTTL, DefaultCodeTTL),
		confirmations: tempstore.New[string](DefaultCodeTTL, DefaultCodeTTL),
		now:           time.Now,
		genCode:       generateCode,
		logger:        slog.Default().With(slog.String("service", "users")),
	}
	for _, opt := range opts {
		opt(us)
	}
	return us
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(verificationCodeMax))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(a)), []byte(strings.TrimSpace(b))) == 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newUser validates req and builds the user to be stored. The starting weight
// is also kept as the initial weight.
func newUser(req *RegisterRequest) (*entity.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	system := req.MeasurementSystem
	if system == "" {
		system = entity.SystemImperial
	}
	return &entity.User{
		Username:          req.Username,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PasswordHash:      passwordHash,
		DateOfBirth:       req.DateOfBirth,
		InitialWeight:     req.Weight,
		Weight:            req.Weight,
		GoalWeight:        req.GoalWeight,
		Height:            req.Height,
		MeasurementSystem: system,
	}, nil
}

func (us *UserService) create(ctx context.Context, user *entity.User) (*entity.User, error) {
	id, err := us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	created, err := us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return created, nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	user, err := newUser(req)
	if err != nil {
		return nil, err
	}
	return us.create(ctx, user)
}

// ensureFree fails with ErrUserExists when the e-mail or username is taken.
func (us *UserService) ensureFree(ctx context.Context, email, username string) error {
	_, err := us.repo.FindByEmail(ctx, email)
	if err == nil {
		return errorvalues.ErrUserExists
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return errors.New("repository searching error: " + err.Error())
	}
	_, err = us.repo.FindByUsername(ctx, username)
	if err == nil {
		return errorvalues.ErrUserExists
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return errors.New("repository searching error: " + err.Error())
	}
	return nil
}

func (us *UserService) PreRegister(ctx context.Context, req *RegisterRequest) error {
	user, err := newUser(req)
	if err != nil {
		return err
	}
	if err = us.ensureFree(ctx, user.Email, user.Username); err != nil {
		return err
	}
	code, err := us.genCode()
	if err != nil {
		return errors.New("generating code error: " + err.Error())
	}
	user.EmailVerified = true
	us.pending.Put(user.Email, pendingRegistration{user: *user, code: code})
	if err = us.mailer.SendVerificationEmail(ctx, user.Email, code); err != nil {
		us.pending.Delete(user.Email)
		return errors.New("sending verification code error: " + err.Error())
	}
	return nil
}

func (us *UserService) VerifyCode(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	p, ok := us.pending.Get(email)
	if !ok {
		return errorvalues.ErrVerificationExpired
	}
	if !codesEqual(p.code, code) {
		return errorvalues.ErrInvalidCode
	}
	p.verified = true
	us.pending.Put(email, p)
	return nil
}

func (us *UserService) CompleteRegistration(ctx context.Context, email string) (*entity.User, error) {
	email = normalizeEmail(email)
	p, ok := us.pending.Get(email)
	if !ok {
		return nil, errorvalues.ErrVerificationExpired
	}
	if !p.verified {
		return nil, errorvalues.ErrInvalidCode
	}
	user, err := us.create(ctx, &p.user)
	if err != nil {
		return nil, err
	}
	us.pending.Delete(email)
	return user, nil
}

// Login checks the password of the account registered with email. Every
// failure is counted; reaching MaxFailedLogins locks the account for
// LockoutDuration. A successful login clears the counter.
func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	now := us.now()
	if user.IsLocked(now) {
		return nil, errorvalues.ErrAccountLocked
	}
	attempts := user.FailedLoginAttempts
	if user.LockedUntil != nil {
		// lock expired, start counting again
		attempts = 0
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		attempts++
		var lockedUntil *time.Time
		if attempts >= MaxFailedLogins {
			until := now.Add(LockoutDuration)
			lockedUntil = &until
		}
		if err = us.repo.UpdateLoginState(ctx, user.ID, attempts, lockedUntil); err != nil {
			return nil, errors.New("repository updating error: " + err.Error())
		}
		if lockedUntil != nil {
			us.logger.Warn("account locked", slog.String("uid", user.ID.String()))
			return nil, errorvalues.ErrAccountLocked
		}
		return nil, errorvalues.ErrWrongCredentials
	}
	if user.FailedLoginAttempts != 0 || user.LockedUntil != nil {
		if err = us.repo.UpdateLoginState(ctx, user.ID, 0, nil); err != nil {
			return nil, errors.New("repository updating error: " + err.Error())
		}
		user.FailedLoginAttempts = 0
		user.LockedUntil = nil
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Weight != nil {
		user.Weight = req.Weight
		if user.InitialWeight == nil {
			user.InitialWeight = req.Weight
		}
	}
	if req.GoalWeight != nil {
		user.GoalWeight = req.GoalWeight
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.MeasurementSystem != "" {
		user.MeasurementSystem = req.MeasurementSystem
	}
	if err = us.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func validatePassword(password string) error {
	return validateStruct(struct {
		Password string `validate:"required,min=8,max=72"`
	}{Password: password})
}

func (us *UserService) setPassword(ctx context.Context, id uuid.UUID, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := Hash(password)
	if err != nil {
		return errors.New("hashing password error: " + err.Error())
	}
	if err = us.repo.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

func (us *UserService) ChangePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	return us.setPassword(ctx, id, newPassword)
}

// ForgotPassword mails a reset code. Unknown addresses are accepted silently.
func (us *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			us.logger.Info("password reset requested for unknown e-mail")
			return nil
		}
		return errors.New("repository searching error: " + err.Error())
	}
	code, err := us.genCode()
	if err != nil {
		return errors.New("generating code error: " + err.Error())
	}
	us.resets.Put(user.Email, code)
	if err = us.mailer.SendPasswordResetEmail(ctx, user.Email, code); err != nil {
		us.resets.Delete(user.Email)
		return errors.New("sending reset code error: " + err.Error())
	}
	return nil
}

func (us *UserService) VerifyResetCode(ctx context.Context, email, code string) error {
	stored, ok := us.resets.Get(normalizeEmail(email))
	if !ok {
		return errorvalues.ErrVerificationExpired
	}
	if !codesEqual(stored, code) {
		return errorvalues.ErrInvalidCode
	}
	return nil
}

// ResetPassword sets a new password for the holder of a valid reset code and
// lifts any login lock.
func (us *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if err := us.VerifyResetCode(ctx, email, code); err != nil {
		return err
	}
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if err = us.setPassword(ctx, user.ID, newPassword); err != nil {
		return err
	}
	us.resets.Delete(email)
	return nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

// SendEmailVerification mails a confirmation code to a user who registered
// without one. A new request replaces the previous code.
func (us *UserService) SendEmailVerification(ctx context.Context, id uuid.UUID) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return errorvalues.ErrEmailVerified
	}
	code, err := us.genCode()
	if err != nil {
		return errors.New("generating code error: " + err.Error())
	}
	us.confirmations.Put(id.String(), code)
	if err = us.mailer.SendVerificationEmail(ctx, user.Email, code); err != nil {
		us.confirmations.Delete(id.String())
		return errors.New("sending verification code error: " + err.Error())
	}
	return nil
}

func (us *UserService) VerifyEmail(ctx context.Context, id uuid.UUID, code string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return errorvalues.ErrEmailVerified
	}
	stored, ok := us.confirmations.Get(id.String())
	if !ok {
		return errorvalues.ErrVerificationExpired
	}
	if !codesEqual(stored, code) {
		return errorvalues.ErrInvalidCode
	}
	if err = us.repo.MarkEmailVerified(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository updating error: " + err.Error())
	}
	us.confirmations.Delete(id.String())
	return nil
}
