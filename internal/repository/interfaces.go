package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up user by e-mail (case insensitive). Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Updates profile fields (names, birth date, body measurements, measurement system)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	// Stores failed login counter and lock deadline. Zero attempts and nil lockedUntil reset lockout
	UpdateLoginState(ctx context.Context, uid uuid.UUID, attempts int, lockedUntil *time.Time) error
	UpdateWeight(ctx context.Context, uid uuid.UUID, weight float64) error
	MarkEmailVerified(ctx context.Context, uid uuid.UUID) error
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ExercisesRepositoryI interface {
	Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	GetByName(ctx context.Context, name string) (*entity.Exercise, error)
	// Lists catalog; empty type lists every exercise
	List(ctx context.Context, exerciseType entity.ExerciseType) ([]*entity.Exercise, error)
	Update(ctx context.Context, exercise *entity.Exercise) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserExerciseFilter narrows a user's exercise log. Nil fields are not applied.
type UserExerciseFilter struct {
	Date       *time.Time
	ExerciseID *uuid.UUID
	Complete   *bool
	From       *time.Time
	To         *time.Time
}

type UserExercisesRepositoryI interface {
	Create(ctx context.Context, ue *entity.UserExercise) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UserExercise, error)
	ListByUser(ctx context.Context, uid uuid.UUID, filter UserExerciseFilter) ([]*entity.UserExercise, error)
	Update(ctx context.Context, ue *entity.UserExercise) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WeighInsRepositoryI interface {
	Create(ctx context.Context, w *entity.WeighIn) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WeighIn, error)
	// Newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.WeighIn, error)
	// Most recent weigh-in by date, nil when the user has none
	Latest(ctx context.Context, uid uuid.UUID) (*entity.WeighIn, error)
	Update(ctx context.Context, w *entity.WeighIn) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FoodsRepositoryI interface {
	Create(ctx context.Context, food *entity.Food) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	List(ctx context.Context) ([]*entity.Food, error)
	// Case insensitive substring search
	SearchByName(ctx context.Context, name string) ([]*entity.Food, error)
	ListByCalorieRange(ctx context.Context, min, max float64) ([]*entity.Food, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MealFilter narrows a user's meals. Zero values are not applied.
type MealFilter struct {
	Date *time.Time
	Type entity.MealType
}

type MealsRepositoryI interface {
	Create(ctx context.Context, meal *entity.Meal) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	ListByUser(ctx context.Context, uid uuid.UUID, filter MealFilter) ([]*entity.Meal, error)
	Update(ctx context.Context, meal *entity.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddFood(ctx context.Context, mf *entity.MealFood) (uuid.UUID, error)
	GetMealFood(ctx context.Context, id uuid.UUID) (*entity.MealFood, error)
	UpdateServings(ctx context.Context, id uuid.UUID, servings float64) error
	RemoveFood(ctx context.Context, id uuid.UUID) error
	// Meal contents joined with food name and calories
	ListFoods(ctx context.Context, mealID uuid.UUID) ([]*entity.MealFood, error)
}

// ReminderFilter narrows a user's reminders. Zero values are not applied.
type ReminderFilter struct {
	EnabledOnly bool
	Type        entity.ReminderType
}

type RemindersRepositoryI interface {
	Create(ctx context.Context, r *entity.Reminder) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error)
	ListByUser(ctx context.Context, uid uuid.UUID, filter ReminderFilter) ([]*entity.Reminder, error)
	Update(ctx context.Context, r *entity.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReminderStampStore
}

// ReminderStampStore is the part of the reminders storage the delivery job needs.
type ReminderStampStore interface {
	// Enabled reminders with the owner's e-mail filled in UserEmail
	ListEnabledWithRecipients(ctx context.Context) ([]*entity.Reminder, error)
	// Stamps the reminder only if its last notification still equals prevLast.
	// Returns ErrReminderClaimed when another writer got there first
	ClaimStamp(ctx context.Context, id uuid.UUID, prevLast *time.Time, last time.Time, period string) error
	// Undoes a ClaimStamp made with claimedLast, restoring the previous stamp
	ReleaseStamp(ctx context.Context, id uuid.UUID, claimedLast time.Time, prevLast *time.Time, prevPeriod string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
