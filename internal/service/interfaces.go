package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

type RegisterRequest struct {
	Username          string                   `validate:"required,alphanum_underscore,min=3,max=50"`
	FirstName         string                   `validate:"max=100"`
	LastName          string                   `validate:"max=100"`
	Email             string                   `validate:"required,email,max=254"`
	Password          string                   `validate:"required,min=8,max=72"`
	DateOfBirth       *time.Time               `validate:"omitempty"`
	Weight            *float64                 `validate:"omitempty,gt=0,lt=1500"`
	GoalWeight        *float64                 `validate:"omitempty,gt=0,lt=1500"`
	Height            *float64                 `validate:"omitempty,gt=0,lt=300"`
	MeasurementSystem entity.MeasurementSystem `validate:"omitempty,oneof=METRIC IMPERIAL"`
}

type UpdateProfileRequest struct {
	FirstName         string                   `validate:"max=100"`
	LastName          string                   `validate:"max=100"`
	DateOfBirth       *time.Time               `validate:"omitempty"`
	Weight            *float64                 `validate:"omitempty,gt=0,lt=1500"`
	GoalWeight        *float64                 `validate:"omitempty,gt=0,lt=1500"`
	Height            *float64                 `validate:"omitempty,gt=0,lt=300"`
	MeasurementSystem entity.MeasurementSystem `validate:"omitempty,oneof=METRIC IMPERIAL"`
}

type UserServiceI interface {
	// Validates user's data, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Keeps registration pending and mails a verification code
	PreRegister(ctx context.Context, req *RegisterRequest) error
	VerifyCode(ctx context.Context, email, code string) error
	// Creates the user of a verified pending registration
	CompleteRegistration(ctx context.Context, email string) (*entity.User, error)
	// Compares given credentials, counting failures towards a temporary lock
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	// Mails a code that confirms the e-mail of an already registered user
	SendEmailVerification(ctx context.Context, id uuid.UUID) error
	VerifyEmail(ctx context.Context, id uuid.UUID, code string) error
}

type ExerciseRequest struct {
	Name string              `validate:"required,min=1,max=100"`
	Type entity.ExerciseType `validate:"required,oneof=AEROBIC ANAEROBIC FLEXIBILITY BALANCE MIXED"`
}

type ExerciseServiceI interface {
	Create(ctx context.Context, req *ExerciseRequest) (*entity.Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	GetByName(ctx context.Context, name string) (*entity.Exercise, error)
	// Empty type lists the whole catalog
	List(ctx context.Context, exerciseType entity.ExerciseType) ([]*entity.Exercise, error)
	Update(ctx context.Context, id uuid.UUID, req *ExerciseRequest) (*entity.Exercise, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkoutRequest logs or edits an exercise occurrence. On update nil fields
// keep their stored values.
type WorkoutRequest struct {
	ExerciseID      *uuid.UUID               `validate:"omitempty"`
	Date            *time.Time               `validate:"omitempty"`
	DurationMinutes *float64                 `validate:"omitempty,gte=0,lte=1440"`
	Reps            *int                     `validate:"omitempty,gte=0,lte=10000"`
	Sets            *int                     `validate:"omitempty,gte=0,lte=1000"`
	Intensity       entity.ExerciseIntensity `validate:"omitempty,oneof=LIGHT MODERATE VIGOROUS"`
	Complete        *bool                    `validate:"omitempty"`
}

type WorkoutFilter struct {
	Date       *time.Time
	ExerciseID *uuid.UUID
	Complete   *bool
	From       *time.Time
	To         *time.Time
}

type WorkoutServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *WorkoutRequest) (*entity.UserExercise, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.UserExercise, error)
	List(ctx context.Context, uid uuid.UUID, filter WorkoutFilter) ([]*entity.UserExercise, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *WorkoutRequest) (*entity.UserExercise, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type WeighInRequest struct {
	Date   *time.Time `validate:"omitempty"`
	Height *float64   `validate:"omitempty,gt=0,lt=300"`
	Weight *float64   `validate:"omitempty,gt=0,lt=1500"`
	Notes  string     `validate:"max=500"`
}

type WeighInServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *WeighInRequest) (*entity.WeighIn, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.WeighIn, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.WeighIn, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *WeighInRequest) (*entity.WeighIn, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type FoodRequest struct {
	Name     string                 `validate:"required,min=1,max=100"`
	Calories float64                `validate:"gte=0"`
	Amount   *float64               `validate:"omitempty,gt=0"`
	Unit     entity.MeasurementUnit `validate:"omitempty,oneof=OUNCE_WEIGHT POUND GRAM KILOGRAM OUNCE_VOL TEASPOON TABLESPOON CUP MILLILITER LITER"`
	Servings *float64               `validate:"omitempty,gt=0"`
}

type FoodServiceI interface {
	Create(ctx context.Context, req *FoodRequest) (*entity.Food, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	// Blank name lists every food
	Search(ctx context.Context, name string) ([]*entity.Food, error)
	ListByCalorieRange(ctx context.Context, min, max float64) ([]*entity.Food, error)
	Update(ctx context.Context, id uuid.UUID, req *FoodRequest) (*entity.Food, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MealRequest struct {
	Type entity.MealType `validate:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
	Date *time.Time      `validate:"omitempty"`
}

type MealFilter struct {
	Date *time.Time
	Type entity.MealType
}

type MealFoodRequest struct {
	FoodID   uuid.UUID `validate:"required"`
	Servings float64   `validate:"gt=0"`
}

type MealServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *MealRequest) (*entity.Meal, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.Meal, error)
	List(ctx context.Context, uid uuid.UUID, filter MealFilter) ([]*entity.Meal, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *MealRequest) (*entity.Meal, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error

	AddFood(ctx context.Context, uid, mealID uuid.UUID, req *MealFoodRequest) (*entity.MealFood, error)
	UpdateServings(ctx context.Context, uid, mealFoodID uuid.UUID, servings float64) (*entity.MealFood, error)
	RemoveFood(ctx context.Context, uid, mealFoodID uuid.UUID) error
	ListFoods(ctx context.Context, uid, mealID uuid.UUID) ([]*entity.MealFood, error)
	// Sum of calories times servings over the meal's foods
	Calories(ctx context.Context, uid, mealID uuid.UUID) (float64, error)
}

// ReminderRequest creates or edits a reminder. On update nil fields keep
// their stored values.
type ReminderRequest struct {
	Type       entity.ReminderType       `validate:"omitempty,oneof=WORKOUT REST_DAY DRINK_WATER WEIGH_IN MEAL_LOG BEDTIME"`
	Enabled    *bool                     `validate:"omitempty"`
	Frequency  *entity.ReminderFrequency `validate:"omitempty,oneof=ONCE DAILY WEEKLY WEEKDAYS WEEKENDS MONTHLY YEARLY"`
	NotifyTime *entity.TimeOfDay         `validate:"omitempty"`
	NotifyDate *time.Time                `validate:"omitempty"`
	Title      *string                   `validate:"omitempty,max=100"`
	Message    *string                   `validate:"omitempty,max=500"`
}

type ReminderFilter struct {
	EnabledOnly bool
	Type        entity.ReminderType
}

type ReminderServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *ReminderRequest) (*entity.Reminder, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.Reminder, error)
	List(ctx context.Context, uid uuid.UUID, filter ReminderFilter) ([]*entity.Reminder, error)
	// Enabled reminders whose notify time is still ahead today
	Upcoming(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *ReminderRequest) (*entity.Reminder, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
	// Stamps the reminder as notified today without sending anything
	MarkNotified(ctx context.Context, uid, id uuid.UUID) (*entity.Reminder, error)
	Status(ctx context.Context, uid, id uuid.UUID) (*entity.ReminderStatus, error)
}
