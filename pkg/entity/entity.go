package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID         `json:"id"`
	Username            string            `json:"username"`
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	Email               string            `json:"email"`
	PasswordHash        string            `json:"-"`
	DateOfBirth         *time.Time        `json:"date_of_birth,omitempty"`
	InitialWeight       *float64          `json:"initial_weight,omitempty"`
	Weight              *float64          `json:"weight,omitempty"`
	GoalWeight          *float64          `json:"goal_weight,omitempty"`
	Height              *float64          `json:"height,omitempty"`
	MeasurementSystem   MeasurementSystem `json:"measurement_system"`
	EmailVerified       bool              `json:"email_verified"`
	FailedLoginAttempts int               `json:"-"`
	LockedUntil         *time.Time        `json:"-"`
	CreatedAt           time.Time         `json:"created_at"`
}

// IsLocked reports whether login attempts are refused at moment now.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

type Exercise struct {
	ID   uuid.UUID    `json:"id"`
	Name string       `json:"name"`
	Type ExerciseType `json:"type"`
}

// UserExercise is a logged occurrence of an exercise. CaloriesBurned is derived
// and recomputed whenever the inputs of the estimate change.
type UserExercise struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"uid"`
	ExerciseID      uuid.UUID         `json:"exercise_id"`
	ExerciseName    string            `json:"exercise_name"`
	Date            time.Time         `json:"date"`
	DurationMinutes *float64          `json:"duration_minutes,omitempty"`
	Reps            *int              `json:"reps,omitempty"`
	Sets            *int              `json:"sets,omitempty"`
	Intensity       ExerciseIntensity `json:"intensity,omitempty"`
	CaloriesBurned  float64           `json:"calories_burned"`
	Complete        bool              `json:"complete"`
}

type WeighIn struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"uid"`
	Date   time.Time `json:"date"`
	Height *float64  `json:"height,omitempty"`
	Weight *float64  `json:"weight,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

type Food struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Calories float64         `json:"calories"`
	Amount   *float64        `json:"amount,omitempty"`
	Unit     MeasurementUnit `json:"unit,omitempty"`
	Servings *float64        `json:"servings,omitempty"`
}

type Meal struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"uid"`
	Type   MealType  `json:"type"`
	Date   time.Time `json:"date"`
}

type MealFood struct {
	ID       uuid.UUID `json:"id"`
	MealID   uuid.UUID `json:"meal_id"`
	FoodID   uuid.UUID `json:"food_id"`
	Servings float64   `json:"servings"`
	// Filled on reads joined with foods
	FoodName     string  `json:"food_name,omitempty"`
	FoodCalories float64 `json:"food_calories,omitempty"`
}

// Calories is the energy of the food portion in the meal.
func (mf *MealFood) Calories() float64 {
	return mf.FoodCalories * mf.Servings
}

type Reminder struct {
	ID                 uuid.UUID         `json:"id"`
	UserID             uuid.UUID         `json:"uid"`
	Type               ReminderType      `json:"type"`
	Enabled            bool              `json:"enabled"`
	Frequency          ReminderFrequency `json:"frequency,omitempty"`
	NotifyTime         TimeOfDay         `json:"notify_time"`
	NotifyDate         *time.Time        `json:"notify_date,omitempty"`
	LastNotified       *time.Time        `json:"last_notified,omitempty"`
	LastNotifiedPeriod string            `json:"last_notified_period,omitempty"`
	Title              string            `json:"title"`
	Message            string            `json:"message"`
	CreatedAt          time.Time         `json:"created_at"`
	// Recipient address, only filled when listing reminders for delivery
	UserEmail string `json:"-"`
}

// IsOneTime reports whether the reminder has no recurrence.
func (r *Reminder) IsOneTime() bool {
	return r.Frequency == "" || r.Frequency == FrequencyOnce
}

// ApplyDefaultMessage keeps the message non-empty by falling back to the
// default text of the reminder type.
func (r *Reminder) ApplyDefaultMessage() {
	if isBlank(r.Message) {
		r.Message = r.Type.DefaultMessage()
	}
}

// SetMessage stores msg, or the type default when msg is blank.
func (r *Reminder) SetMessage(msg string) {
	r.Message = msg
	r.ApplyDefaultMessage()
}

// ChangeType switches the reminder type. A message that was the default of
// any type follows the new type; a custom message is kept.
func (r *Reminder) ChangeType(t ReminderType) {
	wasDefault := IsDefaultReminderMessage(r.Message)
	r.Type = t
	if wasDefault {
		r.Message = t.DefaultMessage()
	}
	r.ApplyDefaultMessage()
}

type ReminderStatus struct {
	ID                 uuid.UUID  `json:"id"`
	Enabled            bool       `json:"enabled"`
	LastNotified       *time.Time `json:"last_notified,omitempty"`
	LastNotifiedPeriod string     `json:"last_notified_period,omitempty"`
	DueNow             bool       `json:"due_now"`
}
