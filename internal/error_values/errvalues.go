package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrAccountLocked    = errors.New("account is temporarily locked")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource belongs to another user")
	ErrOwnerNotFound    = errors.New("owner doesn't exist")
	ErrValidation       = errors.New("validation error")

	ErrVerificationExpired = errors.New("verification expired or invalid")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrEmailVerified       = errors.New("e-mail is already verified")

	ErrExerciseExists       = errors.New("exercise with such name already exists")
	ErrExerciseNotFound     = errors.New("exercise doesn't exist")
	ErrUserExerciseNotFound = errors.New("exercise log entry doesn't exist")

	ErrReminderNotFound = errors.New("reminder doesn't exist")
	ErrReminderClaimed  = errors.New("reminder already stamped for this period")

	ErrWeighInNotFound = errors.New("weigh-in doesn't exist")

	ErrFoodNotFound     = errors.New("food doesn't exist")
	ErrMealNotFound     = errors.New("meal doesn't exist")
	ErrMealFoodNotFound = errors.New("meal food doesn't exist")
	ErrMealHasNoFoods   = errors.New("meal has no foods")
)
