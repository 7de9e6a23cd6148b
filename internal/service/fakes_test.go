package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

// In-memory repositories. Setting err makes every call fail with it.

var errDB = errors.New("db error")

type usersRepoFake struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
	err   error
}

func newUsersRepoFake(users ...entity.User) *usersRepoFake {
	f := &usersRepoFake{users: make(map[uuid.UUID]entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *usersRepoFake) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
	}
	u := *user
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *usersRepoFake) find(match func(u entity.User) bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (f *usersRepoFake) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return f.find(func(u entity.User) bool { return u.ID == uid })
}

func (f *usersRepoFake) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.find(func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *usersRepoFake) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.find(func(u entity.User) bool { return u.Username == username })
}

func (f *usersRepoFake) update(uid uuid.UUID, change func(u *entity.User)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	change(&u)
	f.users[uid] = u
	return nil
}

func (f *usersRepoFake) UpdateProfile(ctx context.Context, user *entity.User) error {
	return f.update(user.ID, func(u *entity.User) {
		u.FirstName, u.LastName, u.DateOfBirth = user.FirstName, user.LastName, user.DateOfBirth
		u.InitialWeight, u.Weight, u.GoalWeight, u.Height = user.InitialWeight, user.Weight, user.GoalWeight, user.Height
		u.MeasurementSystem = user.MeasurementSystem
	})
}

func (f *usersRepoFake) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	return f.update(uid, func(u *entity.User) {
		u.PasswordHash = passwordHash
		u.FailedLoginAttempts = 0
		u.LockedUntil = nil
	})
}

func (f *usersRepoFake) UpdateLoginState(ctx context.Context, uid uuid.UUID, attempts int, lockedUntil *time.Time) error {
	return f.update(uid, func(u *entity.User) {
		u.FailedLoginAttempts = attempts
		u.LockedUntil = lockedUntil
	})
}

func (f *usersRepoFake) MarkEmailVerified(ctx context.Context, uid uuid.UUID) error {
	return f.update(uid, func(u *entity.User) { u.EmailVerified = true })
}

func (f *usersRepoFake) UpdateWeight(ctx context.Context, uid uuid.UUID, weight float64) error {
	return f.update(uid, func(u *entity.User) { u.Weight = &weight })
}

func (f *usersRepoFake) Delete(ctx context.Context, uid uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(f.users, uid)
	return nil
}

func (f *usersRepoFake) get(uid uuid.UUID) entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[uid]
}

type exercisesRepoFake struct {
	exercises map[uuid.UUID]entity.Exercise
	err       error
}

func newExercisesRepoFake(exercises ...entity.Exercise) *exercisesRepoFake {
	f := &exercisesRepoFake{exercises: make(map[uuid.UUID]entity.Exercise)}
	for _, e := range exercises {
		f.exercises[e.ID] = e
	}
	return f
}

func (f *exercisesRepoFake) Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	for _, e := range f.exercises {
		if e.Name == exercise.Name {
			return uuid.UUID{}, errorvalues.ErrExerciseExists
		}
	}
	e := *exercise
	e.ID = uuid.New()
	f.exercises[e.ID] = e
	return e.ID, nil
}

func (f *exercisesRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.exercises[id]
	if !ok {
		return nil, errorvalues.ErrExerciseNotFound
	}
	return &e, nil
}

func (f *exercisesRepoFake) GetByName(ctx context.Context, name string) (*entity.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.exercises {
		if e.Name == name {
			return &e, nil
		}
	}
	return nil, errorvalues.ErrExerciseNotFound
}

func (f *exercisesRepoFake) List(ctx context.Context, exerciseType entity.ExerciseType) ([]*entity.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.Exercise, 0)
	for _, e := range f.exercises {
		if exerciseType == "" || e.Type == exerciseType {
			result = append(result, &e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *exercisesRepoFake) Update(ctx context.Context, exercise *entity.Exercise) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.exercises[exercise.ID]; !ok {
		return errorvalues.ErrExerciseNotFound
	}
	f.exercises[exercise.ID] = *exercise
	return nil
}

func (f *exercisesRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.exercises[id]; !ok {
		return errorvalues.ErrExerciseNotFound
	}
	delete(f.exercises, id)
	return nil
}

type userExercisesRepoFake struct {
	entries   map[uuid.UUID]entity.UserExercise
	exercises *exercisesRepoFake
	err       error
	lastQuery repository.UserExerciseFilter
}

func newUserExercisesRepoFake(exercises *exercisesRepoFake) *userExercisesRepoFake {
	return &userExercisesRepoFake{entries: make(map[uuid.UUID]entity.UserExercise), exercises: exercises}
}

func (f *userExercisesRepoFake) Create(ctx context.Context, ue *entity.UserExercise) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	if _, ok := f.exercises.exercises[ue.ExerciseID]; !ok {
		return uuid.UUID{}, errorvalues.ErrExerciseNotFound
	}
	e := *ue
	e.ID = uuid.New()
	f.entries[e.ID] = e
	return e.ID, nil
}

func (f *userExercisesRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserExercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[id]
	if !ok {
		return nil, errorvalues.ErrUserExerciseNotFound
	}
	e.ExerciseName = f.exercises.exercises[e.ExerciseID].Name
	return &e, nil
}

func (f *userExercisesRepoFake) ListByUser(ctx context.Context, uid uuid.UUID, filter repository.UserExerciseFilter) ([]*entity.UserExercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = filter
	result := make([]*entity.UserExercise, 0)
	for _, e := range f.entries {
		if e.UserID == uid {
			result = append(result, &e)
		}
	}
	return result, nil
}

func (f *userExercisesRepoFake) Update(ctx context.Context, ue *entity.UserExercise) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.entries[ue.ID]; !ok {
		return errorvalues.ErrUserExerciseNotFound
	}
	f.entries[ue.ID] = *ue
	return nil
}

func (f *userExercisesRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.entries[id]; !ok {
		return errorvalues.ErrUserExerciseNotFound
	}
	delete(f.entries, id)
	return nil
}

type weighInsRepoFake struct {
	items map[uuid.UUID]entity.WeighIn
	err   error
}

func newWeighInsRepoFake() *weighInsRepoFake {
	return &weighInsRepoFake{items: make(map[uuid.UUID]entity.WeighIn)}
}

func (f *weighInsRepoFake) Create(ctx context.Context, w *entity.WeighIn) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	item := *w
	item.ID = uuid.New()
	f.items[item.ID] = item
	return item.ID, nil
}

func (f *weighInsRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.WeighIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	w, ok := f.items[id]
	if !ok {
		return nil, errorvalues.ErrWeighInNotFound
	}
	return &w, nil
}

func (f *weighInsRepoFake) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.WeighIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.WeighIn, 0)
	for _, w := range f.items {
		if w.UserID == uid {
			result = append(result, &w)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (f *weighInsRepoFake) Latest(ctx context.Context, uid uuid.UUID) (*entity.WeighIn, error) {
	list, err := f.ListByUser(ctx, uid)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (f *weighInsRepoFake) Update(ctx context.Context, w *entity.WeighIn) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[w.ID]; !ok {
		return errorvalues.ErrWeighInNotFound
	}
	f.items[w.ID] = *w
	return nil
}

func (f *weighInsRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return errorvalues.ErrWeighInNotFound
	}
	delete(f.items, id)
	return nil
}

type foodsRepoFake struct {
	foods map[uuid.UUID]entity.Food
	err   error
}

func newFoodsRepoFake(foods ...entity.Food) *foodsRepoFake {
	f := &foodsRepoFake{foods: make(map[uuid.UUID]entity.Food)}
	for _, food := range foods {
		f.foods[food.ID] = food
	}
	return f
}

func (f *foodsRepoFake) Create(ctx context.Context, food *entity.Food) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	item := *food
	item.ID = uuid.New()
	f.foods[item.ID] = item
	return item.ID, nil
}

func (f *foodsRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	food, ok := f.foods[id]
	if !ok {
		return nil, errorvalues.ErrFoodNotFound
	}
	return &food, nil
}

func (f *foodsRepoFake) filter(match func(entity.Food) bool) ([]*entity.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.Food, 0)
	for _, food := range f.foods {
		if match(food) {
			result = append(result, &food)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *foodsRepoFake) List(ctx context.Context) ([]*entity.Food, error) {
	return f.filter(func(entity.Food) bool { return true })
}

func (f *foodsRepoFake) SearchByName(ctx context.Context, name string) ([]*entity.Food, error) {
	return f.filter(func(food entity.Food) bool {
		return strings.Contains(strings.ToLower(food.Name), strings.ToLower(name))
	})
}

func (f *foodsRepoFake) ListByCalorieRange(ctx context.Context, min, max float64) ([]*entity.Food, error) {
	return f.filter(func(food entity.Food) bool { return food.Calories >= min && food.Calories <= max })
}

func (f *foodsRepoFake) Update(ctx context.Context, food *entity.Food) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.foods[food.ID]; !ok {
		return errorvalues.ErrFoodNotFound
	}
	f.foods[food.ID] = *food
	return nil
}

func (f *foodsRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.foods[id]; !ok {
		return errorvalues.ErrFoodNotFound
	}
	delete(f.foods, id)
	return nil
}

type mealsRepoFake struct {
	meals     map[uuid.UUID]entity.Meal
	mealFoods map[uuid.UUID]entity.MealFood
	foods     *foodsRepoFake
	err       error
}

func newMealsRepoFake(foods *foodsRepoFake) *mealsRepoFake {
	return &mealsRepoFake{
		meals:     make(map[uuid.UUID]entity.Meal),
		mealFoods: make(map[uuid.UUID]entity.MealFood),
		foods:     foods,
	}
}

func (f *mealsRepoFake) Create(ctx context.Context, meal *entity.Meal) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	m := *meal
	m.ID = uuid.New()
	f.meals[m.ID] = m
	return m.ID, nil
}

func (f *mealsRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.meals[id]
	if !ok {
		return nil, errorvalues.ErrMealNotFound
	}
	return &m, nil
}

func (f *mealsRepoFake) ListByUser(ctx context.Context, uid uuid.UUID, filter repository.MealFilter) ([]*entity.Meal, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.Meal, 0)
	for _, m := range f.meals {
		if m.UserID != uid {
			continue
		}
		if filter.Date != nil && !entity.SameDate(m.Date, *filter.Date) {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		result = append(result, &m)
	}
	return result, nil
}

func (f *mealsRepoFake) Update(ctx context.Context, meal *entity.Meal) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.meals[meal.ID]; !ok {
		return errorvalues.ErrMealNotFound
	}
	f.meals[meal.ID] = *meal
	return nil
}

func (f *mealsRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.meals[id]; !ok {
		return errorvalues.ErrMealNotFound
	}
	delete(f.meals, id)
	return nil
}

func (f *mealsRepoFake) AddFood(ctx context.Context, mf *entity.MealFood) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	if _, ok := f.foods.foods[mf.FoodID]; !ok {
		return uuid.UUID{}, errorvalues.ErrFoodNotFound
	}
	item := *mf
	item.ID = uuid.New()
	f.mealFoods[item.ID] = item
	return item.ID, nil
}

func (f *mealsRepoFake) joined(mf entity.MealFood) *entity.MealFood {
	food := f.foods.foods[mf.FoodID]
	mf.FoodName = food.Name
	mf.FoodCalories = food.Calories
	return &mf
}

func (f *mealsRepoFake) GetMealFood(ctx context.Context, id uuid.UUID) (*entity.MealFood, error) {
	if f.err != nil {
		return nil, f.err
	}
	mf, ok := f.mealFoods[id]
	if !ok {
		return nil, errorvalues.ErrMealFoodNotFound
	}
	return f.joined(mf), nil
}

func (f *mealsRepoFake) UpdateServings(ctx context.Context, id uuid.UUID, servings float64) error {
	if f.err != nil {
		return f.err
	}
	mf, ok := f.mealFoods[id]
	if !ok {
		return errorvalues.ErrMealFoodNotFound
	}
	mf.Servings = servings
	f.mealFoods[id] = mf
	return nil
}

func (f *mealsRepoFake) RemoveFood(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.mealFoods[id]; !ok {
		return errorvalues.ErrMealFoodNotFound
	}
	delete(f.mealFoods, id)
	return nil
}

func (f *mealsRepoFake) ListFoods(ctx context.Context, mealID uuid.UUID) ([]*entity.MealFood, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.MealFood, 0)
	for _, mf := range f.mealFoods {
		if mf.MealID == mealID {
			result = append(result, f.joined(mf))
		}
	}
	return result, nil
}

type remindersRepoFake struct {
	reminders map[uuid.UUID]entity.Reminder
	err       error
	// claimErr fails ClaimStamp only
	claimErr error
}

func newRemindersRepoFake() *remindersRepoFake {
	return &remindersRepoFake{reminders: make(map[uuid.UUID]entity.Reminder)}
}

func (f *remindersRepoFake) Create(ctx context.Context, r *entity.Reminder) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	item := *r
	item.ID = uuid.New()
	f.reminders[item.ID] = item
	return item.ID, nil
}

func (f *remindersRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.reminders[id]
	if !ok {
		return nil, errorvalues.ErrReminderNotFound
	}
	return &r, nil
}

func (f *remindersRepoFake) ListByUser(ctx context.Context, uid uuid.UUID, filter repository.ReminderFilter) ([]*entity.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.Reminder, 0)
	for _, r := range f.reminders {
		if r.UserID != uid || (filter.EnabledOnly && !r.Enabled) || (filter.Type != "" && r.Type != filter.Type) {
			continue
		}
		result = append(result, &r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NotifyTime.Before(result[j].NotifyTime) })
	return result, nil
}

func (f *remindersRepoFake) ListEnabledWithRecipients(ctx context.Context) ([]*entity.Reminder, error) {
	return nil, errors.New("not used")
}

func (f *remindersRepoFake) Update(ctx context.Context, r *entity.Reminder) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.reminders[r.ID]
	if !ok {
		return errorvalues.ErrReminderNotFound
	}
	item := *r
	item.LastNotified, item.LastNotifiedPeriod = stored.LastNotified, stored.LastNotifiedPeriod
	f.reminders[r.ID] = item
	return nil
}

func (f *remindersRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.reminders[id]; !ok {
		return errorvalues.ErrReminderNotFound
	}
	delete(f.reminders, id)
	return nil
}

func sameStamp(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func (f *remindersRepoFake) ClaimStamp(ctx context.Context, id uuid.UUID, prevLast *time.Time, last time.Time, period string) error {
	if f.claimErr != nil {
		return f.claimErr
	}
	r, ok := f.reminders[id]
	if !ok || !sameStamp(r.LastNotified, prevLast) {
		return errorvalues.ErrReminderClaimed
	}
	r.LastNotified, r.LastNotifiedPeriod = &last, period
	f.reminders[id] = r
	return nil
}

func (f *remindersRepoFake) ReleaseStamp(ctx context.Context, id uuid.UUID, claimedLast time.Time, prevLast *time.Time, prevPeriod string) error {
	r, ok := f.reminders[id]
	if !ok || !sameStamp(r.LastNotified, &claimedLast) {
		return errorvalues.ErrReminderClaimed
	}
	r.LastNotified, r.LastNotifiedPeriod = prevLast, prevPeriod
	f.reminders[id] = r
	return nil
}
