package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(cfg DBConfig) *MealsRepository {
	return NewMealsRepoWithConn(NewPool(cfg))
}

func NewMealsRepoWithConn(conn PgConnection) *MealsRepository {
	mustPing(conn, "mealsRepo")
	return &MealsRepository{
		conn: conn,
	}
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.Meal) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO meals (user_id, meal_type, meal_date) VALUES ($1, $2, $3) RETURNING id;`,
		meal.UserID, string(meal.Type), meal.Date,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating meal error: " + err.Error())
	}
	return id, nil
}

func (mr *MealsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var m entity.Meal
	err := mr.conn.QueryRow(ctx, `SELECT id, user_id, meal_type, meal_date FROM meals WHERE id = $1;`, id).
		Scan(&m.ID, &m.UserID, &m.Type, &m.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealNotFound
		}
		return nil, errors.New("getting meal error: " + err.Error())
	}
	return &m, nil
}

func (mr *MealsRepository) ListByUser(ctx context.Context, uid uuid.UUID, filter MealFilter) ([]*entity.Meal, error) {
	conds := []string{"user_id = $1"}
	args := []any{uid}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, "meal_date = $"+strconv.Itoa(len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, "meal_type = $"+strconv.Itoa(len(args)))
	}
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, meal_type, meal_date FROM meals WHERE `+strings.Join(conds, " AND ")+` ORDER BY meal_date DESC;`, args...)
	if err != nil {
		return nil, errors.New("listing meals error: " + err.Error())
	}
	defer rows.Close()
	meals := make([]*entity.Meal, 0)
	for rows.Next() {
		m := entity.Meal{}
		if err = rows.Scan(&m.ID, &m.UserID, &m.Type, &m.Date); err != nil {
			return nil, errors.New("meal row parsing error: " + err.Error())
		}
		meals = append(meals, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected meal rows error: " + err.Error())
	}
	return meals, nil
}

func (mr *MealsRepository) Update(ctx context.Context, meal *entity.Meal) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE meals SET meal_type = $1, meal_date = $2 WHERE id = $3;`, string(meal.Type), meal.Date, meal.ID)
	if err != nil {
		return errors.New("updating meal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func (mr *MealsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM meals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting meal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func (mr *MealsRepository) AddFood(ctx context.Context, mf *entity.MealFood) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO meal_foods (meal_id, food_id, servings) VALUES ($1, $2, $3) RETURNING id;`,
		mf.MealID, mf.FoodID, mf.Servings,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrFoodNotFound
		}
		return uuid.UUID{}, errors.New("adding food to meal error: " + err.Error())
	}
	return id, nil
}

const mealFoodSelect = `SELECT mf.id, mf.meal_id, mf.food_id, mf.servings, f.name, f.calories FROM meal_foods mf JOIN foods f ON f.id = mf.food_id`

func scanMealFood(row pgx.Row) (*entity.MealFood, error) {
	var mf entity.MealFood
	if err := row.Scan(&mf.ID, &mf.MealID, &mf.FoodID, &mf.Servings, &mf.FoodName, &mf.FoodCalories); err != nil {
		return nil, err
	}
	return &mf, nil
}

func (mr *MealsRepository) GetMealFood(ctx context.Context, id uuid.UUID) (*entity.MealFood, error) {
	mf, err := scanMealFood(mr.conn.QueryRow(ctx, mealFoodSelect+` WHERE mf.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealFoodNotFound
		}
		return nil, errors.New("getting meal food error: " + err.Error())
	}
	return mf, nil
}

func (mr *MealsRepository) UpdateServings(ctx context.Context, id uuid.UUID, servings float64) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE meal_foods SET servings = $1 WHERE id = $2;`, servings, id)
	if err != nil {
		return errors.New("updating servings error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealFoodNotFound
	}
	return nil
}

func (mr *MealsRepository) RemoveFood(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM meal_foods WHERE id = $1;`, id)
	if err != nil {
		return errors.New("removing meal food error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealFoodNotFound
	}
	return nil
}

func (mr *MealsRepository) ListFoods(ctx context.Context, mealID uuid.UUID) ([]*entity.MealFood, error) {
	rows, err := mr.conn.Query(ctx, mealFoodSelect+` WHERE mf.meal_id = $1 ORDER BY f.name;`, mealID)
	if err != nil {
		return nil, errors.New("listing meal foods error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.MealFood, 0)
	for rows.Next() {
		mf, err := scanMealFood(rows)
		if err != nil {
			return nil, errors.New("meal food row parsing error: " + err.Error())
		}
		result = append(result, mf)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected meal food rows error: " + err.Error())
	}
	return result, nil
}
