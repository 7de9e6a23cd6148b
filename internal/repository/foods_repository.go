package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

const foodColumns = `id, name, calories, amount, unit, servings`

type FoodsRepository struct {
	conn PgConnection
}

func NewFoodsRepo(cfg DBConfig) *FoodsRepository {
	return NewFoodsRepoWithConn(NewPool(cfg))
}

func NewFoodsRepoWithConn(conn PgConnection) *FoodsRepository {
	mustPing(conn, "foodsRepo")
	return &FoodsRepository{
		conn: conn,
	}
}

func scanFood(row pgx.Row) (*entity.Food, error) {
	var f entity.Food
	if err := row.Scan(&f.ID, &f.Name, &f.Calories, &f.Amount, &f.Unit, &f.Servings); err != nil {
		return nil, err
	}
	return &f, nil
}

func (fr *FoodsRepository) Create(ctx context.Context, food *entity.Food) (uuid.UUID, error) {
	var id uuid.UUID
	row := fr.conn.QueryRow(ctx, `INSERT INTO foods (name, calories, amount, unit, servings) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		food.Name, food.Calories, food.Amount, string(food.Unit), food.Servings,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating food error: " + err.Error())
	}
	return id, nil
}

func (fr *FoodsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	f, err := scanFood(fr.conn.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFoodNotFound
		}
		return nil, errors.New("getting food error: " + err.Error())
	}
	return f, nil
}

func (fr *FoodsRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Food, error) {
	rows, err := fr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing foods error: " + err.Error())
	}
	defer rows.Close()
	foods := make([]*entity.Food, 0)
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, errors.New("food row parsing error: " + err.Error())
		}
		foods = append(foods, f)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected food rows error: " + err.Error())
	}
	return foods, nil
}

func (fr *FoodsRepository) List(ctx context.Context) ([]*entity.Food, error) {
	return fr.list(ctx, `SELECT `+foodColumns+` FROM foods ORDER BY name;`)
}

func (fr *FoodsRepository) SearchByName(ctx context.Context, name string) ([]*entity.Food, error) {
	return fr.list(ctx, `SELECT `+foodColumns+` FROM foods WHERE name ILIKE '%' || $1 || '%' ORDER BY name;`, name)
}

func (fr *FoodsRepository) ListByCalorieRange(ctx context.Context, min, max float64) ([]*entity.Food, error) {
	return fr.list(ctx, `SELECT `+foodColumns+` FROM foods WHERE calories BETWEEN $1 AND $2 ORDER BY calories;`, min, max)
}

func (fr *FoodsRepository) Update(ctx context.Context, food *entity.Food) error {
	ct, err := fr.conn.Exec(ctx, `UPDATE foods SET name = $1, calories = $2, amount = $3, unit = $4, servings = $5 WHERE id = $6;`,
		food.Name, food.Calories, food.Amount, string(food.Unit), food.Servings, food.ID,
	)
	if err != nil {
		return errors.New("updating food error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFoodNotFound
	}
	return nil
}

func (fr *FoodsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := fr.conn.Exec(ctx, `DELETE FROM foods WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting food error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFoodNotFound
	}
	return nil
}
