package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	return NewExercisesRepoWithConn(NewPool(cfg))
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	mustPing(conn, "exercisesRepo")
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO exercises (name, type) VALUES ($1, $2) RETURNING id;`, exercise.Name, string(exercise.Type))
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return uuid.UUID{}, errorvalues.ErrExerciseExists
		}
		return uuid.UUID{}, errors.New("creating exercise error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) getOne(ctx context.Context, query string, arg any) (*entity.Exercise, error) {
	var e entity.Exercise
	err := er.conn.QueryRow(ctx, query, arg).Scan(&e.ID, &e.Name, &e.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise error: " + err.Error())
	}
	return &e, nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	return er.getOne(ctx, `SELECT id, name, type FROM exercises WHERE id = $1;`, id)
}

func (er *ExercisesRepository) GetByName(ctx context.Context, name string) (*entity.Exercise, error) {
	return er.getOne(ctx, `SELECT id, name, type FROM exercises WHERE LOWER(name) = LOWER($1);`, name)
}

func (er *ExercisesRepository) List(ctx context.Context, exerciseType entity.ExerciseType) ([]*entity.Exercise, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if exerciseType == "" {
		rows, err = er.conn.Query(ctx, `SELECT id, name, type FROM exercises ORDER BY name;`)
	} else {
		rows, err = er.conn.Query(ctx, `SELECT id, name, type FROM exercises WHERE type = $1 ORDER BY name;`, string(exerciseType))
	}
	if err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	defer rows.Close()
	exercises := make([]*entity.Exercise, 0)
	for rows.Next() {
		e := entity.Exercise{}
		if err = rows.Scan(&e.ID, &e.Name, &e.Type); err != nil {
			return nil, errors.New("exercise row parsing error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected exercise rows error: " + err.Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) Update(ctx context.Context, exercise *entity.Exercise) error {
	ct, err := er.conn.Exec(ctx, `UPDATE exercises SET name = $1, type = $2 WHERE id = $3;`, exercise.Name, string(exercise.Type), exercise.ID)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return errorvalues.ErrExerciseExists
		}
		return errors.New("updating exercise error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting exercise error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}
