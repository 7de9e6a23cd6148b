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

const userExerciseSelect = `SELECT ue.id, ue.user_id, ue.exercise_id, e.name, ue.exercise_date, ue.duration_minutes, ue.reps, ue.sets, ue.intensity, ue.calories_burned, ue.complete
	FROM user_exercises ue JOIN exercises e ON e.id = ue.exercise_id`

type UserExercisesRepository struct {
	conn PgConnection
}

func NewUserExercisesRepo(cfg DBConfig) *UserExercisesRepository {
	return NewUserExercisesRepoWithConn(NewPool(cfg))
}

func NewUserExercisesRepoWithConn(conn PgConnection) *UserExercisesRepository {
	mustPing(conn, "userExercisesRepo")
	return &UserExercisesRepository{
		conn: conn,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (uer *UserExercisesRepository) Create(ctx context.Context, ue *entity.UserExercise) (uuid.UUID, error) {
	var id uuid.UUID
	row := uer.conn.QueryRow(ctx, `INSERT INTO user_exercises (user_id, exercise_id, exercise_date, duration_minutes, reps, sets, intensity, calories_burned, complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		ue.UserID,
		ue.ExerciseID,
		ue.Date,
		ue.DurationMinutes,
		ue.Reps,
		ue.Sets,
		nullableString(string(ue.Intensity)),
		ue.CaloriesBurned,
		ue.Complete,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrExerciseNotFound
		}
		return uuid.UUID{}, errors.New("creating exercise log entry error: " + err.Error())
	}
	return id, nil
}

func scanUserExercise(row pgx.Row) (*entity.UserExercise, error) {
	var (
		ue        entity.UserExercise
		intensity *string
	)
	err := row.Scan(
		&ue.ID,
		&ue.UserID,
		&ue.ExerciseID,
		&ue.ExerciseName,
		&ue.Date,
		&ue.DurationMinutes,
		&ue.Reps,
		&ue.Sets,
		&intensity,
		&ue.CaloriesBurned,
		&ue.Complete,
	)
	if err != nil {
		return nil, err
	}
	if intensity != nil {
		ue.Intensity = entity.ExerciseIntensity(*intensity)
	}
	return &ue, nil
}

func (uer *UserExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserExercise, error) {
	ue, err := scanUserExercise(uer.conn.QueryRow(ctx, userExerciseSelect+` WHERE ue.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserExerciseNotFound
		}
		return nil, errors.New("getting exercise log entry error: " + err.Error())
	}
	return ue, nil
}

// ListByUser applies the filter conditions in a fixed order: date, exercise,
// completion, range start, range end.
func (uer *UserExercisesRepository) ListByUser(ctx context.Context, uid uuid.UUID, filter UserExerciseFilter) ([]*entity.UserExercise, error) {
	conds := []string{"ue.user_id = $1"}
	args := []any{uid}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, cond+" $"+strconv.Itoa(len(args)))
	}
	if filter.Date != nil {
		add("ue.exercise_date =", *filter.Date)
	}
	if filter.ExerciseID != nil {
		add("ue.exercise_id =", *filter.ExerciseID)
	}
	if filter.Complete != nil {
		add("ue.complete =", *filter.Complete)
	}
	if filter.From != nil {
		add("ue.exercise_date >=", *filter.From)
	}
	if filter.To != nil {
		add("ue.exercise_date <=", *filter.To)
	}
	query := userExerciseSelect + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY ue.exercise_date DESC;"
	rows, err := uer.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing exercise log error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.UserExercise, 0)
	for rows.Next() {
		ue, err := scanUserExercise(rows)
		if err != nil {
			return nil, errors.New("exercise log row parsing error: " + err.Error())
		}
		result = append(result, ue)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected exercise log rows error: " + err.Error())
	}
	return result, nil
}

func (uer *UserExercisesRepository) Update(ctx context.Context, ue *entity.UserExercise) error {
	ct, err := uer.conn.Exec(ctx, `UPDATE user_exercises SET exercise_id = $1, exercise_date = $2, duration_minutes = $3, reps = $4, sets = $5, intensity = $6, calories_burned = $7, complete = $8 WHERE id = $9;`,
		ue.ExerciseID,
		ue.Date,
		ue.DurationMinutes,
		ue.Reps,
		ue.Sets,
		nullableString(string(ue.Intensity)),
		ue.CaloriesBurned,
		ue.Complete,
		ue.ID,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrExerciseNotFound
		}
		return errors.New("updating exercise log entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserExerciseNotFound
	}
	return nil
}

func (uer *UserExercisesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := uer.conn.Exec(ctx, `DELETE FROM user_exercises WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting exercise log entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserExerciseNotFound
	}
	return nil
}
