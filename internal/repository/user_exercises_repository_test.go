package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

var userExerciseCols = []string{
	"id", "user_id", "exercise_id", "name", "exercise_date", "duration_minutes", "reps", "sets",
	"intensity", "calories_burned", "complete",
}

func testUserExercise() entity.UserExercise {
	return entity.UserExercise{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ExerciseID:      uuid.New(),
		ExerciseName:    "Running",
		Date:            time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		DurationMinutes: ptr(30.0),
		Reps:            (*int)(nil),
		Sets:            (*int)(nil),
		Intensity:       entity.IntensityVigorous,
		CaloriesBurned:  366.7,
		Complete:        true,
	}
}

func TestCreateUserExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUserExercisesRepoWithConn(mock)
	ue := testUserExercise()
	query := regexp.QuoteMeta(`INSERT INTO user_exercises (user_id, exercise_id, exercise_date, duration_minutes, reps, sets, intensity, calories_burned, complete)`)
	args := []any{ue.UserID, ue.ExerciseID, ue.Date, ue.DurationMinutes, ue.Reps, ue.Sets, ptr("VIGOROUS"), ue.CaloriesBurned, ue.Complete}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(ue.ID))
			},
		},
		{
			Desc:  "unknown exercise",
			Error: errorvalues.ErrExerciseNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating exercise log entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &ue)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, ue.ID, id)
		})
	}
}

func TestGetUserExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUserExercisesRepoWithConn(mock)
	ctx := context.Background()
	ue := testUserExercise()
	query := regexp.QuoteMeta(`WHERE ue.id = $1;`)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ue.ID).WillReturnRows(pgxmock.NewRows(userExerciseCols).AddRow(
			ue.ID, ue.UserID, ue.ExerciseID, ue.ExerciseName, ue.Date, ue.DurationMinutes, ue.Reps, ue.Sets,
			ptr("VIGOROUS"), ue.CaloriesBurned, ue.Complete,
		))
		got, err := repo.GetByID(ctx, ue.ID)
		require.NoError(t, err)
		assert.Equal(t, ue, *got)
	})
	t.Run("no intensity", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ue.ID).WillReturnRows(pgxmock.NewRows(userExerciseCols).AddRow(
			ue.ID, ue.UserID, ue.ExerciseID, ue.ExerciseName, ue.Date, ue.DurationMinutes, ue.Reps, ue.Sets,
			(*string)(nil), ue.CaloriesBurned, ue.Complete,
		))
		got, err := repo.GetByID(ctx, ue.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ExerciseIntensity(""), got.Intensity)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ue.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, ue.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserExerciseNotFound)
	})
}

func TestListUserExercises(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUserExercisesRepoWithConn(mock)
	ctx := context.Background()
	ue := testUserExercise()
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(userExerciseCols).AddRow(
			ue.ID, ue.UserID, ue.ExerciseID, ue.ExerciseName, ue.Date, ue.DurationMinutes, ue.Reps, ue.Sets,
			ptr("VIGOROUS"), ue.CaloriesBurned, ue.Complete,
		)
	}

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE ue.user_id = $1 ORDER BY ue.exercise_date DESC;`)).
			WithArgs(ue.UserID).
			WillReturnRows(row())
		got, err := repo.ListByUser(ctx, ue.UserID, repository.UserExerciseFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ue, *got[0])
	})
	t.Run("completion and range", func(t *testing.T) {
		from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE ue.user_id = $1 AND ue.complete = $2 AND ue.exercise_date >= $3 AND ue.exercise_date <= $4 ORDER BY`)).
			WithArgs(ue.UserID, true, from, to).
			WillReturnRows(row())
		got, err := repo.ListByUser(ctx, ue.UserID, repository.UserExerciseFilter{
			Complete: ptr(true),
			From:     &from,
			To:       &to,
		})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
	t.Run("date and exercise", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE ue.user_id = $1 AND ue.exercise_date = $2 AND ue.exercise_id = $3 ORDER BY`)).
			WithArgs(ue.UserID, ue.Date, ue.ExerciseID).
			WillReturnRows(pgxmock.NewRows(userExerciseCols))
		got, err := repo.ListByUser(ctx, ue.UserID, repository.UserExerciseFilter{
			Date:       &ue.Date,
			ExerciseID: &ue.ExerciseID,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE ue.user_id = $1 ORDER BY`)).
			WithArgs(ue.UserID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, ue.UserID, repository.UserExerciseFilter{})
		assert.EqualError(t, err, "listing exercise log error: db error")
	})
}

func TestUpdateDeleteUserExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUserExercisesRepoWithConn(mock)
	ctx := context.Background()
	ue := testUserExercise()
	ue.Intensity = ""
	update := regexp.QuoteMeta(`UPDATE user_exercises SET exercise_id = $1`)
	args := []any{ue.ExerciseID, ue.Date, ue.DurationMinutes, ue.Reps, ue.Sets, (*string)(nil), ue.CaloriesBurned, ue.Complete, ue.ID}

	mock.ExpectExec(update).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(ctx, &ue))
	mock.ExpectExec(update).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(ctx, &ue), errorvalues.ErrUserExerciseNotFound)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_exercises WHERE id = $1;`)).WithArgs(ue.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, ue.ID), errorvalues.ErrUserExerciseNotFound)
}
