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

var weighInCols = []string{"id", "user_id", "weigh_date", "height", "weight", "notes"}

func TestWeighInsRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWeighInsRepoWithConn(mock)
	ctx := context.Background()
	w := entity.WeighIn{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		Height: (*float64)(nil),
		Weight: ptr(171.2),
		Notes:  "after run",
	}
	insert := regexp.QuoteMeta(`INSERT INTO weigh_ins (user_id, weigh_date, height, weight, notes)`)
	latest := regexp.QuoteMeta(`FROM weigh_ins WHERE user_id = $1 ORDER BY weigh_date DESC, id DESC LIMIT 1;`)

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery(insert).WithArgs(w.UserID, w.Date, w.Height, w.Weight, w.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(w.ID))
		id, err := repo.Create(ctx, &w)
		require.NoError(t, err)
		assert.Equal(t, w.ID, id)
	})
	t.Run("create for unknown user", func(t *testing.T) {
		mock.ExpectQuery(insert).WithArgs(w.UserID, w.Date, w.Height, w.Weight, w.Notes).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &w)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("latest", func(t *testing.T) {
		mock.ExpectQuery(latest).WithArgs(w.UserID).
			WillReturnRows(pgxmock.NewRows(weighInCols).AddRow(w.ID, w.UserID, w.Date, w.Height, w.Weight, w.Notes))
		got, err := repo.Latest(ctx, w.UserID)
		require.NoError(t, err)
		assert.Equal(t, w, *got)
	})
	t.Run("latest without weigh-ins", func(t *testing.T) {
		mock.ExpectQuery(latest).WithArgs(w.UserID).WillReturnError(pgx.ErrNoRows)
		got, err := repo.Latest(ctx, w.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
	t.Run("list", func(t *testing.T) {
		older := w
		older.ID = uuid.New()
		older.Date = w.Date.AddDate(0, 0, -7)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM weigh_ins WHERE user_id = $1 ORDER BY weigh_date DESC;`)).WithArgs(w.UserID).
			WillReturnRows(pgxmock.NewRows(weighInCols).
				AddRow(w.ID, w.UserID, w.Date, w.Height, w.Weight, w.Notes).
				AddRow(older.ID, older.UserID, older.Date, older.Height, older.Weight, older.Notes))
		got, err := repo.ListByUser(ctx, w.UserID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, older, *got[1])
	})
	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM weigh_ins WHERE id = $1;`)).WithArgs(w.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, w.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWeighInNotFound)
	})
	t.Run("update and delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE weigh_ins SET weigh_date = $1, height = $2, weight = $3, notes = $4 WHERE id = $5;`)).
			WithArgs(w.Date, w.Height, w.Weight, w.Notes, w.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &w))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM weigh_ins WHERE id = $1;`)).WithArgs(w.ID).
			WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Delete(ctx, w.ID), "deleting weigh-in error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
