package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

const weighInColumns = `id, user_id, weigh_date, height, weight, notes`

type WeighInsRepository struct {
	conn PgConnection
}

func NewWeighInsRepo(cfg DBConfig) *WeighInsRepository {
	return NewWeighInsRepoWithConn(NewPool(cfg))
}

func NewWeighInsRepoWithConn(conn PgConnection) *WeighInsRepository {
	mustPing(conn, "weighInsRepo")
	return &WeighInsRepository{
		conn: conn,
	}
}

func scanWeighIn(row pgx.Row) (*entity.WeighIn, error) {
	var w entity.WeighIn
	if err := row.Scan(&w.ID, &w.UserID, &w.Date, &w.Height, &w.Weight, &w.Notes); err != nil {
		return nil, err
	}
	return &w, nil
}

func (wr *WeighInsRepository) Create(ctx context.Context, w *entity.WeighIn) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO weigh_ins (user_id, weigh_date, height, weight, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		w.UserID, w.Date, w.Height, w.Weight, w.Notes,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating weigh-in error: " + err.Error())
	}
	return id, nil
}

func (wr *WeighInsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WeighIn, error) {
	w, err := scanWeighIn(wr.conn.QueryRow(ctx, `SELECT `+weighInColumns+` FROM weigh_ins WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWeighInNotFound
		}
		return nil, errors.New("getting weigh-in error: " + err.Error())
	}
	return w, nil
}

func (wr *WeighInsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.WeighIn, error) {
	rows, err := wr.conn.Query(ctx, `SELECT `+weighInColumns+` FROM weigh_ins WHERE user_id = $1 ORDER BY weigh_date DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing weigh-ins error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.WeighIn, 0)
	for rows.Next() {
		w, err := scanWeighIn(rows)
		if err != nil {
			return nil, errors.New("weigh-in row parsing error: " + err.Error())
		}
		result = append(result, w)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected weigh-in rows error: " + err.Error())
	}
	return result, nil
}

func (wr *WeighInsRepository) Latest(ctx context.Context, uid uuid.UUID) (*entity.WeighIn, error) {
	w, err := scanWeighIn(wr.conn.QueryRow(ctx, `SELECT `+weighInColumns+` FROM weigh_ins WHERE user_id = $1 ORDER BY weigh_date DESC, id DESC LIMIT 1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting latest weigh-in error: " + err.Error())
	}
	return w, nil
}

func (wr *WeighInsRepository) Update(ctx context.Context, w *entity.WeighIn) error {
	ct, err := wr.conn.Exec(ctx, `UPDATE weigh_ins SET weigh_date = $1, height = $2, weight = $3, notes = $4 WHERE id = $5;`,
		w.Date, w.Height, w.Weight, w.Notes, w.ID,
	)
	if err != nil {
		return errors.New("updating weigh-in error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWeighInNotFound
	}
	return nil
}

func (wr *WeighInsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM weigh_ins WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting weigh-in error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWeighInNotFound
	}
	return nil
}
