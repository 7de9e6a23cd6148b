package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

const userColumns = `id, username, first_name, last_name, email, password_hash, date_of_birth, initial_weight, weight, goal_weight, height, measurement_system, email_verified, failed_login_attempts, locked_until, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return NewUsersRepoWithConn(NewPool(cfg))
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (username, first_name, last_name, email, password_hash, date_of_birth, initial_weight, weight, goal_weight, height, measurement_system, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id;`,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.DateOfBirth,
		user.InitialWeight,
		user.Weight,
		user.GoalWeight,
		user.Height,
		string(user.MeasurementSystem),
		user.EmailVerified,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.DateOfBirth,
		&user.InitialWeight,
		&user.Weight,
		&user.GoalWeight,
		&user.Height,
		&user.MeasurementSystem,
		&user.EmailVerified,
		&user.FailedLoginAttempts,
		&user.LockedUntil,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1);`, email)
}

func (ur *UsersRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return ur.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username)
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET first_name = $1, last_name = $2, date_of_birth = $3, weight = $4, goal_weight = $5, height = $6, measurement_system = $7 WHERE id = $8;`,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Weight,
		user.GoalWeight,
		user.Height,
		string(user.MeasurementSystem),
		user.ID,
	)
	if err != nil {
		return errors.New("updating user profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET password_hash = $1, failed_login_attempts = 0, locked_until = NULL WHERE id = $2;`, passwordHash, uid)
	if err != nil {
		return errors.New("updating password error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateLoginState(ctx context.Context, uid uuid.UUID, attempts int, lockedUntil *time.Time) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET failed_login_attempts = $1, locked_until = $2 WHERE id = $3;`, attempts, lockedUntil, uid)
	if err != nil {
		return errors.New("updating login state error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateWeight(ctx context.Context, uid uuid.UUID, weight float64) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET weight = $1 WHERE id = $2;`, weight, uid)
	if err != nil {
		return errors.New("updating weight error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) MarkEmailVerified(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET email_verified = TRUE WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("marking e-mail verified error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
