package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/digivend/credit-shop/internal/auth/domain"
	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{}
}

func (r *UsersRepository) CreateUser(ctx context.Context, querier database.Querier, username, hashedPassword, role string) (domain.UserRecord, error) {
	creationSQL := `INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, role, credits, created_at`

	var userRecord domain.UserRecord
	row := querier.QueryRow(ctx, creationSQL, username, hashedPassword, role)
	err := row.Scan(
		&userRecord.ID,
		&userRecord.Username,
		&userRecord.PasswordHash,
		&userRecord.Role,
		&userRecord.Credits,
		&userRecord.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.UserRecord{}, &domain.UsernameTakenError{Msg: fmt.Sprintf("username %s is already taken", username)}
		}

		return domain.UserRecord{}, fmt.Errorf("failed to create user: %w", err)
	}

	return userRecord, nil
}

func (r *UsersRepository) TryGetUserByUsername(ctx context.Context, querier database.Querier, username string) (domain.UserRecord, bool, error) {
	querySQL := `SELECT id, username, password_hash, role, credits, created_at FROM users WHERE username = $1`

	var userRecord domain.UserRecord
	row := querier.QueryRow(ctx, querySQL, username)
	err := row.Scan(
		&userRecord.ID,
		&userRecord.Username,
		&userRecord.PasswordHash,
		&userRecord.Role,
		&userRecord.Credits,
		&userRecord.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserRecord{}, false, nil
		}

		return domain.UserRecord{}, false, err
	}

	return userRecord, true, nil
}

func (r *UsersRepository) CountUsers(ctx context.Context, querier database.Querier) (int64, error) {
	var count int64
	err := querier.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
