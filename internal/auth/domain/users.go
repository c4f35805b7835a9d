package domain

import (
	"context"
	"time"

	"github.com/digivend/credit-shop/internal/pkg/database"
)

//go:generate mockgen -destination=../../../gen/mocks/auth/mock_users.go -package=mocks github.com/digivend/credit-shop/internal/auth/domain UsersRepository,PasswordHasher

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type UsersRepository interface {
	CreateUser(ctx context.Context, querier database.Querier, username, hashedPassword, role string) (UserRecord, error)
	TryGetUserByUsername(ctx context.Context, querier database.Querier, username string) (UserRecord, bool, error)
	CountUsers(ctx context.Context, querier database.Querier) (int64, error)
}

type UserRecord struct {
	ID           int
	Username     string
	PasswordHash string
	Role         string
	Credits      int
	CreatedAt    time.Time
}
