package application

import (
	"context"
	"time"

	"github.com/digivend/credit-shop/internal/auth/domain"
	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/digivend/credit-shop/internal/pkg/jwt"
)

const (
	tokenTimeLimit = 24 * time.Hour
)

type AuthCase struct {
	db              database.Querier
	txManager       database.TxManager
	usersRepository domain.UsersRepository
	passwordHasher  domain.PasswordHasher
	tokenIssuer     jwt.TokenIssuer
	secretKey       []byte
}

func NewAuthCase(
	db database.Querier,
	txManager database.TxManager,
	usersRepository domain.UsersRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *AuthCase {
	return &AuthCase{
		db:              db,
		txManager:       txManager,
		usersRepository: usersRepository,
		passwordHasher:  passwordHasher,
		tokenIssuer:     tokenIssuer,
		secretKey:       []byte(secretKey),
	}
}

// Register creates a new user. The very first registered user becomes an
// admin; the count and the insert run in one transaction so the check is made
// against the state the insert will see.
func (a *AuthCase) Register(ctx context.Context, username, password string) (domain.UserRecord, error) {
	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.UserRecord{}, err
	}

	var user domain.UserRecord
	err = a.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		count, err := a.usersRepository.CountUsers(ctx, executor)
		if err != nil {
			return err
		}

		role := domain.RoleUser
		if count == 0 {
			role = domain.RoleAdmin
		}

		user, err = a.usersRepository.CreateUser(ctx, executor, username, hashedPassword, role)
		return err
	})
	if err != nil {
		return domain.UserRecord{}, err
	}

	return user, nil
}

func (a *AuthCase) Login(ctx context.Context, username, password string) (string, error) {
	userRecord, found, err := a.usersRepository.TryGetUserByUsername(ctx, a.db, username)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, userRecord.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, userRecord.ID, userRecord.Username, userRecord.Role, tokenTimeLimit)
}
