package application

import (
	"context"
	"testing"
	"time"

	authmocks "github.com/digivend/credit-shop/gen/mocks/auth"
	dbmocks "github.com/digivend/credit-shop/gen/mocks/database"
	jwtmocks "github.com/digivend/credit-shop/gen/mocks/jwt"
	"github.com/digivend/credit-shop/internal/auth/domain"
	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func executeTxFn(ctx context.Context, txFn database.TxFunc) error {
	return txFn(ctx, nil)
}

type authDeps struct {
	txManager      *dbmocks.MockTxManager
	usersRepo      *authmocks.MockUsersRepository
	passwordHasher *authmocks.MockPasswordHasher
	tokenIssuer    *jwtmocks.MockTokenIssuer
}

func newAuthDeps(ctrl *gomock.Controller) *authDeps {
	return &authDeps{
		txManager:      dbmocks.NewMockTxManager(ctrl),
		usersRepo:      authmocks.NewMockUsersRepository(ctrl),
		passwordHasher: authmocks.NewMockPasswordHasher(ctrl),
		tokenIssuer:    jwtmocks.NewMockTokenIssuer(ctrl),
	}
}

func (d *authDeps) newAuthCase() *AuthCase {
	return NewAuthCase(nil, d.txManager, d.usersRepo, d.passwordHasher, d.tokenIssuer, "secret")
}

func TestAuthCase_Register(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name               string
		username, password string

		prepareFn func(t *testing.T, d *authDeps)

		expectedUser domain.UserRecord
		expectedErr  error
	}

	tests := []testCase{
		{
			name:     "first user becomes admin",
			username: "firstuser",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.usersRepo.EXPECT().CountUsers(gomock.Any(), nil).Return(int64(0), nil)
				d.usersRepo.EXPECT().CreateUser(gomock.Any(), nil, "firstuser", "hashed_password", domain.RoleAdmin).Return(domain.UserRecord{
					ID:       1,
					Username: "firstuser",
					Role:     domain.RoleAdmin,
				}, nil)
			},
			expectedUser: domain.UserRecord{ID: 1, Username: "firstuser", Role: domain.RoleAdmin},
			expectedErr:  nil,
		},
		{
			name:     "subsequent user gets user role",
			username: "seconduser",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.usersRepo.EXPECT().CountUsers(gomock.Any(), nil).Return(int64(1), nil)
				d.usersRepo.EXPECT().CreateUser(gomock.Any(), nil, "seconduser", "hashed_password", domain.RoleUser).Return(domain.UserRecord{
					ID:       2,
					Username: "seconduser",
					Role:     domain.RoleUser,
				}, nil)
			},
			expectedUser: domain.UserRecord{ID: 2, Username: "seconduser", Role: domain.RoleUser},
			expectedErr:  nil,
		},
		{
			name:     "username already taken",
			username: "existinguser",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.usersRepo.EXPECT().CountUsers(gomock.Any(), nil).Return(int64(5), nil)
				d.usersRepo.EXPECT().CreateUser(gomock.Any(), nil, "existinguser", "hashed_password", domain.RoleUser).
					Return(domain.UserRecord{}, &domain.UsernameTakenError{Msg: "username existinguser is already taken"})
			},
			expectedUser: domain.UserRecord{},
			expectedErr:  &domain.UsernameTakenError{},
		},
		{
			name:     "error hashing password",
			username: "newuser",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.passwordHasher.EXPECT().HashPassword("password123").Return("", assert.AnError)
			},
			expectedUser: domain.UserRecord{},
			expectedErr:  assert.AnError,
		},
		{
			name:     "error counting users",
			username: "newuser",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.usersRepo.EXPECT().CountUsers(gomock.Any(), nil).Return(int64(0), assert.AnError)
			},
			expectedUser: domain.UserRecord{},
			expectedErr:  assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newAuthDeps(ctrl)
			tt.prepareFn(t, d)

			user, err := d.newAuthCase().Register(t.Context(), tt.username, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthCase_Login(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name               string
		username, password string

		prepareFn func(t *testing.T, d *authDeps)

		expectedToken string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:     "existing user with correct password",
			username: "existinguser",
			password: "correctpassword",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepo.EXPECT().TryGetUserByUsername(gomock.Any(), nil, "existinguser").Return(domain.UserRecord{
					ID:           2,
					Username:     "existinguser",
					PasswordHash: "stored_hash",
					Role:         domain.RoleUser,
				}, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("correctpassword", "stored_hash").Return(true, nil)
				d.tokenIssuer.EXPECT().IssueToken([]byte("secret"), 2, "existinguser", domain.RoleUser, 24*time.Hour).Return("jwt_token", nil)
			},
			expectedToken: "jwt_token",
			expectedErr:   nil,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "password",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepo.EXPECT().TryGetUserByUsername(gomock.Any(), nil, "ghost").Return(domain.UserRecord{}, false, nil)
			},
			expectedToken: "",
			expectedErr:   &domain.CredentialsMismatchError{},
		},
		{
			name:     "existing user with incorrect password",
			username: "existinguser",
			password: "wrongpassword",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepo.EXPECT().TryGetUserByUsername(gomock.Any(), nil, "existinguser").Return(domain.UserRecord{
					ID:           2,
					Username:     "existinguser",
					PasswordHash: "stored_hash",
				}, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("wrongpassword", "stored_hash").Return(false, nil)
			},
			expectedToken: "",
			expectedErr:   &domain.CredentialsMismatchError{},
		},
		{
			name:     "error fetching user",
			username: "testuser",
			password: "password",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepo.EXPECT().TryGetUserByUsername(gomock.Any(), nil, "testuser").Return(domain.UserRecord{}, false, assert.AnError)
			},
			expectedToken: "",
			expectedErr:   assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newAuthDeps(ctrl)
			tt.prepareFn(t, d)

			token, err := d.newAuthCase().Login(t.Context(), tt.username, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
