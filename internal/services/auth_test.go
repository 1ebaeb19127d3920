package services

import (
	"context"
	"testing"
	"time"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"
	"calibration-system/pkg/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users  []entities.User
	nextID int
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, apperrors.ErrConflict
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)
	out := user
	return &out, nil
}

func (r *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindUser(_ context.Context, id int) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func newTestAuthService() *AuthService {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	return NewAuthService(&fakeUserRepo{}, jwtSvc, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	created, err := svc.Register(ctx, dto.RegisterDTO{
		Username: "taller",
		Password: "secret123",
		FullName: "Workshop User",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", created.Password)

	tokens, err := svc.Login(ctx, dto.LoginDTO{Username: "taller", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.Equal(t, "taller", tokens.User.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Username: "taller", Password: "secret123", FullName: "A"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterDTO{Username: "taller", Password: "other456", FullName: "B"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestLoginWithWrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Username: "taller", Password: "secret123", FullName: "A"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "taller", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "nadie", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
