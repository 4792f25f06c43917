package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymerta/vardiya/internal/domain/auth"
	"github.com/ymerta/vardiya/internal/domain/user"
	"github.com/ymerta/vardiya/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func newTestService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(repo, jwtService), repo
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		ShopName:        "Vardiya Market",
		Email:           "owner@example.com",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	}
}

func TestRegisterCreatesSingleOwner(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "owner@example.com", result.Token.Email)
	assert.Equal(t, "Vardiya Market", result.Token.ShopName)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A second registration must be refused even with a new email.
	second := registerRequest()
	second.Email = "other@example.com"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, auth.ErrOwnerAlreadyExists)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	svc, _ := newTestService()

	req := registerRequest()
	req.ConfirmPassword = "something-else"
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLoginChecksPassword(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "Owner@Example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token.AccessToken)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newTestService()
	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was revoked by the rotation.
	_, err = svc.Refresh(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newTestService()
	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	svc.Logout(context.Background(), registered.RefreshToken)

	_, err = svc.Refresh(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
