package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ymerta/vardiya/internal/domain/auth"
	"github.com/ymerta/vardiya/internal/domain/user"
	"github.com/ymerta/vardiya/internal/pkg/jwt"
)

// LoginResult bundles the access token payload with the refresh token
// the handler sets as an HttpOnly cookie.
type LoginResult struct {
	Token            auth.TokenResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

type AuthService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates the shop owner account. The shop has exactly one
// owner, so registration only works on a fresh install.
func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (LoginResult, error) {
	if err := req.Validate(); err != nil {
		return LoginResult{}, err
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return LoginResult{}, auth.ErrOwnerAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		ShopName:     strings.TrimSpace(req.ShopName),
	})
	if err != nil {
		return LoginResult{}, err
	}

	return s.issueTokens(created)
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (LoginResult, error) {
	if err := req.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return LoginResult{}, auth.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh rotates the refresh token: the presented token is revoked
// and a fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (LoginResult, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return LoginResult{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return LoginResult{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return LoginResult{}, auth.ErrInvalidToken
		}
		return LoginResult{}, err
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(u)
}

func (s *AuthService) Logout(_ context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

// SSEToken mints a short-lived token the event stream accepts as a
// query parameter, since EventSource cannot set headers.
func (s *AuthService) SSEToken(ctx context.Context, userID string) (string, int, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", 0, err
	}
	return s.jwtService.GenerateSSEToken(userID)
}

func (s *AuthService) issueTokens(u user.User) (LoginResult, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return LoginResult{
		Token: auth.TokenResponse{
			AccessToken: accessToken,
			ExpiresAt:   expiresAt,
			Email:       u.Email,
			ShopName:    u.ShopName,
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
