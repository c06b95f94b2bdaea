package service

import (
	"context"
	"fmt"

	"coursecatalog/internal/auth"
	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

// TokenIssuer is the subset of auth.TokenManager the services use.
type TokenIssuer interface {
	IssuePair(userID int64) (auth.TokenPair, error)
	IssueAccess(userID int64) (string, error)
	IssueRefresh(userID int64) (string, error)
	Parse(tokenString string, want auth.TokenType) (*auth.Claims, error)
}

// RefreshResult holds a new access token and, when rotation is enabled, a new refresh token.
type RefreshResult struct {
	Access  string
	Refresh string
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResult, error)
	// Authenticate resolves an access token to an active user's identity.
	Authenticate(ctx context.Context, accessToken string) (*model.Identity, error)
}

type authService struct {
	userRepo      repository.UserRepository
	hasher        auth.PasswordHasher
	tokens        TokenIssuer
	rotateRefresh bool
}

func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer, rotateRefresh bool) AuthService {
	return &authService{userRepo: userRepo, hasher: hasher, tokens: tokens, rotateRefresh: rotateRefresh}
}

func (s *authService) Login(ctx context.Context, username, password string) (auth.TokenPair, error) {
	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if u == nil || !u.IsActive {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	return s.tokens.IssuePair(u.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (RefreshResult, error) {
	u, err := s.userFromToken(ctx, refreshToken, auth.RefreshToken)
	if err != nil {
		return RefreshResult{}, err
	}
	access, err := s.tokens.IssueAccess(u.ID)
	if err != nil {
		return RefreshResult{}, err
	}
	res := RefreshResult{Access: access}
	if s.rotateRefresh {
		if res.Refresh, err = s.tokens.IssueRefresh(u.ID); err != nil {
			return RefreshResult{}, err
		}
	}
	return res, nil
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.Identity, error) {
	u, err := s.userFromToken(ctx, accessToken, auth.AccessToken)
	if err != nil {
		return nil, err
	}
	return &model.Identity{UserID: u.ID, Username: u.Username}, nil
}

func (s *authService) userFromToken(ctx context.Context, tokenString string, typ auth.TokenType) (*model.User, error) {
	claims, err := s.tokens.Parse(tokenString, typ)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	u, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, fmt.Errorf("%w: user %d not found or inactive", ErrInvalidToken, id)
	}
	return u, nil
}
