package commands

import (
	"context"

	"spa-promotions/internal/domain/user"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/pkg/jwt"
	"spa-promotions/internal/pkg/password"
	"spa-promotions/internal/usecase/shared"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    string
	Role      string
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users      shared.UserStore
	jwtService *jwt.Service
}

func NewAuthCommands(users shared.UserStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	rec, err := a.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !rec.IsActive {
		return nil, ErrUserInactive
	}
	// Same error as an unknown email to prevent user enumeration.
	if err := password.ComparePassword(rec.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(rec.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issuePair(rec.ID, role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: rec.ID, Role: rec.Role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The user must still exist and be active for the rotation to succeed.
	rec, err := a.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !rec.IsActive {
		return nil, ErrUserInactive
	}

	return a.issuePair(claims.UserID, role)
}

func (a *authCommandsImpl) issuePair(userID string, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) findByEmail(ctx context.Context, email string) (*shared.UserRecord, error) {
	all, err := a.users.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	for i := range all {
		if all[i].Email == email {
			return &all[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}
