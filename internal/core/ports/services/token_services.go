package services

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// TokenSvcFacade manages JWT access tokens and persisted refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// IssueRefreshToken generates a refresh token, stores its hash and expiry,
	// and returns the raw token for cookie transport.
	IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a raw refresh token against the stored hash
	// and expiry. Fails with ErrUnauthorized or ErrRefreshTokenExpired.
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)

	// RevokeRefreshToken clears the stored refresh token for the user.
	RevokeRefreshToken(ctx context.Context, userID string) error
}
