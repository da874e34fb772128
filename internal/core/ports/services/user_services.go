package services

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListChurchUsers retrieves every user belonging to a church.
	ListChurchUsers(ctx context.Context, churchID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data. Mutations require the
// requesting user to hold the admin role in the target church (or super admin).
type UserWriterSvc interface {
	// CreateUser creates a new user inside a church.
	CreateUser(ctx context.Context, churchID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations the auth flow needs.
type UserAuthSvc interface {
	// AuthenticateUser verifies email and password. The error is uniform for an
	// unknown email and a wrong password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateRefreshToken stores refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken revokes the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
