package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// SessionResolverSvc turns an authenticated user id into a full session, or
// fails closed. No partial session is ever returned.
type SessionResolverSvc interface {
	// ResolveSession loads the user, its church (synthetic system church for
	// super admins) and the effective permission matrix.
	// Fails with ErrProfileNotFound, ErrNotFound or ErrChurchInactive.
	ResolveSession(ctx context.Context, userID string) (*domain.Session, error)
}

// LoginSvc handles credential verification and the slug cross-check.
type LoginSvc interface {
	// Login verifies credentials, then cross-checks the tenant slug. Any
	// rejection after a successful credential check revokes the stored refresh
	// token so no authenticated-but-unauthorized state persists.
	// Fails with ErrInvalidCredentials, ErrNotFound, ErrChurchInactive or
	// ErrCrossChurchAccess.
	Login(ctx context.Context, email, password, slug string) (*domain.Session, error)

	// ChangePassword verifies the current password before storing the new hash.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// SessionSvcFacade combines session resolution and login.
type SessionSvcFacade interface {
	SessionResolverSvc
	LoginSvc
}
