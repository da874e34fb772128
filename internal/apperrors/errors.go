package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials indicates a failed email/password check. Handlers return the
// same message for an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrProfileNotFound indicates an authenticated credential with no matching user row.
// Callers must revoke the credential: an orphaned token is not a valid session.
var ErrProfileNotFound = errors.New("user profile not found")

// ErrChurchInactive indicates the user's church has been deactivated by the operator.
var ErrChurchInactive = errors.New("church is inactive")

// ErrCrossChurchAccess indicates a login or request against a church the user does
// not belong to. Callers must revoke the credential.
var ErrCrossChurchAccess = errors.New("user does not belong to this church")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// RoomInUseError rejects a room deletion while active members remain assigned.
// The count is carried so the failure message can name it.
type RoomInUseError struct {
	ActiveMembers int
}

func (e *RoomInUseError) Error() string {
	return fmt.Sprintf("room has %d active member(s) assigned", e.ActiveMembers)
}

// AppError carries an HTTP status code alongside a message and the wrapped cause.
// Repositories use it to surface infrastructure failures distinctly from the
// sentinel rejections above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the corresponding sentinel for typed AppErrors.
func (e *AppError) Is(target error) bool {
	switch e.Code {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusConflict:
		return target == ErrDuplicate
	case http.StatusBadRequest:
		return target == ErrValidation
	case http.StatusForbidden:
		return target == ErrForbidden
	}
	return false
}

// NewAppError creates an AppError with an arbitrary status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewConflictError creates a 409 AppError.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewValidationFailedError creates a 400 AppError wrapping the underlying cause.
func NewValidationFailedError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: err}
}
