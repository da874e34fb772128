package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// MemberSvcFacade manages the church member roster.
type MemberSvcFacade interface {
	// GetMemberByID retrieves a member, verifying church ownership.
	GetMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error)

	// ListMembers retrieves a page of a church's members.
	ListMembers(ctx context.Context, churchID string, limit, offset int) ([]domain.Member, error)

	// CreateMember validates the CPF, normalizes the name, derives the age
	// group and persists the member.
	CreateMember(ctx context.Context, churchID string, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error)

	// UpdateMember updates an existing member.
	UpdateMember(ctx context.Context, churchID, memberID string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error)

	// DeleteMember removes a member from the roster.
	DeleteMember(ctx context.Context, churchID, memberID string) error
}
