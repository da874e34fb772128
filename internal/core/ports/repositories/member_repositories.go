package repositories

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// MemberReader defines read operations for member roster data.
type MemberReader interface {
	// FindMemberByID retrieves a member by ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembersByChurchID retrieves a page of a church's members.
	ListMembersByChurchID(ctx context.Context, churchID string, limit, offset int) ([]domain.Member, error)

	// ListMembersByRoomID retrieves the members assigned to a room.
	ListMembersByRoomID(ctx context.Context, roomID string) ([]domain.Member, error)

	// CountActiveMembersByRoomID counts members with status ativo assigned to a room.
	CountActiveMembersByRoomID(ctx context.Context, roomID string) (int, error)
}

// MemberWriter defines write operations for member roster data.
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember updates an existing member.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member from the roster.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
