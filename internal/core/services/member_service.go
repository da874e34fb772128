package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

// memberService implements the MemberSvcFacade interface
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
	roomRepo   portsrepo.RoomReader
}

// NewMemberService creates a new member service with the provided dependencies
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, roomRepo portsrepo.RoomReader) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo: memberRepo,
		roomRepo:   roomRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// findOwnedMember loads a member and verifies it belongs to the church. A
// member owned by another church is reported as not found, never as forbidden,
// so cross-tenant probing cannot confirm existence.
func (s *memberService) findOwnedMember(ctx context.Context, churchID, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}
	return member, nil
}

// validateRoom checks the room exists, belongs to the church and is active.
func (s *memberService) validateRoom(ctx context.Context, churchID, roomID string) error {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError("room does not exist", err)
		}
		return err
	}
	if room.ChurchID != churchID {
		return apperrors.NewValidationFailedError("room does not exist", nil)
	}
	if !room.IsActive {
		return apperrors.NewValidationFailedError("room is inactive", nil)
	}
	return nil
}

func (s *memberService) GetMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error) {
	return s.findOwnedMember(ctx, churchID, memberID)
}

func (s *memberService) ListMembers(ctx context.Context, churchID string, limit, offset int) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembersByChurchID(ctx, churchID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members",
			slog.String("church_id", churchID))
		return nil, err
	}
	if members == nil {
		return []domain.Member{}, nil
	}
	return members, nil
}

// CreateMember validates the CPF checksum, normalizes the name and derives the
// age group before persisting.
func (s *memberService) CreateMember(ctx context.Context, churchID string, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error) {
	if req.CPF != "" && !utils.IsValidCPF(req.CPF) {
		return nil, apperrors.NewValidationFailedError("invalid CPF", nil)
	}

	birthDate, err := time.Parse(dto.DateLayout, req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid birth date", err)
	}

	if req.RoomID != "" {
		if err := s.validateRoom(ctx, churchID, req.RoomID); err != nil {
			return nil, err
		}
	}

	status := domain.MemberStatus(req.Status)
	if req.Status == "" {
		status = domain.MemberActive
	}

	now := time.Now()
	joinDate := now
	if req.JoinDate != "" {
		joinDate, err = time.Parse(dto.DateLayout, req.JoinDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid join date", err)
		}
	}

	member := domain.Member{
		MemberID:  uuid.NewString(),
		ChurchID:  churchID,
		RoomID:    req.RoomID,
		FullName:  utils.NormalizeName(req.FullName),
		CPF:       utils.FormatCPF(req.CPF),
		BirthDate: birthDate,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		JoinDate:  joinDate,
		AgeGroup:  domain.AgeGroupForBirthDate(birthDate, now),
		Status:    status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.BaptismDate != "" {
		baptism, err := time.Parse(dto.DateLayout, req.BaptismDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid baptism date", err)
		}
		member.BaptismDate = &baptism
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member",
			slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Member created",
		slog.String("member_id", member.MemberID),
		slog.String("church_id", churchID))
	return &member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, churchID, memberID string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error) {
	member, err := s.findOwnedMember(ctx, churchID, memberID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		member.FullName = utils.NormalizeName(*req.FullName)
	}
	if req.CPF != nil {
		if *req.CPF != "" && !utils.IsValidCPF(*req.CPF) {
			return nil, apperrors.NewValidationFailedError("invalid CPF", nil)
		}
		member.CPF = utils.FormatCPF(*req.CPF)
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(dto.DateLayout, *req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid birth date", err)
		}
		member.BirthDate = birthDate
		member.AgeGroup = domain.AgeGroupForBirthDate(birthDate, time.Now())
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.Status != nil {
		member.Status = domain.MemberStatus(*req.Status)
	}
	if req.RoomID != nil {
		if *req.RoomID != "" {
			if err := s.validateRoom(ctx, churchID, *req.RoomID); err != nil {
				return nil, err
			}
		}
		member.RoomID = *req.RoomID
	}
	if req.BaptismDate != nil {
		if *req.BaptismDate == "" {
			member.BaptismDate = nil
		} else {
			baptism, err := time.Parse(dto.DateLayout, *req.BaptismDate)
			if err != nil {
				return nil, apperrors.NewValidationFailedError("invalid baptism date", err)
			}
			member.BaptismDate = &baptism
		}
	}

	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = requestingUserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member",
			slog.String("member_id", memberID))
		return nil, err
	}
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, churchID, memberID string) error {
	if _, err := s.findOwnedMember(ctx, churchID, memberID); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to delete member",
			slog.String("member_id", memberID))
		return err
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}
