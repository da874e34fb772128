package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// CreateMemberRequest registers a member of the congregation.
type CreateMemberRequest struct {
	FullName    string `json:"fullName" binding:"required,min=3,max=120"`
	CPF         string `json:"cpf" binding:"omitempty,cpf"`
	BirthDate   string `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Phone       string `json:"phone" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address" binding:"max=200"`
	Status      string `json:"status" binding:"omitempty,oneof=ativo inativo visitante transferido"`
	RoomID      string `json:"roomID"`
	BaptismDate string `json:"baptismDate" binding:"omitempty,datetime=2006-01-02"`
	JoinDate    string `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateMemberRequest patches a member. Nil fields are left unchanged.
type UpdateMemberRequest struct {
	FullName    *string `json:"fullName" binding:"omitempty,min=3,max=120"`
	CPF         *string `json:"cpf" binding:"omitempty,cpf"`
	BirthDate   *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     *string `json:"address" binding:"omitempty,max=200"`
	Status      *string `json:"status" binding:"omitempty,oneof=ativo inativo visitante transferido"`
	RoomID      *string `json:"roomID"`
	BaptismDate *string `json:"baptismDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListMembersParams filters the member listing.
type ListMembersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=ativo inativo visitante transferido"`
	RoomID string `form:"roomID"`
	Search string `form:"search" binding:"omitempty,max=120"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=200"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// MemberResponse is the API shape for a member.
type MemberResponse struct {
	MemberID    string     `json:"memberID"`
	ChurchID    string     `json:"churchID"`
	RoomID      string     `json:"roomID,omitempty"`
	FullName    string     `json:"fullName"`
	CPF         string     `json:"cpf,omitempty"`
	BirthDate   time.Time  `json:"birthDate"`
	AgeGroup    string     `json:"ageGroup"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	BaptismDate *time.Time `json:"baptismDate,omitempty"`
	JoinDate    time.Time  `json:"joinDate"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToMemberResponse converts a domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:    m.MemberID,
		ChurchID:    m.ChurchID,
		RoomID:      m.RoomID,
		FullName:    m.FullName,
		CPF:         m.CPF,
		BirthDate:   m.BirthDate,
		AgeGroup:    string(m.AgeGroup),
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		BaptismDate: m.BaptismDate,
		JoinDate:    m.JoinDate,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// ToListMembersResponse converts a slice of members to DTOs.
func ToListMembersResponse(members []domain.Member) []MemberResponse {
	resp := make([]MemberResponse, len(members))
	for i, m := range members {
		resp[i] = ToMemberResponse(&m)
	}
	return resp
}
