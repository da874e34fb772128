package domain

import "time"

// MemberStatus tracks a member's standing in the roster.
type MemberStatus string

const (
	MemberActive      MemberStatus = "ativo"
	MemberInactive    MemberStatus = "inativo"
	MemberVisitor     MemberStatus = "visitante"
	MemberTransferred MemberStatus = "transferido"
)

// AgeGroup buckets members for room assignment and reporting.
type AgeGroup string

const (
	AgeGroupBaby       AgeGroup = "Bebê"
	AgeGroupChild      AgeGroup = "Criança"
	AgeGroupAdolescent AgeGroup = "Adolescente"
	AgeGroupYouth      AgeGroup = "Jovem"
	AgeGroupAdult      AgeGroup = "Adulto"
	AgeGroupSenior     AgeGroup = "Idoso"
)

// AgeGroupForBirthDate derives the age group from a birth date as of now.
func AgeGroupForBirthDate(birthDate time.Time, now time.Time) AgeGroup {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	switch {
	case age < 4:
		return AgeGroupBaby
	case age < 12:
		return AgeGroupChild
	case age < 18:
		return AgeGroupAdolescent
	case age < 30:
		return AgeGroupYouth
	case age < 60:
		return AgeGroupAdult
	default:
		return AgeGroupSenior
	}
}

// Member is a church roster entry, scoped by church and assigned to a room.
type Member struct {
	MemberID    string       `json:"memberID" db:"member_id"`
	ChurchID    string       `json:"churchID" db:"church_id"`
	RoomID      string       `json:"roomID" db:"room_id"`
	FullName    string       `json:"fullName" db:"full_name"`
	CPF         string       `json:"cpf" db:"cpf"`
	BirthDate   time.Time    `json:"birthDate" db:"birth_date"`
	Phone       string       `json:"phone" db:"phone"`
	Email       string       `json:"email" db:"email"`
	Address     string       `json:"address" db:"address"`
	BaptismDate *time.Time   `json:"baptismDate,omitempty" db:"baptism_date"`
	JoinDate    time.Time    `json:"joinDate" db:"join_date"`
	AgeGroup    AgeGroup     `json:"ageGroup" db:"age_group"`
	Status      MemberStatus `json:"status" db:"status"`
	AuditFields
}
