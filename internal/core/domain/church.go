package domain

// PlanType identifies the subscription plan a church is on.
type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanBasic      PlanType = "basic"
	PlanPremium    PlanType = "premium"
	PlanEnterprise PlanType = "enterprise"
)

// SystemChurchID and SystemChurchSlug identify the synthetic church super admins
// operate under. It is built in memory and never persisted.
const (
	SystemChurchID   = "system"
	SystemChurchSlug = "superadmin"
)

// Church represents a tenant: an independently administered organization with
// isolated data. Churches are deactivated rather than deleted in normal flow.
type Church struct {
	ChurchID     string   `json:"churchID" db:"church_id"`
	Name         string   `json:"name" db:"name"`
	Slug         string   `json:"slug" db:"slug"` // unique, used as the URL namespace
	CNPJ         string   `json:"cnpj" db:"cnpj"`
	City         string   `json:"city" db:"city"`
	State        string   `json:"state" db:"state"`
	Address      string   `json:"address" db:"address"`
	Phone        string   `json:"phone" db:"phone"`
	Pastor       string   `json:"pastor" db:"pastor"`
	AdminName    string   `json:"adminName" db:"admin_name"`
	AdminEmail   string   `json:"adminEmail" db:"admin_email"`
	Plan         PlanType `json:"plan" db:"plan"`
	IsActive     bool     `json:"isActive" db:"is_active"`
	MembersCount int      `json:"membersCount" db:"members_count"` // derived, not a stored column on every read
	AuditFields
	Version int64 `json:"-" db:"version"`
}

// SystemChurch returns the synthetic tenant placeholder used for super-admin sessions.
func SystemChurch() Church {
	return Church{
		ChurchID:  SystemChurchID,
		Name:      "Sistema Central",
		Slug:      SystemChurchSlug,
		AdminName: "Super Admin",
		Plan:      PlanPremium,
		IsActive:  true,
	}
}
