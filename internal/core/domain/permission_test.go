package domain_test

import (
	"testing"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPermissionMatrix(t *testing.T) {
	m := domain.DefaultPermissionMatrix()

	tests := []struct {
		name   string
		role   domain.UserRole
		module domain.Module
		want   bool
	}{
		{"admin has settings", domain.RoleAdmin, domain.ModuleSettings, true},
		{"admin has finance", domain.RoleAdmin, domain.ModuleFinance, true},
		{"pastor lacks finance", domain.RolePastor, domain.ModuleFinance, false},
		{"pastor lacks settings", domain.RolePastor, domain.ModuleSettings, false},
		{"pastor has members", domain.RolePastor, domain.ModuleMembers, true},
		{"secretary has attendance", domain.RoleSecretary, domain.ModuleAttendance, true},
		{"secretary lacks settings", domain.RoleSecretary, domain.ModuleSettings, false},
		{"treasurer has finance", domain.RoleTreasurer, domain.ModuleFinance, true},
		{"treasurer lacks members", domain.RoleTreasurer, domain.ModuleMembers, false},
		{"treasurer lacks attendance", domain.RoleTreasurer, domain.ModuleAttendance, false},
		{"treasurer has reports", domain.RoleTreasurer, domain.ModuleReports, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Allows(tt.role, tt.module))
		})
	}
}

func TestPermissionMatrix_Allows_EdgeCases(t *testing.T) {
	m := domain.DefaultPermissionMatrix()

	// Super admin bypasses the matrix entirely.
	assert.True(t, m.Allows(domain.RoleSuperAdmin, domain.ModuleSettings))
	assert.True(t, domain.PermissionMatrix{}.Allows(domain.RoleSuperAdmin, domain.ModuleFinance))

	// Absent role and absent module are both denied.
	assert.False(t, m.Allows(domain.UserRole("janitor"), domain.ModuleDashboard))
	assert.False(t, m.Allows(domain.RoleAdmin, domain.Module("backoffice")))
}

func TestSanitizeRoleModules_AdminKeepsSettings(t *testing.T) {
	flags := domain.ModuleFlags{
		domain.ModuleDashboard: true,
		domain.ModuleSettings:  false, // attempted lockout
	}
	out := domain.SanitizeRoleModules(domain.RoleAdmin, flags)
	assert.True(t, out[domain.ModuleSettings])

	// Input map must not be mutated.
	assert.False(t, flags[domain.ModuleSettings])
}

func TestSanitizeRoleModules_OtherRolesUntouched(t *testing.T) {
	flags := domain.ModuleFlags{domain.ModuleSettings: false, domain.ModuleFinance: true}
	out := domain.SanitizeRoleModules(domain.RoleTreasurer, flags)
	assert.Equal(t, flags, out)
}

func TestParseModule(t *testing.T) {
	m, ok := domain.ParseModule("membros")
	assert.True(t, ok)
	assert.Equal(t, domain.ModuleMembers, m)

	_, ok = domain.ParseModule("membroz")
	assert.False(t, ok)

	_, ok = domain.ParseModule("")
	assert.False(t, ok)
}
