package domain

// Module is the closed set of functional areas gated by the permission matrix.
// Keys keep the pt-BR names the URL surface uses.
type Module string

const (
	ModuleDashboard  Module = "dashboard"
	ModuleMembers    Module = "membros"
	ModuleAttendance Module = "chamada"
	ModuleReports    Module = "relatorios"
	ModuleFinance    Module = "financeiro"
	ModuleSettings   Module = "configuracoes"
)

// Modules lists every known module in menu order.
var Modules = []Module{
	ModuleDashboard,
	ModuleMembers,
	ModuleAttendance,
	ModuleReports,
	ModuleFinance,
	ModuleSettings,
}

// ParseModule maps a URL path segment to a Module. Unknown segments return false,
// which the guard treats as denied: a typo'd key can never grant access.
func ParseModule(s string) (Module, bool) {
	for _, m := range Modules {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ModuleFlags maps each module to an allowed flag.
type ModuleFlags map[Module]bool

// RolePermission is one stored matrix row: the module flags for a role within a church.
type RolePermission struct {
	ChurchID string      `json:"churchID"`
	Role     UserRole    `json:"role"`
	Modules  ModuleFlags `json:"modules"`
	AuditFields
}

// PermissionMatrix is the per-church mapping (role, module) -> allowed, consulted
// on every guarded request.
type PermissionMatrix map[UserRole]ModuleFlags

// Allows reports whether the matrix grants role access to module. Absent roles
// and absent modules are denied.
func (pm PermissionMatrix) Allows(role UserRole, module Module) bool {
	if role == RoleSuperAdmin {
		return true
	}
	flags, ok := pm[role]
	if !ok {
		return false
	}
	return flags[module]
}

// DefaultPermissionMatrix returns the hard-coded fallback matrix used when a church
// has no stored rows. Admin gets everything; pastor and secretary everything except
// finance and settings; treasurer only dashboard, reports and finance.
func DefaultPermissionMatrix() PermissionMatrix {
	return PermissionMatrix{
		RoleAdmin: {
			ModuleDashboard: true, ModuleMembers: true, ModuleAttendance: true,
			ModuleReports: true, ModuleFinance: true, ModuleSettings: true,
		},
		RolePastor: {
			ModuleDashboard: true, ModuleMembers: true, ModuleAttendance: true,
			ModuleReports: true, ModuleFinance: false, ModuleSettings: false,
		},
		RoleSecretary: {
			ModuleDashboard: true, ModuleMembers: true, ModuleAttendance: true,
			ModuleReports: true, ModuleFinance: false, ModuleSettings: false,
		},
		RoleTreasurer: {
			ModuleDashboard: true, ModuleMembers: false, ModuleAttendance: false,
			ModuleReports: true, ModuleFinance: true, ModuleSettings: false,
		},
	}
}

// SanitizeRoleModules enforces the lockout guard: the admin role keeps its settings
// flag true no matter what the caller passed. Unknown keys are kept as-is; the guard
// only ever consults the closed Module set, so they are inert.
func SanitizeRoleModules(role UserRole, flags ModuleFlags) ModuleFlags {
	out := make(ModuleFlags, len(flags))
	for k, v := range flags {
		out[k] = v
	}
	if role == RoleAdmin {
		out[ModuleSettings] = true
	}
	return out
}
