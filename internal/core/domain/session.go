package domain

// Session is the resolved, in-memory pairing of an authenticated user and its
// church, plus the effective permission matrix. It is derived on every auth-state
// change and never persisted; no partial session is ever exposed.
type Session struct {
	User        User
	Church      Church
	Permissions PermissionMatrix

	// Churches is populated only for super-admin sessions: the full tenant list
	// for administrative browsing.
	Churches []Church
}

// CanAccess reports whether the session's role may use the given module.
func (s *Session) CanAccess(module Module) bool {
	return s.Permissions.Allows(s.User.Role, module)
}

// DashboardPath is the session's home route, used as the redirect target when a
// guarded request is denied.
func (s *Session) DashboardPath() string {
	return "/" + s.Church.Slug + "/dashboard"
}
