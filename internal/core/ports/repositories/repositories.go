package repositories

// RepositoryProvider bundles every repository implementation for injection into
// the service container.
type RepositoryProvider struct {
	ChurchRepo     ChurchRepositoryWithTx
	UserRepo       UserRepositoryFacade
	MemberRepo     MemberRepositoryFacade
	RoomRepo       RoomRepositoryFacade
	VisitorRepo    VisitorRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	FinancialRepo  FinancialRepositoryFacade
	PermissionRepo PermissionRepositoryFacade
	ReportingRepo  ReportingRepositoryFacade
}
