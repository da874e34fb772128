package services

import (
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first since auth, tokens and tenancy all depend on it
	container.User = NewUserService(repos.UserRepo)

	container.Permission = NewPermissionService(repos.PermissionRepo)
	container.Session = NewSessionService(container.User, repos.ChurchRepo, container.Permission)
	container.Token = NewTokenService(cfg, container.User)
	container.Church = NewChurchService(repos.ChurchRepo, container.User)

	container.Member = NewMemberService(repos.MemberRepo, repos.RoomRepo)
	container.Room = NewRoomService(repos.RoomRepo, repos.MemberRepo)
	container.Visitor = NewVisitorService(repos.VisitorRepo, repos.RoomRepo)
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.RoomRepo, repos.MemberRepo)
	container.Financial = NewFinancialService(repos.FinancialRepo, repos.MemberRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SessionSvcFacade    = (*sessionService)(nil)
	_ portssvc.ChurchSvcFacade     = (*churchService)(nil)
	_ portssvc.PermissionSvcFacade = (*permissionService)(nil)
)
