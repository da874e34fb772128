package pgsql

import (
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChurchRepo:     newPgxChurchRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		MemberRepo:     newPgxMemberRepository(dbPool),
		RoomRepo:       newPgxRoomRepository(dbPool),
		VisitorRepo:    newPgxVisitorRepository(dbPool),
		AttendanceRepo: newPgxAttendanceRepository(dbPool),
		FinancialRepo:  newPgxFinancialRepository(dbPool),
		PermissionRepo: newPgxPermissionRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
	}
}
