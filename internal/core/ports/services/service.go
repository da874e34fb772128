package services

// ServiceContainer holds instances of all the application services. This is the
// main entry point for accessing service functionality and is used throughout
// the application, particularly in the handlers and the route guard.
type ServiceContainer struct {
	Session    SessionSvcFacade
	Token      TokenSvcFacade
	Church     ChurchSvcFacade
	User       UserSvcFacade
	Member     MemberSvcFacade
	Room       RoomSvcFacade
	Visitor    VisitorSvcFacade
	Attendance AttendanceSvcFacade
	Financial  FinancialSvcFacade
	Permission PermissionSvcFacade
	Reporting  ReportingSvcFacade
}
