package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsersByChurchID(ctx context.Context, churchID string) ([]domain.User, error) {
	args := m.Called(ctx, churchID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock ChurchRepository ---

type MockChurchRepository struct {
	mock.Mock
}

func (m *MockChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	args := m.Called(ctx, churchID)
	var church *domain.Church
	if args.Get(0) != nil {
		church = args.Get(0).(*domain.Church)
	}
	return church, args.Error(1)
}

func (m *MockChurchRepository) FindChurchBySlug(ctx context.Context, slug string) (*domain.Church, error) {
	args := m.Called(ctx, slug)
	var church *domain.Church
	if args.Get(0) != nil {
		church = args.Get(0).(*domain.Church)
	}
	return church, args.Error(1)
}

func (m *MockChurchRepository) ListChurches(ctx context.Context) ([]domain.Church, error) {
	args := m.Called(ctx)
	var churches []domain.Church
	if args.Get(0) != nil {
		churches = args.Get(0).([]domain.Church)
	}
	return churches, args.Error(1)
}

func (m *MockChurchRepository) RegisterChurch(ctx context.Context, church domain.Church, admin domain.User) error {
	args := m.Called(ctx, church, admin)
	return args.Error(0)
}

func (m *MockChurchRepository) UpdateChurchStatus(ctx context.Context, church *domain.Church, isActive bool, updatedByUserID string) error {
	args := m.Called(ctx, church, isActive, updatedByUserID)
	return args.Error(0)
}

func (m *MockChurchRepository) DeleteChurchCascade(ctx context.Context, churchID string) error {
	args := m.Called(ctx, churchID)
	return args.Error(0)
}

func (m *MockChurchRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockChurchRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockChurchRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock PermissionRepository ---

type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) FindMatrixByChurchID(ctx context.Context, churchID string) (domain.PermissionMatrix, error) {
	args := m.Called(ctx, churchID)
	var matrix domain.PermissionMatrix
	if args.Get(0) != nil {
		matrix = args.Get(0).(domain.PermissionMatrix)
	}
	return matrix, args.Error(1)
}

func (m *MockPermissionRepository) UpsertRolePermission(ctx context.Context, perm domain.RolePermission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

// --- Mock RoomRepository ---

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	var room *domain.Room
	if args.Get(0) != nil {
		room = args.Get(0).(*domain.Room)
	}
	return room, args.Error(1)
}

func (m *MockRoomRepository) ListRoomsByChurchID(ctx context.Context, churchID string) ([]domain.Room, error) {
	args := m.Called(ctx, churchID)
	var rooms []domain.Room
	if args.Get(0) != nil {
		rooms = args.Get(0).([]domain.Room)
	}
	return rooms, args.Error(1)
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

// --- Mock MemberRepository ---

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) ListMembersByChurchID(ctx context.Context, churchID string, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, churchID, limit, offset)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	return members, args.Error(1)
}

func (m *MockMemberRepository) ListMembersByRoomID(ctx context.Context, roomID string) ([]domain.Member, error) {
	args := m.Called(ctx, roomID)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	return members, args.Error(1)
}

func (m *MockMemberRepository) CountActiveMembersByRoomID(ctx context.Context, roomID string) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// --- Mock UserService (for services that depend on the user facade) ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) ListChurchUsers(ctx context.Context, churchID string) ([]domain.User, error) {
	args := m.Called(ctx, churchID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, churchID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, churchID, req, creatorUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock PermissionService ---

type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) GetMatrix(ctx context.Context, churchID string) (domain.PermissionMatrix, error) {
	args := m.Called(ctx, churchID)
	var matrix domain.PermissionMatrix
	if args.Get(0) != nil {
		matrix = args.Get(0).(domain.PermissionMatrix)
	}
	return matrix, args.Error(1)
}

func (m *MockPermissionService) UpdateRolePermission(ctx context.Context, churchID string, role domain.UserRole, flags domain.ModuleFlags, requestingUserID string) (domain.ModuleFlags, error) {
	args := m.Called(ctx, churchID, role, flags, requestingUserID)
	var stored domain.ModuleFlags
	if args.Get(0) != nil {
		stored = args.Get(0).(domain.ModuleFlags)
	}
	return stored, args.Error(1)
}
