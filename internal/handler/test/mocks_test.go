package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
	"momentsCPT/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, tokenString string) (*models.Principal, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, principal *models.Principal, req repository.UpdateUserRequest) error {
	args := m.Called(ctx, principal, req)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, principal *models.Principal, userID int64) error {
	args := m.Called(ctx, principal, userID)
	return args.Error(0)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) ListFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowService) ListFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockMomentService struct {
	mock.Mock
}

func (m *MockMomentService) Create(ctx context.Context, principal *models.Principal, req repository.CreateMomentRequest) (*models.Moment, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moment), args.Error(1)
}

func (m *MockMomentService) Get(ctx context.Context, principal *models.Principal, momentID int64) (*models.Moment, error) {
	args := m.Called(ctx, principal, momentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moment), args.Error(1)
}

func (m *MockMomentService) List(ctx context.Context, principal *models.Principal, authorID *int64) ([]models.Moment, error) {
	args := m.Called(ctx, principal, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Moment), args.Error(1)
}

func (m *MockMomentService) Update(ctx context.Context, principal *models.Principal, req repository.UpdateMomentRequest) (*models.Moment, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moment), args.Error(1)
}

func (m *MockMomentService) Delete(ctx context.Context, principal *models.Principal, momentID int64) error {
	args := m.Called(ctx, principal, momentID)
	return args.Error(0)
}

func (m *MockMomentService) CanView(ctx context.Context, principal *models.Principal, momentID int64) (bool, error) {
	args := m.Called(ctx, principal, momentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMomentService) CanMutate(ctx context.Context, principal *models.Principal, momentID int64) (bool, error) {
	args := m.Called(ctx, principal, momentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMomentService) AddAttachment(ctx context.Context, principal *models.Principal, momentID int64, fileName string, file io.Reader, size int64) (*models.Attachment, error) {
	args := m.Called(ctx, principal, momentID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attachment), args.Error(1)
}

func (m *MockMomentService) DeleteAttachment(ctx context.Context, principal *models.Principal, attachmentID int64) error {
	args := m.Called(ctx, principal, attachmentID)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
