package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"momentsCPT/internal/models"
)

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

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockMomentRepository struct {
	mock.Mock
}

func (m *MockMomentRepository) Create(ctx context.Context, moment *models.Moment) error {
	args := m.Called(ctx, moment)
	return args.Error(0)
}

func (m *MockMomentRepository) GetByID(ctx context.Context, momentID int64) (*models.Moment, error) {
	args := m.Called(ctx, momentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moment), args.Error(1)
}

func (m *MockMomentRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Moment, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Moment), args.Error(1)
}

func (m *MockMomentRepository) GetAll(ctx context.Context) ([]models.Moment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Moment), args.Error(1)
}

func (m *MockMomentRepository) Update(ctx context.Context, moment *models.Moment) error {
	args := m.Called(ctx, moment)
	return args.Error(0)
}

func (m *MockMomentRepository) Delete(ctx context.Context, momentID int64) error {
	args := m.Called(ctx, momentID)
	return args.Error(0)
}

func (m *MockMomentRepository) CheckIdempotencyKey(ctx context.Context, authorID int64, idempotencyKey string) (bool, error) {
	args := m.Called(ctx, authorID, idempotencyKey)
	return args.Bool(0), args.Error(1)
}

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) GetByID(ctx context.Context, attachmentID int64) (*models.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) GetByMomentID(ctx context.Context, momentID int64) ([]models.Attachment, error) {
	args := m.Called(ctx, momentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, attachmentID int64) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

func (m *MockAttachmentRepository) DeleteByMomentID(ctx context.Context, momentID int64) error {
	args := m.Called(ctx, momentID)
	return args.Error(0)
}

// memoryRevocationStore - хранилище отозванных токенов в памяти для тестов
type memoryRevocationStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newMemoryRevocationStore() *memoryRevocationStore {
	return &memoryRevocationStore{entries: make(map[string]time.Time)}
}

func (s *memoryRevocationStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = time.Now().Add(ttl)
	return nil
}

func (s *memoryRevocationStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.entries, key)
		return false, nil
	}
	return true, nil
}

func (s *memoryRevocationStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// failingRevocationStore всегда возвращает ошибку хранилища
type failingRevocationStore struct {
	err error
}

func (s *failingRevocationStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.err
}

func (s *failingRevocationStore) Exists(ctx context.Context, key string) (bool, error) {
	return false, s.err
}
