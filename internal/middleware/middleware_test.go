package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"momentsCPT/internal/apperrors"
	handlers "momentsCPT/internal/handler"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (*models.Principal, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

// captureHandler фиксирует, дошел ли запрос, и принципала из контекста
type captureHandler struct {
	called    bool
	principal *models.Principal
}

func (p *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.called = true
	if principal, ok := r.Context().Value(handlers.PrincipalKey).(*models.Principal); ok {
		p.principal = principal
	}
	w.WriteHeader(http.StatusOK)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authService := new(mockAuthService)
	next := &captureHandler{}

	authService.On("Authenticate", mock.Anything, "valid-token").
		Return(&models.Principal{UserID: 1, Username: "alice", Role: models.RoleUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/moments", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()

	AuthMiddleware(authService)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, next.called)
	if assert.NotNil(t, next.principal) {
		assert.Equal(t, int64(1), next.principal.UserID)
		assert.Equal(t, "alice", next.principal.Username)
	}

	authService.AssertExpectations(t)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authService := new(mockAuthService)
	next := &captureHandler{}

	req := httptest.NewRequest(http.MethodGet, "/api/moments", nil)
	rr := httptest.NewRecorder()

	AuthMiddleware(authService)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
	authService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	authService := new(mockAuthService)
	next := &captureHandler{}

	req := httptest.NewRequest(http.MethodGet, "/api/moments", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()

	AuthMiddleware(authService)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_TokenErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "истекший токен",
			err:            apperrors.ErrTokenExpired,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "отозванный токен",
			err:            apperrors.ErrTokenRevoked,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "мусорный токен",
			err:            apperrors.ErrTokenMalformed,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			// fail closed: сбой хранилища не превращается в пропуск
			name:           "хранилище недоступно",
			err:            fmt.Errorf("%w: connection refused", apperrors.ErrDependency),
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(mockAuthService)
			next := &captureHandler{}

			authService.On("Authenticate", mock.Anything, "some-token").
				Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/moments", nil)
			req.Header.Set("Authorization", "Bearer some-token")
			rr := httptest.NewRecorder()

			AuthMiddleware(authService)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.False(t, next.called)
			authService.AssertExpectations(t)
		})
	}
}

func TestAuthMiddleware_PublicPaths(t *testing.T) {
	// Публичные эндпоинты проходят без токена, включая logout
	for _, path := range []string{"/api/auth/login", "/api/auth/logout", "/health"} {
		t.Run(path, func(t *testing.T) {
			authService := new(mockAuthService)
			next := &captureHandler{}

			req := httptest.NewRequest(http.MethodPost, path, nil)
			rr := httptest.NewRecorder()

			AuthMiddleware(authService)(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, next.called)
			authService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
		})
	}
}

func TestChain_Order(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Chain(final, tag("inner"), tag("outer")).ServeHTTP(rr, req)

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
