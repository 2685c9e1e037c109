package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"momentsCPT/internal/config"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
	"momentsCPT/internal/service"
)

type contextKey string

const (
	PrincipalKey = contextKey("principal")
	TokenKey     = contextKey("token")
)

type Handlers struct {
	AuthService   service.AuthService
	UserService   service.UserService
	FollowService service.FollowService
	MomentService service.MomentService
	StatsService  service.StatsService
	UserRepo      repository.UserRepository
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		UserService:   service.User,
		FollowService: service.Follow,
		MomentService: service.Moment,
		StatsService:  service.Stats,
		UserRepo:      repo.User,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

// PrincipalFromContext достает принципала, положенного auth-middleware.
// Дальше по ядру принципал передается только явным аргументом.
func PrincipalFromContext(r *http.Request) (*models.Principal, bool) {
	principal, ok := r.Context().Value(PrincipalKey).(*models.Principal)
	return principal, ok && principal != nil
}
