package service

import (
	"momentsCPT/internal/cache"
	"momentsCPT/internal/config"
	"momentsCPT/internal/repository"
	"momentsCPT/internal/storage"
)

type Service struct {
	Auth   AuthService
	Token  TokenService
	User   UserService
	Follow FollowService
	Moment MomentService
	Stats  StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, revoked cache.RevocationStore) *Service {
	tokens := NewTokenService(cfg, revoked)

	return &Service{
		Auth:   NewAuthService(rep.User, tokens),
		Token:  tokens,
		User:   NewUserService(rep.User),
		Follow: NewFollowService(rep.Follow, rep.User),
		Moment: NewMomentService(rep.Moment, rep.Follow, rep.Attachment, storage),
		Stats:  NewStatsService(rep.Stats),
	}
}
