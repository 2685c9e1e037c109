package service

import (
	"context"

	"momentsCPT/internal/repository"
)

type Stats struct {
	Users   int `json:"users"`
	Moments int `json:"moments"`
	Follows int `json:"follows"`
}

type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*Stats, error) {
	users, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	moments, err := s.statsRepo.CountMoments(ctx)
	if err != nil {
		return nil, err
	}

	follows, err := s.statsRepo.CountFollows(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{Users: users, Moments: moments, Follows: follows}, nil
}
