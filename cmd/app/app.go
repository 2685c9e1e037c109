package app

import (
	"log"
	"momentsCPT/internal/cache"
	"momentsCPT/internal/config"
	"momentsCPT/internal/database"
	"momentsCPT/internal/repository"
	"momentsCPT/internal/service"
	"momentsCPT/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection Redis
	revoked, err := cache.NewRedisStore(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к Redis: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, revoked)

	return db, repo, services
}
