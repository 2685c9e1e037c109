package main

import (
	"fmt"
	"log"
	"momentsCPT/cmd/app"
	"momentsCPT/internal/config"
	"momentsCPT/internal/database"
	handlers "momentsCPT/internal/handler"
	"momentsCPT/internal/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", handler.Logout).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", handler.UpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{id}", handler.DeleteUser).Methods(http.MethodDelete)

	router.HandleFunc("/api/users/{id}/follow", handler.Follow).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id}/follow", handler.Unfollow).Methods(http.MethodDelete)
	router.HandleFunc("/api/users/{id}/follow", handler.IsFollowing).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/followers", handler.ListFollowers).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/following", handler.ListFollowing).Methods(http.MethodGet)

	router.HandleFunc("/api/moments", handler.ListMoments).Methods(http.MethodGet)
	router.HandleFunc("/api/moments", handler.CreateMoment).Methods(http.MethodPost)
	router.HandleFunc("/api/moments/{id}", handler.GetMoment).Methods(http.MethodGet)
	router.HandleFunc("/api/moments/{id}", handler.UpdateMoment).Methods(http.MethodPut)
	router.HandleFunc("/api/moments/{id}", handler.DeleteMoment).Methods(http.MethodDelete)

	router.HandleFunc("/api/moments/{id}/attachments", handler.AddAttachment).Methods(http.MethodPost)
	router.HandleFunc("/api/attachments/{id}", handler.DeleteAttachment).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
