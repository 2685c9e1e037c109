package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"momentsCPT/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError переводит ошибку ядра в HTTP-статус.
// AccessDenied никогда не маскируется под NotFound и наоборот.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrAlreadyExists):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrSelfFollow),
		errors.Is(err, apperrors.ErrSelfUnfollow):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrBadCredentials):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrAccessDenied):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrTokenMalformed),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenRevoked):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrDependency):
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
