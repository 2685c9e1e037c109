package handlers

import (
	"context"
	"net/http"

	"momentsCPT/internal/models"
)

type FollowResponse struct {
	Message string `json:"message"`
	Changed bool   `json:"changed"`
}

// Follow - подписка текущего пользователя на пользователя из URL.
// Повторная подписка - не ошибка, changed=false.
func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	followedID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	created, err := h.FollowService.Follow(r.Context(), principal.UserID, followedID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if created {
		WriteSuccess(w, FollowResponse{Message: "Подписка создана", Changed: true}, http.StatusCreated)
		return
	}

	WriteSuccess(w, FollowResponse{Message: "Подписка уже существует", Changed: false}, http.StatusOK)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	followedID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	removed, err := h.FollowService.Unfollow(r.Context(), principal.UserID, followedID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if removed {
		WriteSuccess(w, FollowResponse{Message: "Подписка удалена", Changed: true}, http.StatusOK)
		return
	}

	WriteSuccess(w, FollowResponse{Message: "Подписки не было", Changed: false}, http.StatusOK)
}

func (h *Handlers) IsFollowing(w http.ResponseWriter, r *http.Request) {
	followedID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	following, err := h.FollowService.IsFollowing(r.Context(), principal.UserID, followedID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"following": following}, http.StatusOK)
}

// Списки подписчиков и подписок не фильтруются правилами видимости
// контента - они возвращают пользователей, а не моменты.
func (h *Handlers) ListFollowers(w http.ResponseWriter, r *http.Request) {
	h.writeUserList(w, r, h.FollowService.ListFollowers)
}

func (h *Handlers) ListFollowing(w http.ResponseWriter, r *http.Request) {
	h.writeUserList(w, r, h.FollowService.ListFollowing)
}

func (h *Handlers) writeUserList(w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context, userID int64) ([]models.User, error)) {
	userID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	if _, ok := PrincipalFromContext(r); !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	users, err := list(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userResponse(&users[i]))
	}

	WriteSuccess(w, responses, http.StatusOK)
}
