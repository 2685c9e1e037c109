package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"momentsCPT/internal/repository"
)

type CreateMomentRequest struct {
	Text           string  `json:"text" validate:"required,max=1000"`
	Visibility     string  `json:"visibility" validate:"omitempty,oneof=Public Draft FollowersOnly"`
	IdempotencyKey *string `json:"idempotencyKey" validate:"omitempty"`
}

type UpdateMomentRequest struct {
	Text       string `json:"text" validate:"omitempty,max=1000"`
	Visibility string `json:"visibility" validate:"omitempty,oneof=Public Draft FollowersOnly"`
}

func (h *Handlers) CreateMoment(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateMomentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateMomentRequest{
		AuthorID:       principal.UserID,
		IdempotencyKey: req.IdempotencyKey,
		Text:           req.Text,
		Visibility:     req.Visibility,
	}

	moment, err := h.MomentService.Create(r.Context(), principal, serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, moment, http.StatusCreated)
}

func (h *Handlers) GetMoment(w http.ResponseWriter, r *http.Request) {
	momentID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID момента", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	moment, err := h.MomentService.Get(r.Context(), principal, momentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, moment, http.StatusOK)
}

// ListMoments возвращает видимые моменты. Параметр authorId не задан -
// кандидаты все моменты, фильтрация та же.
func (h *Handlers) ListMoments(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var authorID *int64
	if raw := r.URL.Query().Get("authorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			WriteError(w, "Неверный ID автора", http.StatusBadRequest)
			return
		}
		authorID = &id
	}

	moments, err := h.MomentService.List(r.Context(), principal, authorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, moments, http.StatusOK)
}

func (h *Handlers) UpdateMoment(w http.ResponseWriter, r *http.Request) {
	momentID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID момента", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req UpdateMomentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateMomentRequest{
		MomentID:   momentID,
		Text:       req.Text,
		Visibility: req.Visibility,
	}

	moment, err := h.MomentService.Update(r.Context(), principal, serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, moment, http.StatusOK)
}

func (h *Handlers) DeleteMoment(w http.ResponseWriter, r *http.Request) {
	momentID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID момента", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.MomentService.Delete(r.Context(), principal, momentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Момент удален"}, http.StatusOK)
}

func (h *Handlers) AddAttachment(w http.ResponseWriter, r *http.Request) {
	momentID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID момента", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Отсутствует файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	attachment, err := h.MomentService.AddAttachment(r.Context(), principal, momentID,
		header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, attachment, http.StatusCreated)
}

func (h *Handlers) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentID, ok := parseID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID вложения", http.StatusBadRequest)
		return
	}

	principal, ok := PrincipalFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.MomentService.DeleteAttachment(r.Context(), principal, attachmentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Вложение удалено"}, http.StatusOK)
}
