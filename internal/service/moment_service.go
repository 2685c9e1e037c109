package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"momentsCPT/internal/access"
	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
	"momentsCPT/internal/storage"
)

type MomentService interface {
	Create(ctx context.Context, principal *models.Principal, req repository.CreateMomentRequest) (*models.Moment, error)
	Get(ctx context.Context, principal *models.Principal, momentID int64) (*models.Moment, error)
	List(ctx context.Context, principal *models.Principal, authorID *int64) ([]models.Moment, error)
	Update(ctx context.Context, principal *models.Principal, req repository.UpdateMomentRequest) (*models.Moment, error)
	Delete(ctx context.Context, principal *models.Principal, momentID int64) error
	CanView(ctx context.Context, principal *models.Principal, momentID int64) (bool, error)
	CanMutate(ctx context.Context, principal *models.Principal, momentID int64) (bool, error)
	AddAttachment(ctx context.Context, principal *models.Principal, momentID int64, fileName string, file io.Reader, size int64) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, principal *models.Principal, attachmentID int64) error
}

type momentService struct {
	momentRepo     repository.MomentRepository
	followRepo     repository.FollowRepository
	attachmentRepo repository.AttachmentRepository
	storage        storage.Storage
}

func NewMomentService(momentRepo repository.MomentRepository, followRepo repository.FollowRepository,
	attachmentRepo repository.AttachmentRepository, storage storage.Storage) MomentService {
	return &momentService{
		momentRepo:     momentRepo,
		followRepo:     followRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
	}
}

func (s *momentService) Create(ctx context.Context, principal *models.Principal, req repository.CreateMomentRequest) (*models.Moment, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	visibility := models.Visibility(req.Visibility)
	if req.Visibility == "" {
		visibility = models.VisibilityDraft
	}
	if !visibility.Valid() {
		return nil, fmt.Errorf("неизвестный уровень видимости: %s", req.Visibility)
	}

	// Предварительная проверка ключа. Гонку двух одинаковых запросов
	// все равно разрешает частичный уникальный индекс при вставке.
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		free, err := s.momentRepo.CheckIdempotencyKey(ctx, principal.UserID, *req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, fmt.Errorf("ключ идемпотентности %s %w", *req.IdempotencyKey, apperrors.ErrAlreadyExists)
		}
	}

	moment := &models.Moment{
		AuthorID:       principal.UserID,
		IdempotencyKey: req.IdempotencyKey,
		Text:           req.Text,
		Visibility:     visibility,
	}

	err := s.momentRepo.Create(ctx, moment)
	if err != nil {
		return nil, err
	}

	return moment, nil
}

func (s *momentService) Get(ctx context.Context, principal *models.Principal, momentID int64) (*models.Moment, error) {
	moment, err := s.momentRepo.GetByID(ctx, momentID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canView(ctx, principal, moment)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrAccessDenied
	}

	attachments, err := s.attachmentRepo.GetByMomentID(ctx, moment.MomentID)
	if err != nil {
		return nil, err
	}
	moment.Attachments = attachments

	return moment, nil
}

// List возвращает моменты, прошедшие проверку видимости.
// authorID == nil означает всех авторов.
func (s *momentService) List(ctx context.Context, principal *models.Principal, authorID *int64) ([]models.Moment, error) {
	var moments []models.Moment
	var err error

	if authorID != nil {
		moments, err = s.momentRepo.GetByAuthorID(ctx, *authorID)
	} else {
		moments, err = s.momentRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	visible := make([]models.Moment, 0, len(moments))
	for _, moment := range moments {
		allowed, err := s.canView(ctx, principal, &moment)
		if err != nil {
			return nil, err
		}
		if allowed {
			visible = append(visible, moment)
		}
	}

	return visible, nil
}

func (s *momentService) Update(ctx context.Context, principal *models.Principal, req repository.UpdateMomentRequest) (*models.Moment, error) {
	moment, err := s.momentRepo.GetByID(ctx, req.MomentID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(principal, moment.AuthorID) {
		return nil, apperrors.ErrAccessDenied
	}

	if req.Text != "" {
		moment.Text = req.Text
	}
	if req.Visibility != "" {
		visibility := models.Visibility(req.Visibility)
		if !visibility.Valid() {
			return nil, fmt.Errorf("неизвестный уровень видимости: %s", req.Visibility)
		}
		moment.Visibility = visibility
	}

	err = s.momentRepo.Update(ctx, moment)
	if err != nil {
		return nil, err
	}

	return moment, nil
}

func (s *momentService) Delete(ctx context.Context, principal *models.Principal, momentID int64) error {
	moment, err := s.momentRepo.GetByID(ctx, momentID)
	if err != nil {
		return err
	}

	if !access.CanMutate(principal, moment.AuthorID) {
		return apperrors.ErrAccessDenied
	}

	err = s.attachmentRepo.DeleteByMomentID(ctx, momentID)
	if err != nil {
		return err
	}

	return s.momentRepo.Delete(ctx, momentID)
}

func (s *momentService) CanView(ctx context.Context, principal *models.Principal, momentID int64) (bool, error) {
	moment, err := s.momentRepo.GetByID(ctx, momentID)
	if err != nil {
		return false, err
	}

	return s.canView(ctx, principal, moment)
}

func (s *momentService) CanMutate(ctx context.Context, principal *models.Principal, momentID int64) (bool, error) {
	moment, err := s.momentRepo.GetByID(ctx, momentID)
	if err != nil {
		return false, err
	}

	return access.CanMutate(principal, moment.AuthorID), nil
}

func (s *momentService) AddAttachment(ctx context.Context, principal *models.Principal, momentID int64,
	fileName string, file io.Reader, size int64) (*models.Attachment, error) {
	moment, err := s.momentRepo.GetByID(ctx, momentID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(principal, moment.AuthorID) {
		return nil, apperrors.ErrAccessDenied
	}

	objectName, fileURL, err := s.storage.UploadFile(ctx, momentID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки вложения в MinIO: %w", err)
	}

	attachment := &models.Attachment{
		MomentID: momentID,
		FileURL:  fileURL,
	}

	err = s.attachmentRepo.Create(ctx, attachment)
	if err != nil {
		s.storage.DeleteFile(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения вложения в БД: %w", err)
	}

	return attachment, nil
}

func (s *momentService) DeleteAttachment(ctx context.Context, principal *models.Principal, attachmentID int64) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}

	moment, err := s.momentRepo.GetByID(ctx, attachment.MomentID)
	if err != nil {
		return err
	}

	if !access.CanMutate(principal, moment.AuthorID) {
		return apperrors.ErrAccessDenied
	}

	if objectName := s.storage.ObjectNameFromURL(attachment.FileURL); objectName != "" {
		if err := s.storage.DeleteFile(ctx, objectName); err != nil {
			log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
		}
	}

	return s.attachmentRepo.Delete(ctx, attachmentID)
}

// canView - ленивое вычисление: граф подписок опрашивается только когда
// решение действительно от него зависит.
func (s *momentService) canView(ctx context.Context, principal *models.Principal, moment *models.Moment) (bool, error) {
	if principal == nil || !access.NeedsFollowCheck(moment.Visibility, principal, moment.AuthorID) {
		return access.CanAccess(moment.Visibility, principal, moment.AuthorID, false), nil
	}

	isFollower, err := s.followRepo.IsFollowing(ctx, principal.UserID, moment.AuthorID)
	if err != nil {
		return false, err
	}

	return access.CanAccess(moment.Visibility, principal, moment.AuthorID, isFollower), nil
}
