package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"momentsCPT/internal/config"

	"github.com/google/uuid"
)

type Storage interface {
	UploadFile(ctx context.Context, momentID int64, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteFile(ctx context.Context, objectName string) error
	ObjectNameFromURL(fileURL string) string
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

func (m *MinIOClient) UploadFile(ctx context.Context, momentID int64, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".bin"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("moments/%d/%d/%02d/%s%s",
		momentID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	bucket := m.config.MinIO.BucketName

	_, err := m.client.PutObject(ctx, bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"moment-id":         fmt.Sprintf("%d", momentID),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	scheme := "http"
	if m.config.MinIO.UseSSL {
		scheme = "https"
	}

	fileURL := fmt.Sprintf("%s://%s/%s/%s", scheme, m.config.MinIO.Endpoint, bucket, objectName)

	return objectName, fileURL, nil
}

func (m *MinIOClient) DeleteFile(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

// ObjectNameFromURL вырезает имя объекта из сохраненного URL вложения.
// Пустая строка - URL не из нашего бакета.
func (m *MinIOClient) ObjectNameFromURL(fileURL string) string {
	marker := "/" + m.config.MinIO.BucketName + "/"
	idx := strings.Index(fileURL, marker)
	if idx < 0 {
		return ""
	}
	return fileURL[idx+len(marker):]
}
