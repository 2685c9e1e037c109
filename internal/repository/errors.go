package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"momentsCPT/internal/apperrors"
)

// isUnavailable отличает отказ инфраструктуры (таймаут, обрыв соединения)
// от прикладной ошибки запроса.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapDB оборачивает ошибку БД. Отказы инфраструктуры помечаются
// ErrDependency, чтобы наверху они стали 503, а не 500.
func wrapDB(message string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %v", message, apperrors.ErrDependency, err)
	}
	return fmt.Errorf("%s: %w", message, err)
}
