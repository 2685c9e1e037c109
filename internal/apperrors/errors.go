package apperrors

import "errors"

// Сентинельные ошибки ядра. Сервисы оборачивают их через fmt.Errorf с %w,
// хендлеры разбирают через errors.Is и переводят в HTTP-статусы.
var (
	ErrNotFound        = errors.New("не найдено")
	ErrAlreadyExists   = errors.New("уже существует")
	ErrSelfFollow      = errors.New("нельзя подписаться на самого себя")
	ErrSelfUnfollow    = errors.New("нельзя отписаться от самого себя")
	ErrBadCredentials  = errors.New("неверное имя пользователя или пароль")
	ErrTokenMalformed  = errors.New("недействительный токен")
	ErrTokenExpired    = errors.New("токен истек")
	ErrTokenRevoked    = errors.New("токен отозван")
	ErrUnauthenticated = errors.New("требуется аутентификация")
	ErrAccessDenied    = errors.New("доступ запрещен")
	ErrDependency      = errors.New("хранилище недоступно")
)
