package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/cache"
	"momentsCPT/internal/config"
	"momentsCPT/internal/models"
)

type TokenService interface {
	Issue(userID int64, username, role string) (string, error)
	Verify(ctx context.Context, tokenString string) (*models.Principal, error)
	Revoke(ctx context.Context, tokenString string) error
}

// Claims - полезная нагрузка токена: sub = имя пользователя,
// плюс числовой ID и роль
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret   []byte
	duration time.Duration
	revoked  cache.RevocationStore
}

func NewTokenService(cfg *config.Config, revoked cache.RevocationStore) TokenService {
	return &tokenService{
		secret:   []byte(cfg.JWTSecretKey),
		duration: cfg.TokenDuration,
		revoked:  revoked,
	}
}

func (s *tokenService) Issue(userID int64, username, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// Verify проверяет подпись, срок действия и список отозванных токенов.
// Отзыв всегда проверяется по внешнему хранилищу, без кеширования в процессе.
// Если хранилище недоступно - отказ, не разрешение.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (*models.Principal, error) {
	claims, err := s.parse(tokenString, true)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.Exists(ctx, revocationKey(tokenString))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDependency, err)
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	return &models.Principal{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Role:     claims.Role,
	}, nil
}

// Revoke помечает токен отозванным на остаток его срока действия.
// Уже истекший токен и так непригоден - ничего не делаем.
// Повторный отзыв перезаписывает ту же запись, вызов идемпотентен.
func (s *tokenService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString, false)
	if err != nil {
		return err
	}

	if claims.ExpiresAt == nil {
		return apperrors.ErrTokenMalformed
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	err = s.revoked.Put(ctx, revocationKey(tokenString), "1", ttl)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDependency, err)
	}

	return nil
}

// parse разбирает и проверяет подпись токена.
// validateClaims выключается при отзыве: истекший токен там не ошибка.
func (s *tokenService) parse(tokenString string, validateClaims bool) (*Claims, error) {
	var opts []jwt.ParserOption
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenMalformed, err)
	}

	if !token.Valid {
		return nil, apperrors.ErrTokenMalformed
	}

	return claims, nil
}

// revocationKey - стабильный ключ токена в хранилище отозванных.
// Сам токен в Redis не кладем, только его хеш.
func revocationKey(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return "revoked:" + hex.EncodeToString(sum[:])
}
