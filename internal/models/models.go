package models

import (
	"time"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Visibility - закрытый набор уровней видимости момента
type Visibility string

const (
	VisibilityPublic        Visibility = "Public"
	VisibilityDraft         Visibility = "Draft"
	VisibilityFollowersOnly Visibility = "FollowersOnly"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityDraft, VisibilityFollowersOnly:
		return true
	}
	return false
}

type User struct {
	UserID       int64  `json:"userId" db:"user_id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

// Principal - аутентифицированная личность запроса; живет один запрос,
// никогда не сохраняется
type Principal struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type Follow struct {
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FollowedID int64     `json:"followedId" db:"followed_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Moment struct {
	MomentID       int64        `json:"momentId" db:"moment_id"`
	AuthorID       int64        `json:"authorId" db:"author_id"`
	IdempotencyKey *string      `json:"idempotencyKey,omitempty" db:"idempotency_key"`
	Text           string       `json:"text" db:"text"`
	Visibility     Visibility   `json:"visibility" db:"visibility"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time    `json:"updatedAt" db:"updated_at"`
	Attachments    []Attachment `json:"attachments,omitempty" db:"-"`
}

type Attachment struct {
	AttachmentID int64     `json:"attachmentId" db:"attachment_id"`
	MomentID     int64     `json:"momentId" db:"moment_id"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
