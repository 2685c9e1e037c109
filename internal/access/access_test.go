package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"momentsCPT/internal/models"
)

const authorID = int64(5)

func admin() *models.Principal {
	return &models.Principal{UserID: 100, Username: "admin", Role: models.RoleAdmin}
}

func owner() *models.Principal {
	return &models.Principal{UserID: authorID, Username: "author", Role: models.RoleUser}
}

func stranger() *models.Principal {
	return &models.Principal{UserID: 42, Username: "stranger", Role: models.RoleUser}
}

func TestCanAccess_TruthTable(t *testing.T) {
	// Полная таблица: уровень видимости x {админ, владелец, подписчик, посторонний}
	tests := []struct {
		name       string
		tier       models.Visibility
		principal  *models.Principal
		isFollower bool
		want       bool
	}{
		{"Public: посторонний без подписки", models.VisibilityPublic, stranger(), false, true},
		{"Public: посторонний с подпиской", models.VisibilityPublic, stranger(), true, true},
		{"Public: владелец", models.VisibilityPublic, owner(), false, true},
		{"Public: админ", models.VisibilityPublic, admin(), false, true},

		{"Draft: посторонний без подписки", models.VisibilityDraft, stranger(), false, false},
		{"Draft: посторонний с подпиской", models.VisibilityDraft, stranger(), true, false},
		{"Draft: владелец", models.VisibilityDraft, owner(), false, true},
		{"Draft: админ", models.VisibilityDraft, admin(), false, true},

		{"FollowersOnly: посторонний без подписки", models.VisibilityFollowersOnly, stranger(), false, false},
		{"FollowersOnly: посторонний с подпиской", models.VisibilityFollowersOnly, stranger(), true, true},
		{"FollowersOnly: владелец", models.VisibilityFollowersOnly, owner(), false, true},
		{"FollowersOnly: админ", models.VisibilityFollowersOnly, admin(), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccess(tt.tier, tt.principal, authorID, tt.isFollower)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanAccess_UnknownTierDenies(t *testing.T) {
	// Неизвестный уровень видимости - отказ, даже для админа
	assert.False(t, CanAccess(models.Visibility("Secret"), admin(), authorID, true))
	assert.False(t, CanAccess(models.Visibility(""), owner(), authorID, true))
}

func TestCanAccess_NilPrincipal(t *testing.T) {
	assert.True(t, CanAccess(models.VisibilityPublic, nil, authorID, false))
	assert.False(t, CanAccess(models.VisibilityDraft, nil, authorID, false))
	assert.False(t, CanAccess(models.VisibilityFollowersOnly, nil, authorID, false))
}

func TestNeedsFollowCheck(t *testing.T) {
	// Граф нужен только для FollowersOnly и только после быстрых путей
	assert.False(t, NeedsFollowCheck(models.VisibilityPublic, stranger(), authorID))
	assert.False(t, NeedsFollowCheck(models.VisibilityDraft, stranger(), authorID))
	assert.True(t, NeedsFollowCheck(models.VisibilityFollowersOnly, stranger(), authorID))
	assert.False(t, NeedsFollowCheck(models.VisibilityFollowersOnly, owner(), authorID))
	assert.False(t, NeedsFollowCheck(models.VisibilityFollowersOnly, admin(), authorID))
}

func TestCanMutate(t *testing.T) {
	assert.True(t, CanMutate(owner(), authorID))
	assert.True(t, CanMutate(admin(), authorID))
	assert.False(t, CanMutate(stranger(), authorID))

	// Владелец не определен - отказ, никогда не разрешение
	assert.False(t, CanMutate(admin(), 0))
	assert.False(t, CanMutate(nil, authorID))
}
