package access

import (
	"momentsCPT/internal/models"
)

// CanAccess - чистая функция решения о видимости момента.
// Граф подписок сюда не передается: isFollower вычисляет вызывающая сторона,
// и только когда уровень видимости этого требует (см. NeedsFollowCheck).
// Неизвестный уровень видимости всегда означает отказ.
func CanAccess(tier models.Visibility, principal *models.Principal, authorID int64, isFollower bool) bool {
	switch tier {
	case models.VisibilityPublic:
		return true
	case models.VisibilityDraft:
		return principal.IsAdmin() || isOwner(principal, authorID)
	case models.VisibilityFollowersOnly:
		return principal.IsAdmin() || isOwner(principal, authorID) || isFollower
	}
	return false
}

// NeedsFollowCheck - true, если решение для данного принципала может зависеть
// от графа подписок. Позволяет не ходить в граф для Public и для быстрых
// путей владельца/администратора.
func NeedsFollowCheck(tier models.Visibility, principal *models.Principal, authorID int64) bool {
	if tier != models.VisibilityFollowersOnly {
		return false
	}
	return !principal.IsAdmin() && !isOwner(principal, authorID)
}

// CanMutate - правило изменения/удаления ресурса: администратор или владелец.
// Не зависит от уровня видимости. ownerID == 0 означает, что владелец
// не определен - отказ.
func CanMutate(principal *models.Principal, ownerID int64) bool {
	if ownerID == 0 {
		return false
	}
	return principal.IsAdmin() || isOwner(principal, ownerID)
}

func isOwner(principal *models.Principal, ownerID int64) bool {
	return principal != nil && principal.UserID == ownerID
}
