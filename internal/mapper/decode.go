package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/ZetoOfficial/vk-toolkit/internal/models"
)

// DecodeGroupType возвращает тип сообщества; неизвестные значения дают GroupTypeUndefined.
func DecodeGroupType(raw string) models.GroupType {
	switch raw {
	case "page":
		return models.GroupTypePage
	case "event":
		return models.GroupTypeEvent
	case "group":
		return models.GroupTypeGroup
	default:
		return models.GroupTypeUndefined
	}
}

// DecodeFriendStatus возвращает статус дружбы по коду VK API.
// Unlike DecodeGroupType it rejects unknown codes.
func DecodeFriendStatus(code int64) (models.FriendStatus, error) {
	switch code {
	case 0:
		return models.NotFriend, nil
	case 1:
		return models.OutputRequest, nil
	case 2:
		return models.InputRequest, nil
	case 3:
		return models.Friend, nil
	default:
		return 0, fmt.Errorf("friend_status %d not defined: %w", code, ErrInvalidArgument)
	}
}

// UnixToLocalTime converts seconds since the Unix epoch to local time.
func UnixToLocalTime(seconds int64) time.Time {
	return time.Unix(seconds, 0).In(time.Local)
}

// JoinCommaSeparated renders items with their default format, comma-joined.
func JoinCommaSeparated[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ",")
}
