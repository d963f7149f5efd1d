package response

import (
	"cuponera-backend/internal/usecase/queries"
)

type FavoriteResponse struct {
	Favorite bool `json:"favorite"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type NotificationListResponse struct {
	Items      []*queries.NotificationView `json:"items"`
	NextCursor string                      `json:"next_cursor,omitempty"`
}

func FromNotificationPage(items []*queries.NotificationView, next *queries.Cursor) *NotificationListResponse {
	res := &NotificationListResponse{Items: items}
	if res.Items == nil {
		res.Items = []*queries.NotificationView{}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
