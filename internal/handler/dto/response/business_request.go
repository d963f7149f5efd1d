package response

import "cuponera-backend/internal/usecase/queries"

type BusinessRequestListResponse struct {
	Items      []*queries.BusinessRequestView `json:"items"`
	NextCursor string                         `json:"next_cursor,omitempty"`
}

func FromBusinessRequestPage(items []*queries.BusinessRequestView, next *queries.Cursor) *BusinessRequestListResponse {
	res := &BusinessRequestListResponse{Items: items}
	if res.Items == nil {
		res.Items = []*queries.BusinessRequestView{}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type EmailAvailabilityResponse struct {
	Email     string `json:"email"`
	Available bool   `json:"available"`
}
