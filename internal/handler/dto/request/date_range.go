package request

import (
	"cuponera-backend/internal/pkg/localtime"
	"cuponera-backend/internal/usecase/queries"
)

type DateRangeQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// Parse leaves missing bounds open.
func (q *DateRangeQuery) Parse() (queries.DateRange, error) {
	var r queries.DateRange
	if q.Start != "" {
		t, err := localtime.ParseDate(q.Start)
		if err != nil {
			return queries.DateRange{}, err
		}
		r.From = &t
	}
	if q.End != "" {
		t, err := localtime.ParseDate(q.End)
		if err != nil {
			return queries.DateRange{}, err
		}
		r.To = &t
	}
	return r, nil
}

type RequiredDateRangeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
