package readstore

import (
	"context"

	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"
	"cuponera-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// placeColumns selects an actor as a public place card; the table must be aliased "a".
const placeColumns = `a.id, COALESCE(NULLIF(a.promo_place_name, ''), a.name), a.phone, a.city_ids,
	a.promo_title, a.promo_description, a.promo_place_name, a.promo_logo_url, a.promo_schedule_label,
	a.promo_image_url, a.rating_count, a.rating_average`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (*queries.PlaceView, error) {
	var (
		p       queries.PlaceView
		average pgtype.Numeric
	)
	if err := row.Scan(&p.ActorID, &p.Name, &p.Phone, &p.CityIDs,
		&p.Promotion.Title, &p.Promotion.Description, &p.Promotion.PlaceName, &p.Promotion.LogoURL,
		&p.Promotion.ScheduleLabel, &p.Promotion.ImageURL, &p.Rating.Count, &average); err != nil {
		return nil, err
	}
	p.Rating.Average = pgconv.DecimalFromNumeric(average)
	return &p, nil
}

func collect[T any](ctx context.Context, q db.DBTX, failMsg string, scan func(rowScanner) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	out, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (T, error) { return scan(r) })
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return out, nil
}

func count(ctx context.Context, q db.DBTX, failMsg, sql string, args ...any) (int, error) {
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr(failMsg, err)
	}
	return n, nil
}
