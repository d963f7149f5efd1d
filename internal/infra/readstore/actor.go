package readstore

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const actorViewColumns = `a.id, a.name, a.email, a.identification, a.role, a.active, a.responsible_party_id, a.phone,
	a.city_ids, a.category_ids, a.promo_title, a.promo_description, a.promo_place_name, a.promo_logo_url,
	a.promo_schedule_label, a.promo_image_url, a.rating_count, a.rating_average, a.created_at`

type ActorReadStore struct {
	db db.DBTX
}

func NewActorReadStore(db db.DBTX) *ActorReadStore {
	return &ActorReadStore{db: db}
}

func (r *ActorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ActorView, error) {
	v, err := scanActorView(r.db.QueryRow(ctx, `SELECT `+actorViewColumns+` FROM actors a WHERE a.id = $1`, id))
	if err != nil {
		return nil, wrapFind("actor", err)
	}
	return v, nil
}

func (r *ActorReadStore) ListByResponsible(ctx context.Context, responsibleID uuid.UUID) ([]*queries.ActorView, error) {
	return collect(ctx, r.db, "failed to list actors by responsible", scanActorView, `
		SELECT `+actorViewColumns+`
		FROM actors a
		WHERE a.responsible_party_id = $1
		ORDER BY a.created_at, a.id`, responsibleID)
}

func (r *ActorReadStore) ListByCitiesWithPromo(ctx context.Context, cityIDs []uuid.UUID) ([]*queries.PlaceView, error) {
	return collect(ctx, r.db, "failed to list places by city", scanPlace, `
		SELECT `+placeColumns+`
		FROM actors a
		WHERE a.role = $1 AND a.active AND a.promo_title <> '' AND a.city_ids && $2::uuid[]
		ORDER BY a.rating_average DESC, a.name, a.id`, actor.RoleLocal.String(), pgconv.UUIDArray(cityIDs))
}

func scanActorView(row rowScanner) (*queries.ActorView, error) {
	var (
		v       queries.ActorView
		average pgtype.Numeric
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Identification, &v.Role, &v.Active,
		&v.ResponsiblePartyID, &v.Phone, &v.CityIDs, &v.CategoryIDs,
		&v.Promotion.Title, &v.Promotion.Description, &v.Promotion.PlaceName, &v.Promotion.LogoURL,
		&v.Promotion.ScheduleLabel, &v.Promotion.ImageURL, &v.Rating.Count, &average, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.Rating.Average = pgconv.DecimalFromNumeric(average)
	return &v, nil
}
