package repository

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const ActorColumns = `id, name, email, identification, password_hash, role, active, responsible_party_id, phone,
	city_ids, category_ids, promo_title, promo_description, promo_place_name, promo_logo_url,
	promo_schedule_label, promo_image_url, rating_sum, rating_count, rating_average, created_at, updated_at`

type ActorRepository struct{}

func NewActorRepository() *ActorRepository {
	return &ActorRepository{}
}

func (r *ActorRepository) Create(ctx context.Context, tx db.DBTX, a *actor.Actor) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO actors (id, name, email, identification, password_hash, role, active, responsible_party_id,
			phone, city_ids, category_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID(), a.Name(), a.Email(), a.Identification(), a.PasswordHash(), a.Role().String(), a.IsActive(),
		a.ResponsiblePartyID(), a.Phone(), pgconv.UUIDArray(a.CityIDs()), pgconv.UUIDArray(a.CategoryIDs()),
		a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create actor", err)
	}
	return nil
}

func (r *ActorRepository) UpdatePromotion(ctx context.Context, tx db.DBTX, a *actor.Actor) error {
	p := a.Promotion()
	return execOne(ctx, tx, "actor not found", "failed to update promotion", `
		UPDATE actors
		SET promo_title = $2, promo_description = $3, promo_place_name = $4, promo_logo_url = $5,
			promo_schedule_label = $6, promo_image_url = $7, updated_at = $8
		WHERE id = $1`,
		a.ID(), p.Title, p.Description, p.PlaceName, p.LogoURL, p.ScheduleLabel, p.ImageURL, a.UpdatedAt(),
	)
}

// ScanActor maps a row selected with ActorColumns.
func ScanActor(row rowScanner) (*actor.Actor, error) {
	var (
		s       actor.Snapshot
		role    string
		average pgtype.Numeric
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Identification, &s.PasswordHash, &role, &s.Active,
		&s.ResponsiblePartyID, &s.Phone, &s.CityIDs, &s.CategoryIDs,
		&s.Promotion.Title, &s.Promotion.Description, &s.Promotion.PlaceName, &s.Promotion.LogoURL,
		&s.Promotion.ScheduleLabel, &s.Promotion.ImageURL,
		&s.Rating.Sum, &s.Rating.Count, &average, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Role = actor.Role(role)
	s.Rating.Average = pgconv.DecimalFromNumeric(average)
	return actor.Reconstruct(s), nil
}
