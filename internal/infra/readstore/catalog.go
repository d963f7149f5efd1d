package readstore

import (
	"context"
	"strings"

	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

const (
	cityViewColumns     = `id, name, active, visible_for_registration, geo_lat, geo_lng, created_at, updated_at`
	categoryViewColumns = `id, name, description, icon, active, created_at, updated_at`
	// catalogFilter expects $1 as an escaped ILIKE pattern (empty for none) and $2 as a nullable flag.
	catalogFilter = `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%') AND ($2::boolean IS NULL OR active = $2)`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *CatalogReadStore) ListCities(ctx context.Context, f queries.CatalogFilter) ([]*queries.CityView, int, error) {
	pattern := likeEscaper.Replace(strings.TrimSpace(f.Query))
	total, err := count(ctx, r.db, "failed to count cities", `SELECT count(*) FROM cities `+catalogFilter, pattern, f.Active)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(ctx, r.db, "failed to list cities", scanCityView, `
		SELECT `+cityViewColumns+` FROM cities `+catalogFilter+`
		ORDER BY name, id
		LIMIT $3 OFFSET $4`, pattern, f.Active, f.Limit, f.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CatalogReadStore) FindCity(ctx context.Context, id uuid.UUID) (*queries.CityView, error) {
	v, err := scanCityView(r.db.QueryRow(ctx, `SELECT `+cityViewColumns+` FROM cities WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("city", err)
	}
	return v, nil
}

func (r *CatalogReadStore) RegistrationCities(ctx context.Context) ([]queries.CityRef, error) {
	return collect(ctx, r.db, "failed to list registration cities", scanCity,
		`SELECT id, name FROM cities WHERE visible_for_registration ORDER BY name`)
}

func (r *CatalogReadStore) ActiveCities(ctx context.Context) ([]queries.CityRef, error) {
	return collect(ctx, r.db, "failed to list cities", scanCity, `SELECT id, name FROM cities WHERE active ORDER BY name`)
}

func (r *CatalogReadStore) ListCategories(ctx context.Context, f queries.CatalogFilter) ([]*queries.CategoryView, int, error) {
	pattern := likeEscaper.Replace(strings.TrimSpace(f.Query))
	total, err := count(ctx, r.db, "failed to count categories", `SELECT count(*) FROM categories `+catalogFilter, pattern, f.Active)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(ctx, r.db, "failed to list categories", scanCategoryView, `
		SELECT `+categoryViewColumns+` FROM categories `+catalogFilter+`
		ORDER BY name, id
		LIMIT $3 OFFSET $4`, pattern, f.Active, f.Limit, f.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CatalogReadStore) FindCategory(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	v, err := scanCategoryView(r.db.QueryRow(ctx, `SELECT `+categoryViewColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("category", err)
	}
	return v, nil
}

func (r *CatalogReadStore) ActiveCategories(ctx context.Context) ([]queries.CategoryRef, error) {
	return collect(ctx, r.db, "failed to list categories", scanCategory,
		`SELECT id, name FROM categories WHERE active ORDER BY name`)
}

func (r *CatalogReadStore) CitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]queries.CityRef, error) {
	if len(ids) == 0 {
		return []queries.CityRef{}, nil
	}
	return collect(ctx, r.db, "failed to resolve cities", scanCity,
		`SELECT id, name FROM cities WHERE id = ANY($1) ORDER BY name`, pgconv.UUIDArray(ids))
}

func (r *CatalogReadStore) CategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]queries.CategoryRef, error) {
	if len(ids) == 0 {
		return []queries.CategoryRef{}, nil
	}
	return collect(ctx, r.db, "failed to resolve categories", scanCategory,
		`SELECT id, name FROM categories WHERE id = ANY($1) ORDER BY name`, pgconv.UUIDArray(ids))
}

func scanCity(row rowScanner) (queries.CityRef, error) {
	var c queries.CityRef
	err := row.Scan(&c.ID, &c.Name)
	return c, err
}

func scanCategory(row rowScanner) (queries.CategoryRef, error) {
	var c queries.CategoryRef
	err := row.Scan(&c.ID, &c.Name)
	return c, err
}

func scanCityView(row rowScanner) (*queries.CityView, error) {
	var (
		v        queries.CityView
		lat, lng *float64
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Active, &v.VisibleForRegistration, &lat, &lng, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		v.Geo = &queries.GeoView{Lat: *lat, Lng: *lng}
	}
	return &v, nil
}

func scanCategoryView(row rowScanner) (*queries.CategoryView, error) {
	var v queries.CategoryView
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Icon, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
