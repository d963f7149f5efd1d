package repository

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

const (
	CityColumns     = `id, name, active, visible_for_registration, geo_lat, geo_lng, created_at, updated_at`
	CategoryColumns = `id, name, description, icon, active, created_at, updated_at`
)

// CatalogRepository writes cities and categories. Batches and actors reference them
// through uuid arrays, so deletes check references explicitly.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) CreateCity(ctx context.Context, tx db.DBTX, c *catalog.City) error {
	lat, lng := geoArgs(c.Geo())
	_, err := tx.Exec(ctx, `
		INSERT INTO cities (id, name, active, visible_for_registration, geo_lat, geo_lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), c.Name(), c.Active(), c.VisibleForRegistration(), lat, lng, c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create city", err)
	}
	return nil
}

func (r *CatalogRepository) LockCity(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.City, error) {
	c, err := ScanCity(tx.QueryRow(ctx, `SELECT `+CityColumns+` FROM cities WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock city", err)
	}
	return c, nil
}

func (r *CatalogRepository) UpdateCity(ctx context.Context, tx db.DBTX, c *catalog.City) error {
	lat, lng := geoArgs(c.Geo())
	return execOne(ctx, tx, "city not found", "failed to update city", `
		UPDATE cities
		SET name = $2, active = $3, visible_for_registration = $4, geo_lat = $5, geo_lng = $6, updated_at = $7
		WHERE id = $1`,
		c.ID(), c.Name(), c.Active(), c.VisibleForRegistration(), lat, lng, c.UpdatedAt(),
	)
}

func (r *CatalogRepository) DeleteCity(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "city not found", "failed to delete city", `DELETE FROM cities WHERE id = $1`, id)
}

func (r *CatalogRepository) CityReferenced(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	var used bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM batches WHERE $1 = ANY(city_ids))
			OR EXISTS (SELECT 1 FROM actors WHERE $1 = ANY(city_ids))`, id).Scan(&used)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check city references", err)
	}
	return used, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, tx db.DBTX, c *catalog.Category) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO categories (id, name, description, icon, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID(), c.Name(), c.Description(), c.Icon(), c.Active(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

func (r *CatalogRepository) LockCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.Category, error) {
	c, err := ScanCategory(tx.QueryRow(ctx, `SELECT `+CategoryColumns+` FROM categories WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock category", err)
	}
	return c, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, tx db.DBTX, c *catalog.Category) error {
	return execOne(ctx, tx, "category not found", "failed to update category", `
		UPDATE categories
		SET name = $2, description = $3, icon = $4, active = $5, updated_at = $6
		WHERE id = $1`,
		c.ID(), c.Name(), c.Description(), c.Icon(), c.Active(), c.UpdatedAt(),
	)
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "category not found", "failed to delete category", `DELETE FROM categories WHERE id = $1`, id)
}

func (r *CatalogRepository) CategoryReferenced(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	var used bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM actors WHERE $1 = ANY(category_ids))`, id).Scan(&used)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check category references", err)
	}
	return used, nil
}

func geoArgs(g *catalog.Geo) (lat, lng *float64) {
	if g == nil {
		return nil, nil
	}
	return &g.Lat, &g.Lng
}

func ScanCity(row rowScanner) (*catalog.City, error) {
	var (
		id                   uuid.UUID
		name                 string
		active, visible      bool
		lat, lng             *float64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &active, &visible, &lat, &lng, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var geo *catalog.Geo
	if lat != nil && lng != nil {
		geo = &catalog.Geo{Lat: *lat, Lng: *lng}
	}
	return catalog.ReconstructCity(id, name, active, visible, geo, createdAt, updatedAt), nil
}

func ScanCategory(row rowScanner) (*catalog.Category, error) {
	var (
		id                      uuid.UUID
		name, description, icon string
		active                  bool
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(&id, &name, &description, &icon, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return catalog.ReconstructCategory(id, name, description, icon, active, createdAt, updatedAt), nil
}
