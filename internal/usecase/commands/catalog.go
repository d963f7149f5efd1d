package commands

import (
	"context"

	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	cityErrs = repoErrs{
		notFound:  catalog.ErrCityNotFound,
		duplicate: catalog.ErrDuplicateCityName,
		byConstraint: map[string]error{
			"cities_geo_check": catalog.ErrInvalidGeo,
		},
	}
	categoryErrs = repoErrs{
		notFound:  catalog.ErrCategoryNotFound,
		duplicate: catalog.ErrDuplicateCategoryName,
	}
)

type CreateCityInput struct {
	Name                   string
	Geo                    *catalog.Geo
	VisibleForRegistration bool
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
}

type CatalogCommands interface {
	CreateCity(ctx context.Context, in CreateCityInput) (uuid.UUID, error)
	UpdateCity(ctx context.Context, id uuid.UUID, patch catalog.CityPatch) error
	SetCityActive(ctx context.Context, id uuid.UUID, active bool) error
	// DeleteCity refuses cities still listed by a batch or an actor.
	DeleteCity(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, in CreateCategoryInput) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch catalog.CategoryPatch) error
	SetCategoryActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (uc *catalogCommandsImpl) CreateCity(ctx context.Context, in CreateCityInput) (uuid.UUID, error) {
	c, err := catalog.NewCity(in.Name, in.Geo, in.VisibleForRegistration, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Catalog().CreateCity(ctx, tx.DB(), c), cityErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *catalogCommandsImpl) UpdateCity(ctx context.Context, id uuid.UUID, patch catalog.CityPatch) error {
	return uc.withCity(ctx, id, func(c *catalog.City) error {
		return c.Apply(patch, uc.clock.Now())
	})
}

func (uc *catalogCommandsImpl) SetCityActive(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.withCity(ctx, id, func(c *catalog.City) error {
		c.SetActive(active, uc.clock.Now())
		return nil
	})
}

func (uc *catalogCommandsImpl) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Catalog().LockCity(ctx, tx.DB(), id); err != nil {
			return translate(err, cityErrs)
		}
		used, err := tx.Catalog().CityReferenced(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if used {
			return catalog.ErrCityInUse
		}
		return translate(tx.Catalog().DeleteCity(ctx, tx.DB(), id), cityErrs)
	})
}

func (uc *catalogCommandsImpl) withCity(ctx context.Context, id uuid.UUID, mutate func(*catalog.City) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Catalog().LockCity(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, cityErrs)
		}
		if err := mutate(c); err != nil {
			return err
		}
		return translate(tx.Catalog().UpdateCity(ctx, tx.DB(), c), cityErrs)
	})
}

func (uc *catalogCommandsImpl) CreateCategory(ctx context.Context, in CreateCategoryInput) (uuid.UUID, error) {
	c, err := catalog.NewCategory(in.Name, in.Description, in.Icon, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Catalog().CreateCategory(ctx, tx.DB(), c), categoryErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *catalogCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, patch catalog.CategoryPatch) error {
	return uc.withCategory(ctx, id, func(c *catalog.Category) error {
		return c.Apply(patch, uc.clock.Now())
	})
}

func (uc *catalogCommandsImpl) SetCategoryActive(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.withCategory(ctx, id, func(c *catalog.Category) error {
		c.SetActive(active, uc.clock.Now())
		return nil
	})
}

func (uc *catalogCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Catalog().LockCategory(ctx, tx.DB(), id); err != nil {
			return translate(err, categoryErrs)
		}
		used, err := tx.Catalog().CategoryReferenced(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if used {
			return catalog.ErrCategoryInUse
		}
		return translate(tx.Catalog().DeleteCategory(ctx, tx.DB(), id), categoryErrs)
	})
}

func (uc *catalogCommandsImpl) withCategory(ctx context.Context, id uuid.UUID, mutate func(*catalog.Category) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Catalog().LockCategory(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, categoryErrs)
		}
		if err := mutate(c); err != nil {
			return err
		}
		return translate(tx.Catalog().UpdateCategory(ctx, tx.DB(), c), categoryErrs)
	})
}
