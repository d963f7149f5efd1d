package repository

import (
	"context"

	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// execOne runs a single-row write and reports NOT_FOUND when nothing matched.
func execOne(ctx context.Context, tx db.DBTX, notFoundMsg, failMsg, sql string, args ...any) error {
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr(failMsg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(notFoundMsg, nil, infra.KindNotFound)
	}
	return nil
}
