package commands

import (
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/pkg/errs"
)

// repoErrs tells translate which domain error stands for each storage failure.
type repoErrs struct {
	notFound   error
	duplicate  error
	foreignKey error
	// byConstraint overrides duplicate/foreignKey for a named constraint.
	byConstraint map[string]error
}

// translate maps repository failures onto the domain taxonomy. Domain errors pass through.
func translate(err error, m repoErrs) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != nil {
		return err
	}
	if target, ok := m.byConstraint[infra.ConstraintOf(err)]; ok {
		return errs.WithCause(target, err)
	}
	switch {
	case m.notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.WithCause(m.notFound, err)
	case m.duplicate != nil && infra.IsKind(err, infra.KindDuplicateKey):
		return errs.WithCause(m.duplicate, err)
	case m.foreignKey != nil && infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(m.foreignKey, err)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrInvalidArgument)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	}
	return err
}
