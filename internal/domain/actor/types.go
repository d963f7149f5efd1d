package actor

import "cuponera-backend/internal/pkg/errs"

var (
	ErrNotFound                = errs.Kind(errs.ErrNotFound, "actor not found")
	ErrInvalidRole             = errs.Kind(errs.ErrInvalidArgument, "invalid role")
	ErrBlankName               = errs.Kind(errs.ErrInvalidArgument, "name is required")
	ErrInvalidEmail            = errs.Kind(errs.ErrInvalidArgument, "invalid email format")
	ErrStaffWithoutResponsible = errs.Kind(errs.ErrInvalidArgument, "staff actor has no responsible party")
	ErrResponsibleNotFound     = errs.Kind(errs.ErrInvalidArgument, "responsible party does not exist")
	ErrDuplicateEmail          = errs.Kind(errs.ErrConflict, "email is already registered")
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleLocal   Role = "LOCAL"
	RoleStaff   Role = "STAFF"
	RoleUsuario Role = "USUARIO"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLocal, RoleStaff, RoleUsuario:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
