package client

import (
	"cuponera-backend/internal/pkg/ecid"
	"cuponera-backend/internal/pkg/errs"
)

var (
	ErrNotFound                  = errs.Kind(errs.ErrNotFound, "client not found")
	ErrBlankName                 = errs.Kind(errs.ErrInvalidArgument, "first and last name are required")
	ErrBlankIdentification       = errs.Kind(errs.ErrInvalidArgument, "identification is required")
	ErrInvalidIdentificationType = errs.Kind(errs.ErrInvalidArgument, "invalid identification type")
	ErrInvalidCedula             = errs.Kind(errs.ErrInvalidArgument, "invalid cédula")
	ErrInvalidRUC                = errs.Kind(errs.ErrInvalidArgument, "invalid RUC")
	ErrDuplicateEmail            = errs.Kind(errs.ErrConflict, "client email is already registered")
	ErrDuplicateIdentification   = errs.Kind(errs.ErrConflict, "client identification is already registered")
)

type IdentificationType string

const (
	IdentificationCedula    IdentificationType = "CEDULA"
	IdentificationRUC       IdentificationType = "RUC"
	IdentificationPasaporte IdentificationType = "PASAPORTE"
)

func (t IdentificationType) IsValid() bool {
	switch t {
	case IdentificationCedula, IdentificationRUC, IdentificationPasaporte:
		return true
	default:
		return false
	}
}

// Check validates the number against the document type. Passports are free-form.
func (t IdentificationType) Check(number string) error {
	switch t {
	case IdentificationCedula:
		if !ecid.ValidCedula(number) {
			return ErrInvalidCedula
		}
	case IdentificationRUC:
		if !ecid.ValidRUC(number) {
			return ErrInvalidRUC
		}
	}
	return nil
}
