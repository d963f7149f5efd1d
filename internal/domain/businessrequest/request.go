// Package businessrequest holds sign-up requests from businesses that want to join as locals.
package businessrequest

import (
	"strings"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/pkg/ecid"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/patch"

	"github.com/google/uuid"
)

const DefaultOrigin = "ENJOY_APP"

var (
	ErrNotFound       = errs.Kind(errs.ErrNotFound, "business request not found")
	ErrBlankCompany   = errs.Kind(errs.ErrInvalidArgument, "company name is required")
	ErrInvalidRUC     = errs.Kind(errs.ErrInvalidArgument, "invalid RUC")
	ErrInvalidStatus  = errs.Kind(errs.ErrInvalidArgument, "invalid request status")
	ErrDuplicateEmail = errs.Kind(errs.ErrConflict, "a request with this email is already registered")
)

type Status string

const (
	StatusPending   Status = "PENDIENTE"
	StatusContacted Status = "CONTACTADO"
	StatusApproved  Status = "APROBADO"
	StatusRejected  Status = "RECHAZADO"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

type Request struct {
	id        uuid.UUID
	company   string
	ruc       string
	contact   string
	email     string
	phone     string
	city      string
	message   string
	origin    string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

type NewInput struct {
	Company string
	RUC     string
	Contact string
	Email   string
	Phone   string
	City    string
	Message string
	Origin  string
}

// New starts PENDIENTE. The RUC is optional but must be valid when given.
func New(in NewInput, now time.Time) (*Request, error) {
	email, err := actor.NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	origin := strings.TrimSpace(in.Origin)
	if origin == "" {
		origin = DefaultOrigin
	}
	r := &Request{
		id:        uuid.New(),
		company:   strings.TrimSpace(in.Company),
		ruc:       strings.TrimSpace(in.RUC),
		contact:   strings.TrimSpace(in.Contact),
		email:     email,
		phone:     strings.TrimSpace(in.Phone),
		city:      strings.TrimSpace(in.City),
		message:   strings.TrimSpace(in.Message),
		origin:    origin,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

type Snapshot struct {
	ID        uuid.UUID
	Company   string
	RUC       string
	Contact   string
	Email     string
	Phone     string
	City      string
	Message   string
	Origin    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(s Snapshot) *Request {
	return &Request{
		id:        s.ID,
		company:   s.Company,
		ruc:       s.RUC,
		contact:   s.Contact,
		email:     s.Email,
		phone:     s.Phone,
		city:      s.City,
		message:   s.Message,
		origin:    s.Origin,
		status:    s.Status,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

// Patch has no email: the address identifies the request and is fixed once submitted.
type Patch struct {
	Company *string
	RUC     *string
	Contact *string
	Phone   *string
	City    *string
	Message *string
	Status  *Status
}

func (r *Request) Apply(p Patch, now time.Time) error {
	next := *r
	next.company = trimmed(p.Company, r.company)
	next.ruc = trimmed(p.RUC, r.ruc)
	next.contact = trimmed(p.Contact, r.contact)
	next.phone = trimmed(p.Phone, r.phone)
	next.city = trimmed(p.City, r.city)
	next.message = trimmed(p.Message, r.message)
	next.status = patch.Coalesce(p.Status, r.status)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*r = next
	return nil
}

func (r *Request) validate() error {
	if r.company == "" {
		return ErrBlankCompany
	}
	if r.ruc != "" && !ecid.ValidRUC(r.ruc) {
		return ErrInvalidRUC
	}
	if !r.status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

func trimmed(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return strings.TrimSpace(*p)
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) Company() string      { return r.company }
func (r *Request) RUC() string          { return r.ruc }
func (r *Request) Contact() string      { return r.contact }
func (r *Request) Email() string        { return r.email }
func (r *Request) Phone() string        { return r.phone }
func (r *Request) City() string         { return r.city }
func (r *Request) Message() string      { return r.message }
func (r *Request) Origin() string       { return r.origin }
func (r *Request) Status() Status       { return r.status }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
func (r *Request) UpdatedAt() time.Time { return r.updatedAt }
