package actor

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Promotion is the public card a business shows to clients.
type Promotion struct {
	Title         string
	Description   string
	PlaceName     string
	LogoURL       string
	ScheduleLabel string
	ImageURL      string
}

func (p Promotion) HasPromo() bool {
	return strings.TrimSpace(p.Title) != ""
}

// Rating is the running aggregate maintained by comment writes.
type Rating struct {
	Sum     int
	Count   int
	Average decimal.Decimal
}

type Actor struct {
	id                 uuid.UUID
	name               string
	email              string
	identification     string
	passwordHash       string
	role               Role
	active             bool
	responsiblePartyID *uuid.UUID
	phone              string
	cityIDs            []uuid.UUID
	categoryIDs        []uuid.UUID
	promotion          Promotion
	rating             Rating
	createdAt          time.Time
	updatedAt          time.Time
}

type NewActorInput struct {
	Name               string
	Email              string
	Identification     string
	PasswordHash       string
	Role               Role
	ResponsiblePartyID *uuid.UUID
	Phone              string
	CityIDs            []uuid.UUID
	CategoryIDs        []uuid.UUID
}

func NewActor(in NewActorInput, now time.Time) (*Actor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrBlankName
	}
	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if !in.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	if in.Role == RoleStaff && in.ResponsiblePartyID == nil {
		return nil, ErrStaffWithoutResponsible
	}
	return &Actor{
		id:                 uuid.New(),
		name:               name,
		email:              email,
		identification:     strings.TrimSpace(in.Identification),
		passwordHash:       in.PasswordHash,
		role:               in.Role,
		active:             true,
		responsiblePartyID: in.ResponsiblePartyID,
		phone:              strings.TrimSpace(in.Phone),
		cityIDs:            nonNil(in.CityIDs),
		categoryIDs:        nonNil(in.CategoryIDs),
		rating:             Rating{Average: decimal.Zero},
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type Snapshot struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Identification     string
	PasswordHash       string
	Role               Role
	Active             bool
	ResponsiblePartyID *uuid.UUID
	Phone              string
	CityIDs            []uuid.UUID
	CategoryIDs        []uuid.UUID
	Promotion          Promotion
	Rating             Rating
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(s Snapshot) *Actor {
	return &Actor{
		id:                 s.ID,
		name:               s.Name,
		email:              s.Email,
		identification:     s.Identification,
		passwordHash:       s.PasswordHash,
		role:               s.Role,
		active:             s.Active,
		responsiblePartyID: s.ResponsiblePartyID,
		phone:              s.Phone,
		cityIDs:            nonNil(s.CityIDs),
		categoryIDs:        nonNil(s.CategoryIDs),
		promotion:          s.Promotion,
		rating:             s.Rating,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}
}

// NormalizeEmail trims, lower-cases and validates an address.
func NormalizeEmail(s string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(e) {
		return "", ErrInvalidEmail
	}
	return e, nil
}

func (a *Actor) UpdatePromotion(p Promotion, now time.Time) {
	a.promotion = Promotion{
		Title:         strings.TrimSpace(p.Title),
		Description:   strings.TrimSpace(p.Description),
		PlaceName:     strings.TrimSpace(p.PlaceName),
		LogoURL:       strings.TrimSpace(p.LogoURL),
		ScheduleLabel: strings.TrimSpace(p.ScheduleLabel),
		ImageURL:      strings.TrimSpace(p.ImageURL),
	}
	a.updatedAt = now
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func (a *Actor) ID() uuid.UUID                  { return a.id }
func (a *Actor) Name() string                   { return a.name }
func (a *Actor) Email() string                  { return a.email }
func (a *Actor) Identification() string         { return a.identification }
func (a *Actor) PasswordHash() string           { return a.passwordHash }
func (a *Actor) Role() Role                     { return a.role }
func (a *Actor) IsActive() bool                 { return a.active }
func (a *Actor) ResponsiblePartyID() *uuid.UUID { return a.responsiblePartyID }
func (a *Actor) Phone() string                  { return a.phone }
func (a *Actor) CityIDs() []uuid.UUID           { return a.cityIDs }
func (a *Actor) CategoryIDs() []uuid.UUID       { return a.categoryIDs }
func (a *Actor) Promotion() Promotion           { return a.promotion }
func (a *Actor) Rating() Rating                 { return a.rating }
func (a *Actor) CreatedAt() time.Time           { return a.createdAt }
func (a *Actor) UpdatedAt() time.Time           { return a.updatedAt }
