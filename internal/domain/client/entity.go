package client

import (
	"strings"
	"time"

	"cuponera-backend/internal/domain/actor"

	"github.com/google/uuid"
)

type Client struct {
	id                 uuid.UUID
	firstName          string
	lastName           string
	identificationType IdentificationType
	identification     string
	email              string
	passwordHash       string
	phone              string
	address            string
	active             bool
	createdAt          time.Time
	updatedAt          time.Time
}

type NewClientInput struct {
	FirstName          string
	LastName           string
	IdentificationType IdentificationType
	Identification     string
	Email              string
	PasswordHash       string
	Phone              string
	Address            string
}

func NewClient(in NewClientInput, now time.Time) (*Client, error) {
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, ErrBlankName
	}
	if in.IdentificationType == "" {
		in.IdentificationType = IdentificationCedula
	}
	if !in.IdentificationType.IsValid() {
		return nil, ErrInvalidIdentificationType
	}
	ident := strings.TrimSpace(in.Identification)
	if ident == "" {
		return nil, ErrBlankIdentification
	}
	if err := in.IdentificationType.Check(ident); err != nil {
		return nil, err
	}
	email, err := actor.NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	return &Client{
		id:                 uuid.New(),
		firstName:          first,
		lastName:           last,
		identificationType: in.IdentificationType,
		identification:     ident,
		email:              email,
		passwordHash:       in.PasswordHash,
		phone:              strings.TrimSpace(in.Phone),
		address:            strings.TrimSpace(in.Address),
		active:             true,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type Snapshot struct {
	ID                 uuid.UUID
	FirstName          string
	LastName           string
	IdentificationType IdentificationType
	Identification     string
	Email              string
	PasswordHash       string
	Phone              string
	Address            string
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(s Snapshot) *Client {
	return &Client{
		id:                 s.ID,
		firstName:          s.FirstName,
		lastName:           s.LastName,
		identificationType: s.IdentificationType,
		identification:     s.Identification,
		email:              s.Email,
		passwordHash:       s.PasswordHash,
		phone:              s.Phone,
		address:            s.Address,
		active:             s.Active,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}
}

// Update carries the self-service profile fields; nil means unchanged.
type Update struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
}

// ApplyUpdate validates every field before mutating.
func (c *Client) ApplyUpdate(u Update, now time.Time) error {
	first, last, email := c.firstName, c.lastName, c.email
	if u.FirstName != nil {
		first = strings.TrimSpace(*u.FirstName)
	}
	if u.LastName != nil {
		last = strings.TrimSpace(*u.LastName)
	}
	if first == "" || last == "" {
		return ErrBlankName
	}
	if u.Email != nil {
		e, err := actor.NormalizeEmail(*u.Email)
		if err != nil {
			return err
		}
		email = e
	}

	c.firstName, c.lastName, c.email = first, last, email
	if u.Phone != nil {
		c.phone = strings.TrimSpace(*u.Phone)
	}
	if u.Address != nil {
		c.address = strings.TrimSpace(*u.Address)
	}
	c.updatedAt = now
	return nil
}

func (c *Client) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Client) ID() uuid.UUID                          { return c.id }
func (c *Client) FirstName() string                      { return c.firstName }
func (c *Client) LastName() string                       { return c.lastName }
func (c *Client) IdentificationType() IdentificationType { return c.identificationType }
func (c *Client) Identification() string                 { return c.identification }
func (c *Client) Email() string                          { return c.email }
func (c *Client) PasswordHash() string                   { return c.passwordHash }
func (c *Client) Phone() string                          { return c.phone }
func (c *Client) Address() string                        { return c.address }
func (c *Client) IsActive() bool                         { return c.active }
func (c *Client) CreatedAt() time.Time                   { return c.createdAt }
func (c *Client) UpdatedAt() time.Time                   { return c.updatedAt }
