package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PromotionView struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	PlaceName     string `json:"place_name"`
	LogoURL       string `json:"logo_url"`
	ScheduleLabel string `json:"schedule_label"`
	ImageURL      string `json:"image_url"`
}

type RatingView struct {
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

// PlaceView is the public card of a business location.
type PlaceView struct {
	ActorID   uuid.UUID     `json:"actor_id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	CityIDs   []uuid.UUID   `json:"city_ids"`
	Promotion PromotionView `json:"promotion"`
	Rating    RatingView    `json:"rating"`
}

// DateRange holds caller supplied calendar days, both inclusive.
// Bounds are optional. Nil means open-ended.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Window is the half-open instant range [From, Until) handed to read stores.
// Nil bounds are open.
type Window struct {
	From  *time.Time
	Until *time.Time
}
