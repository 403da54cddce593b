package model

import (
	"time"

	"github.com/google/uuid"
)

// EventLocation is a priced offering of one Event at one Location, e.g. a
// pricing tier such as "VIP". It never exists without both parents.
type EventLocation struct {
	ID              int       `json:"id" db:"id"`
	EventLocationID uuid.UUID `json:"event_location_id" db:"event_location_id"`
	Name            string    `json:"name" db:"name"`
	Price           float64   `json:"price" db:"price"`
	EventID         int       `json:"event_id" db:"event_id"`
	LocationID      int       `json:"location_id" db:"location_id"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	Deleted         bool      `json:"deleted" db:"deleted"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	Event    *Event    `json:"event,omitempty" db:"-"`
	Location *Location `json:"location,omitempty" db:"-"`
}

type UpdateEventLocationParams struct {
	Name       *string
	Price      *float64
	EventID    *int
	LocationID *int
}

type EventLocationCriteria struct {
	Name       *string
	EventID    *int
	LocationID *int
	IsActive   *bool
	Deleted    *bool
}
