package model

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID         int       `json:"id" db:"id"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	Name       string    `json:"name" db:"name"`
	Capacity   int       `json:"capacity" db:"capacity"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	Deleted    bool      `json:"deleted" db:"deleted"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateLocationParams struct {
	Name     *string
	Capacity *int
}

type LocationCriteria struct {
	Name     *string
	Capacity *int
	IsActive *bool
	Deleted  *bool
}
