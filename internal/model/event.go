package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          int       `json:"id" db:"id"`
	EventID     uuid.UUID `json:"event_id" db:"event_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	SaleStart   time.Time `json:"sale_start" db:"sale_start"`
	SaleEnd     time.Time `json:"sale_end" db:"sale_end"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	Deleted     bool      `json:"deleted" db:"deleted"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsSaleOpen reports whether now falls inside the half-open sale window
// [sale_start, sale_end).
func (e *Event) IsSaleOpen(now time.Time) bool {
	return !now.Before(e.SaleStart) && now.Before(e.SaleEnd)
}

type UpdateEventParams struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	SaleStart   *time.Time
	SaleEnd     *time.Time
}

// EventCriteria matches rows by equality on the set fields only.
type EventCriteria struct {
	Name      *string
	StartDate *time.Time
	SaleStart *time.Time
	IsActive  *bool
	Deleted   *bool
}
