package model

// Pagination is the page metadata block returned alongside every listing.
// CurrentPage is 1-based on the wire.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type PaginatedResult[T any] struct {
	Data       []*T       `json:"data"`
	Pagination Pagination `json:"pagination"`
}
