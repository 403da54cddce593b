package apperrors

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrEventLocationNotFound = errors.New("event location not found")

	// ErrEventLocationUnavailable means the offering exists but fails at least
	// one availability predicate (inactive, deleted parent, sale window closed).
	ErrEventLocationUnavailable = errors.New("event location not available for sale")

	ErrEventNameTaken    = errors.New("event name already taken")
	ErrLocationNameTaken = errors.New("location name already taken")

	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrInvalidSaleWindow = errors.New("sale start must not be after sale end")
)
