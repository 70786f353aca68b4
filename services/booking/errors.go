package booking

import "errors"

var (
	ErrMissingDate    = errors.New("date query parameter is required")
	ErrMissingPatient = errors.New("patient query parameter is required")
	ErrInvalidBooking = errors.New("booking requires treatment, date, slot and patient")
)
