package masterdata

import "errors"

var (
	// ErrEmptyCityName is returned when a city target has no name.
	ErrEmptyCityName = errors.New("masterdata: empty city name")
	// ErrNegativeTarget is returned when a city target is below zero.
	ErrNegativeTarget = errors.New("masterdata: negative target")
	// ErrDuplicateCity is returned when a city appears twice in the target table.
	ErrDuplicateCity = errors.New("masterdata: duplicate city")
	// ErrEmptyLocationName is returned when a base location has no name.
	ErrEmptyLocationName = errors.New("masterdata: empty location name")
	// ErrInvalidLocation is returned when a base location fails validation.
	ErrInvalidLocation = errors.New("masterdata: invalid location")
	// ErrUnknownCity is returned when locations reference a city without a target.
	ErrUnknownCity = errors.New("masterdata: unknown city")
)
