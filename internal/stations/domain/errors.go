package stations

import "errors"

var (
	// ErrInvalidID is returned when an identifier does not match ZES + digits.
	ErrInvalidID = errors.New("stations: invalid id")
	// ErrEmptyName is returned when a station has no name.
	ErrEmptyName = errors.New("stations: empty name")
	// ErrUnknownPower is returned when a power label is not one of the tiers.
	ErrUnknownPower = errors.New("stations: unknown power label")
	// ErrSocketMismatch is returned when socket counts do not match the power tier.
	ErrSocketMismatch = errors.New("stations: socket counts do not match power tier")
	// ErrInvalidStatus is returned for any status other than active.
	ErrInvalidStatus = errors.New("stations: invalid status")
	// ErrInvalidStationType is returned when the type is not a known category.
	ErrInvalidStationType = errors.New("stations: invalid station type")
)
