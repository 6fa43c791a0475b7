package kernel

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created via the NewLocation constructor to ensure coordinates are valid.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object representing a geographic point,
// used for pickup and delivery positions and for driver tracking.
// Coordinates are validated on construction: latitude must fall within
// [-90, 90] and longitude within [-180, 180].
//
// The zero value of Location is invalid and fails Validate — use NewLocation.
//
// Example:
//
//	loc, err := kernel.NewLocation(30.0444, 31.2357)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates.
//
// Returns a validation error if latitude is outside [LatitudeMin, LatitudeMax]
// or longitude is outside [LongitudeMin, LongitudeMax].
func NewLocation(latitude, longitude float64) (Location, error) {
	location := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setLatitude(latitude),
		location.setLongitude(longitude),
	); err != nil {
		return Location{}, err
	}

	return location, nil
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two locations by their coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.latitude, l.longitude)
}

// Validate ensures the Location instance was properly constructed through NewLocation.
// Returns ErrLocationIsNotConstructed for zero-value instances.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// setLatitude sets the latitude with range validation.
// Pointer receiver is used intentionally for self-encapsulated validation
// during construction while the public API stays on value receivers.
func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}
