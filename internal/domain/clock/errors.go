package clock

import (
	"errors"
	"fmt"
)

var (
	ErrPontoNotFound = errors.New("clock entry not found")
	ErrNoOpenEntry   = errors.New("no open clock entry")
)

// GeofenceViolationError is returned when a clock-in is attempted outside
// the allowed radius. The entry is not created; instead a pending
// justification is opened and its id is carried here so the student knows a
// review exists.
type GeofenceViolationError struct {
	JustificationID int64
	DistanceMeters  float64
	AllowedRadius   int
}

func (e *GeofenceViolationError) Error() string {
	return fmt.Sprintf(
		"Location outside allowed area (%.1fm > %dm). Justification #%d opened for review.",
		e.DistanceMeters, e.AllowedRadius, e.JustificationID,
	)
}
