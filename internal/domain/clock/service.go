package clock

import (
	"context"
	"time"
)

// ClockService defines the time-clock operations available to a student.
type ClockService interface {
	// Toggle opens a new clock entry or closes the currently open one,
	// depending on state. Opening validates the geofence (hard, opens a
	// justification on failure) and the expected time window (advisory).
	Toggle(ctx context.Context, studentID int64, req ToggleRequest) (ToggleResponse, error)

	// CloseOpen closes the student's open entry. Legacy explicit clock-out.
	CloseOpen(ctx context.Context, studentID int64) (ClockEntryResponse, error)

	// GetOpen fetches the student's currently open entry.
	GetOpen(ctx context.Context, studentID int64) (ClockEntryResponse, error)

	// CheckLocation runs the geofence evaluation without touching state.
	CheckLocation(ctx context.Context, studentID int64, req CheckLocationRequest) (LocationCheckResult, error)

	// Timeline aggregates a student's day: entries, justifications, diary
	// entries, evaluations and the worked/expected/balance minutes.
	Timeline(ctx context.Context, studentID int64, date time.Time) (TimelineResponse, error)
}
