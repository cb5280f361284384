package justification

import (
	"context"
	"time"
)

// JustificationService defines justification workflows.
type JustificationService interface {
	// Create registers a student-submitted justification.
	Create(ctx context.Context, studentID int64, req CreateJustificationRequest) (JustificationResponse, error)

	// CreateAutomatic opens a location_adjustment justification on behalf of
	// the system when a clock-in fails geofencing. Never blocks the caller
	// beyond contract validity.
	CreateAutomatic(ctx context.Context, studentID, contractID int64, reason string) (Justification, error)

	// Review approves or rejects a pending justification.
	Review(ctx context.Context, reviewerID int64, req ReviewJustificationRequest) (JustificationResponse, error)

	Get(ctx context.Context, id int64) (JustificationResponse, error)

	// Logs returns the audit trail of a justification, oldest first.
	Logs(ctx context.Context, id int64) ([]LogResponse, error)

	// List runs the SLA sweep first, then returns matching justifications.
	List(ctx context.Context, filter ListFilter) ([]JustificationResponse, error)

	// ListForDay runs the SLA sweep first, then returns the student's
	// justifications whose reference date matches the given day.
	ListForDay(ctx context.Context, studentID int64, date time.Time) ([]JustificationResponse, error)

	// ExpireOverdue is the SLA sweep: pending past deadline become expired.
	// Idempotent.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}
