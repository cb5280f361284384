package contract

import "time"

// Contract binds a student, a supervising professor and an internship
// address for a date range. Expected start/end are times of day in "HH:MM";
// tolerance and radius override the process-wide defaults when set.
type Contract struct {
	ID                   int64
	StudentID            int64
	ProfessorID          int64
	AddressID            int64
	ClassID              *int64
	AgreementID          *int64
	ExternalSupervisorID *int64
	StartDate            *time.Time
	EndDate              *time.Time
	Active               bool
	ExpectedStart        *string
	ExpectedEnd          *string
	ToleranceMinutes     *int
	AllowedRadiusMeters  *int

	// Joined for responses
	StudentName   *string
	ProfessorName *string
}

// EffectiveRadiusMeters resolves the geofence radius for this contract.
func (c Contract) EffectiveRadiusMeters(defaultRadius int) int {
	if c.AllowedRadiusMeters != nil {
		return *c.AllowedRadiusMeters
	}
	return defaultRadius
}

// EffectiveToleranceMinutes resolves the clock-in tolerance window for this
// contract.
func (c Contract) EffectiveToleranceMinutes(defaultTolerance int) int {
	if c.ToleranceMinutes != nil {
		return *c.ToleranceMinutes
	}
	return defaultTolerance
}
