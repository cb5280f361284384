package clock

import "time"

// ClockEntry is one attendance session (Ponto) tied to a contract. At most
// one entry with Active=true exists per contract at any time; the schema
// enforces this with a partial unique index.
type ClockEntry struct {
	ID                int64
	ContractID        int64
	Date              time.Time
	EntryTime         time.Time
	ExitTime          *time.Time
	WorkedMinutes     *int
	Active            bool
	EntryLatitude     *float64
	EntryLongitude    *float64
	ExitLatitude      *float64
	ExitLongitude     *float64
	GeofenceValidated bool
	Alert             *string
}

// ElapsedMinutes returns the worked minutes for closed entries, or the live
// elapsed time since entry for entries still open.
func (e ClockEntry) ElapsedMinutes(now time.Time) int {
	if e.WorkedMinutes != nil {
		return *e.WorkedMinutes
	}
	if !e.Active {
		return 0
	}
	elapsed := int(now.Sub(e.EntryTime).Minutes())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
