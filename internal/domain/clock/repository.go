package clock

import (
	"context"
	"time"
)

// ClockRepository defines data access methods for clock entries.
type ClockRepository interface {
	Create(ctx context.Context, entry ClockEntry) (ClockEntry, error)

	// GetOpenByContract returns the contract's single active entry, or
	// ErrNoOpenEntry.
	GetOpenByContract(ctx context.Context, contractID int64) (ClockEntry, error)

	// Update persists a mutated entry (close on clock-out).
	Update(ctx context.Context, entry ClockEntry) error

	// ListByContractAndDate returns the entries of one work day ordered by
	// entry time ascending.
	ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]ClockEntry, error)

	// ListByContractRange returns entries within [from, to] for reporting.
	ListByContractRange(ctx context.Context, contractID int64, from, to time.Time) ([]ClockEntry, error)
}
