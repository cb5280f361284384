package clock

import (
	"fmt"
	"time"
)

const (
	alertBeforeWindow = "entrada antes da janela prevista"
	alertAfterWindow  = "entrada apos a janela prevista"
)

// evaluateWindow checks the clock-in instant against the contract's expected
// start time with its tolerance on each side. The verdict is advisory: the
// entry is created either way and the alert is stored on it. A contract
// without an expected start has no window and never alerts.
func evaluateWindow(expectedStart *string, toleranceMinutes int, at time.Time) *string {
	if expectedStart == nil {
		return nil
	}

	expected, err := time.Parse("15:04", *expectedStart)
	if err != nil {
		return nil
	}

	target := time.Date(at.Year(), at.Month(), at.Day(), expected.Hour(), expected.Minute(), 0, 0, at.Location())
	tolerance := time.Duration(toleranceMinutes) * time.Minute

	switch {
	case at.Before(target.Add(-tolerance)):
		alert := fmt.Sprintf("%s (%s)", alertBeforeWindow, *expectedStart)
		return &alert
	case at.After(target.Add(tolerance)):
		alert := fmt.Sprintf("%s (%s)", alertAfterWindow, *expectedStart)
		return &alert
	default:
		return nil
	}
}
