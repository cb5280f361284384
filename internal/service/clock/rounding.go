package clock

import "time"

// roundToNearest rounds t to the nearest multiple of the rounding interval,
// half rounding up.
func roundToNearest(t time.Time, minutes int) time.Time {
	if minutes <= 0 {
		return t
	}
	return t.Round(time.Duration(minutes) * time.Minute)
}

// workedMinutes computes the session duration from the rounded entry and
// exit instants: whole minutes only, never negative. A session whose
// rounded exit lands before its rounded entry counts as zero.
func workedMinutes(entry, exit time.Time, roundingMinutes int) int {
	roundedEntry := roundToNearest(entry, roundingMinutes)
	roundedExit := roundToNearest(exit, roundingMinutes)

	minutes := int(roundedExit.Sub(roundedEntry).Seconds()) / 60
	if minutes < 0 {
		return 0
	}
	return minutes
}
