package utils

import (
	"math"
	"time"
)

// RemainingDays returns whole days left until validUntil, clamped at zero.
// An expired subscription never reports negative days remaining.
func RemainingDays(validUntil *time.Time) int {
	if validUntil == nil || validUntil.IsZero() {
		return 0
	}
	diff := time.Until(*validUntil)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// IsSubscriptionActive reports whether validUntil is set and in the future.
func IsSubscriptionActive(validUntil *time.Time) bool {
	if validUntil == nil || validUntil.IsZero() {
		return false
	}
	return validUntil.After(time.Now())
}

// EpochMillis renders a timestamp the way the dashboard expects dates:
// int64 epoch milliseconds, 0 when unset.
func EpochMillis(t *time.Time) int64 {
	if t == nil || t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
