package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingDaysClampsExpired(t *testing.T) {
	past := time.Now().Add(-72 * time.Hour)
	assert.Equal(t, 0, RemainingDays(&past))

	justExpired := time.Now().Add(-time.Minute)
	assert.Equal(t, 0, RemainingDays(&justExpired))
}

func TestRemainingDays(t *testing.T) {
	assert.Equal(t, 0, RemainingDays(nil))

	var zero time.Time
	assert.Equal(t, 0, RemainingDays(&zero))

	inSevenDays := time.Now().Add(7*24*time.Hour + time.Hour)
	assert.Equal(t, 8, RemainingDays(&inSevenDays))

	inHalfDay := time.Now().Add(12 * time.Hour)
	assert.Equal(t, 1, RemainingDays(&inHalfDay))
}

func TestIsSubscriptionActive(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	assert.True(t, IsSubscriptionActive(&future))
	assert.False(t, IsSubscriptionActive(&past))
	assert.False(t, IsSubscriptionActive(nil))
}

func TestEpochMillis(t *testing.T) {
	assert.Equal(t, int64(0), EpochMillis(nil))

	at := time.UnixMilli(1700000000000)
	assert.Equal(t, int64(1700000000000), EpochMillis(&at))
}
