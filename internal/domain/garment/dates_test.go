package garment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntilOnIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)
	due := time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntilOn(due, today))
}

func TestDaysUntilOnPastDateIsNegative(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, -3, DaysUntilOn(due, today))
}

func TestDaysUntilOnSameDay(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntilOn(due, today))
}

func TestDaysUntilOnAcrossDSTBoundary(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US spring-forward was March 8 2026; the clock day is 23 hours long
	// but the calendar difference must still be exactly 2.
	today := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	due := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysUntilOn(due, today))
}

func TestDaysUntilNil(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, DaysUntil(nil, today))

	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	got := DaysUntil(&due, today)
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)
}
