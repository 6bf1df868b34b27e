package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tdl-hrms/internal/shared/clock"
)

func TestHoursBetween(t *testing.T) {
	t.Run("full clock", func(t *testing.T) {
		assert.InDelta(t, 8.5, clock.HoursBetween("09:00:00", "17:30:00"), 1e-9)
	})

	t.Run("seconds are optional", func(t *testing.T) {
		assert.InDelta(t, 8.0, clock.HoursBetween("09:00", "17:00"), 1e-9)
	})

	t.Run("seconds contribute", func(t *testing.T) {
		assert.InDelta(t, 30.0/3600, clock.HoursBetween("09:00:15", "09:00:45"), 1e-9)
	})

	t.Run("end before start is negative", func(t *testing.T) {
		assert.InDelta(t, -8.0, clock.HoursBetween("17:00:00", "09:00:00"), 1e-9)
	})
}

func TestIntervalHours(t *testing.T) {
	t.Run("normal interval", func(t *testing.T) {
		assert.InDelta(t, 0.5, clock.IntervalHours("13:00:00", "13:30:00"), 1e-9)
	})

	t.Run("sentinel endpoints count as no break", func(t *testing.T) {
		assert.Zero(t, clock.IntervalHours(clock.AbsentClock, clock.AbsentClock))
		assert.Zero(t, clock.IntervalHours("13:00:00", clock.AbsentClock))
	})

	t.Run("empty endpoints count as no break", func(t *testing.T) {
		assert.Zero(t, clock.IntervalHours("", ""))
		assert.Zero(t, clock.IntervalHours("13:00:00", ""))
	})
}
