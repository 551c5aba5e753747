package clock_test

import (
	"shareit/shared/clock"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(base)

	assert.Equal(t, base, c.Now())

	c.Add(90 * time.Minute)
	assert.Equal(t, base.Add(90*time.Minute), c.Now())

	c.Set(base)
	assert.Equal(t, base, c.Now())
}

func TestRealClock(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := clock.NewRealClock().Now()

	assert.True(t, now.After(before))
}
