package mocks

import (
	"time"

	"github.com/mcoot/jewelmatch/internal/dependencies/clock"
)

// MockClock is a manually advanced Clock
type MockClock struct {
	CurrentTime time.Time
	// Step is added to CurrentTime after every Now call, if non-zero
	Step time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock frozen at the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked time, then advances it by Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Since measures against the mocked time without advancing it
func (c *MockClock) Since(t time.Time) time.Duration {
	return c.CurrentTime.Sub(t)
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
