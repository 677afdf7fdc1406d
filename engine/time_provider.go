package engine

import "time"

// TimeProvider supplies wall clock readings to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider only moves when told to, for driving a PausableClock in tests and replays
// Owned by a single goroutine like the clock it feeds
type ManualTimeProvider struct {
	now time.Time
}

func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

func (m *ManualTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves the reading forward by d, a negative d moves it back
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
