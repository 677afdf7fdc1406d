package engine

import "time"

// maxFrameElapsed caps a single tick after a stall (terminal suspend, debugger)
// so timers cannot jump past several fuse or spawn intervals at once
const maxFrameElapsed = 250 * time.Millisecond

// PausableClock measures game time between frames, frozen while paused
// Owned by the frame loop goroutine
type PausableClock struct {
	provider TimeProvider
	last     time.Time
	paused   bool
}

// NewPausableClock creates a running clock starting at provider.Now()
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Elapsed returns game time since the previous call, 0 while paused
func (pc *PausableClock) Elapsed() time.Duration {
	now := pc.provider.Now()
	d := now.Sub(pc.last)
	pc.last = now
	if pc.paused || d < 0 {
		return 0
	}
	return min(d, maxFrameElapsed)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.paused = true
}

// Resume continues game time advancement, time spent paused is discarded
func (pc *PausableClock) Resume() {
	if pc.paused {
		pc.paused = false
		pc.last = pc.provider.Now()
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}
