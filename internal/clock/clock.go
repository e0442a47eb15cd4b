// internal/clock/clock.go
package clock

import (
	"sync"
	"time"
)

// Clock - монотонное время симуляции в секундах. Идёт только через Advance,
// учитывает множитель скорости и паузу.
type Clock struct {
	now    float64
	scale  float64
	paused bool
}

func New() *Clock {
	return &Clock{scale: 1}
}

// Now returns the simulation time in seconds.
func (c *Clock) Now() float64 { return c.now }

// Advance moves the clock by a real-time delta and returns the simulated delta.
func (c *Clock) Advance(realDelta float64) float64 {
	if c.paused || realDelta <= 0 {
		return 0
	}
	dt := realDelta * c.scale
	c.now += dt
	return dt
}

func (c *Clock) SetScale(scale float64) {
	if scale > 0 {
		c.scale = scale
	}
}

func (c *Clock) Scale() float64 { return c.scale }

func (c *Clock) SetPaused(paused bool) { c.paused = paused }

func (c *Clock) Paused() bool { return c.paused }

// Ticker - повторяющийся дедлайн. Срабатывания считаются через Due,
// так что большой шаг времени не теряет тики.
type Ticker struct {
	Interval float64
	Next     float64
	Running  bool
}

// Start arms the ticker so the first firing happens one interval after now.
func (t *Ticker) Start(now, interval float64) {
	t.Interval = interval
	t.Next = now + interval
	t.Running = true
}

// Stop disarms the ticker.
func (t *Ticker) Stop() { t.Running = false }

// Due reports one pending firing and schedules the next. Call it in a loop.
func (t *Ticker) Due(now float64) bool {
	if !t.Running || t.Interval <= 0 || now < t.Next {
		return false
	}
	t.Next += t.Interval
	return true
}

// TimeProvider supplies wall time to front-end loops.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system monotonic clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// ManualTimeProvider provides a controllable time source for testing
type ManualTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{currentTime: start}
}

func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameTimer turns wall-clock readings into clamped per-frame deltas.
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
	maxDelta float64
}

func NewFrameTimer(provider TimeProvider, maxDelta float64) *FrameTimer {
	return &FrameTimer{provider: provider, last: provider.Now(), maxDelta: maxDelta}
}

// Tick returns seconds since the previous call, capped at maxDelta.
func (f *FrameTimer) Tick() float64 {
	now := f.provider.Now()
	dt := now.Sub(f.last).Seconds()
	f.last = now
	if dt > f.maxDelta {
		dt = f.maxDelta
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}
