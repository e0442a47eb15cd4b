package clock

import (
	"testing"
	"time"
)

func TestAdvanceHonoursScaleAndPause(t *testing.T) {
	c := New()
	c.Advance(0.5)
	c.SetScale(2)
	if dt := c.Advance(0.5); dt != 1 {
		t.Errorf("Expected scaled delta 1, got %v", dt)
	}
	c.SetPaused(true)
	c.Advance(10)
	if c.Now() != 1.5 {
		t.Errorf("Expected now=1.5, got %v", c.Now())
	}
}

func TestTickerCatchesUpOnLargeSteps(t *testing.T) {
	var tk Ticker
	tk.Start(0, 1)

	fired := 0
	for tk.Due(3.5) {
		fired++
	}
	if fired != 3 {
		t.Errorf("Expected 3 firings, got %d", fired)
	}
	if tk.Due(3.9) {
		t.Error("Expected no firing before 4s")
	}
	if !tk.Due(4) {
		t.Error("Expected a firing at exactly 4s")
	}

	tk.Stop()
	if tk.Due(100) {
		t.Error("stopped ticker must not fire")
	}
}

func TestFrameTimerClampsDelta(t *testing.T) {
	mock := NewManualTimeProvider(time.Unix(0, 0))
	ft := NewFrameTimer(mock, 0.06)

	mock.Advance(16 * time.Millisecond)
	if dt := ft.Tick(); dt < 0.0159 || dt > 0.0161 {
		t.Errorf("Expected ~0.016, got %v", dt)
	}

	mock.Advance(2 * time.Second)
	if dt := ft.Tick(); dt != 0.06 {
		t.Errorf("Expected clamped 0.06, got %v", dt)
	}
}
