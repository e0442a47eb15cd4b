package audio

import (
	"io"
	"log"
	"math"
	"testing"
	"time"

	"go-siege-defense/internal/clock"
	"go-siege-defense/internal/event"
)

func TestLimiterDropsRepeatsWithinInterval(t *testing.T) {
	provider := clock.NewManualTimeProvider(time.Unix(0, 0))
	l := NewLimiter(provider, 50*time.Millisecond)

	if !l.Allow("sfx_enemy_hit") {
		t.Fatal("Expected first play to pass")
	}
	provider.Advance(30 * time.Millisecond)
	if l.Allow("sfx_enemy_hit") {
		t.Error("Expected repeat within 50ms to be dropped")
	}
	if !l.Allow("sfx_ui_click") {
		t.Error("Expected a different key to pass")
	}
	provider.Advance(20 * time.Millisecond)
	if !l.Allow("sfx_enemy_hit") {
		t.Error("Expected play after the interval to pass")
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(log.New(io.Discard, "", 0))
	sm.PlaySound(event.SoundBuildPlace, 0.8)
	sm.PlaySound(event.SoundBuildPlace, 0.8)
	if sm.Played() != 1 {
		t.Errorf("Expected 1 sound through the limiter, got %d", sm.Played())
	}
}

func TestToneStreamerLength(t *testing.T) {
	s, err := newToneStreamer(sampleRate, event.SoundUIClick, 0.5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := sampleRate.N(toneFor(event.SoundUIClick).duration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestVolumeLevel(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 0},
		{0.5, -1},
		{2, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := volumeLevel(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("volumeLevel(%v): Expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestEventSoundsHaveOwnTones(t *testing.T) {
	keys := []string{event.SoundEnemyHit, event.SoundBuildPlace, event.SoundUIClick, event.SoundShootCannon}
	for _, key := range keys {
		if toneFor(key) == defaultTone {
			t.Errorf("Expected a dedicated tone for %s", key)
		}
	}
}
