// internal/audio/tones.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-siege-defense/internal/event"
)

// tone - синтезированный заменитель звукового файла.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[string]tone{
	event.SoundEnemyHit:    {freq: 660, duration: 40 * time.Millisecond},
	event.SoundBuildPlace:  {freq: 220, duration: 120 * time.Millisecond},
	event.SoundUIClick:     {freq: 1320, duration: 25 * time.Millisecond},
	event.SoundShootCannon: {freq: 110, duration: 150 * time.Millisecond},
	"sfx_shoot_arrow":      {freq: 880, duration: 30 * time.Millisecond},
	"sfx_shoot_sniper":     {freq: 1760, duration: 20 * time.Millisecond},
	"sfx_shoot_ice":        {freq: 523, duration: 80 * time.Millisecond},
}

var defaultTone = tone{freq: 440, duration: 60 * time.Millisecond}

func toneFor(key string) tone {
	if t, ok := tones[key]; ok {
		return t
	}
	return defaultTone
}

// newToneStreamer строит конечный поток для ключа с громкостью 0..1.
func newToneStreamer(rate beep.SampleRate, key string, volume float64) (beep.Streamer, error) {
	t := toneFor(key)
	sine, err := generators.SineTone(rate, t.freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(t.duration), sine),
		Base:     2,
		Volume:   volumeLevel(volume),
		Silent:   volume <= 0,
	}, nil
}

// volumeLevel переводит линейную громкость в показатель степени для effects.Volume.
func volumeLevel(volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	if volume > 1 {
		volume = 1
	}
	return math.Log2(volume)
}
