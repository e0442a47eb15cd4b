// internal/audio/sound_manager.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-siege-defense/internal/clock"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/interfaces"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager воспроизводит звуковые запросы симуляции через динамик.
// Без Initialize он только считает запросы, что удобно для -mute.
type SoundManager struct {
	interfaces.NopPresenter

	mu          sync.Mutex
	mixer       *beep.Mixer
	limiter     *Limiter
	initialized bool
	logger      *log.Logger
	played      int
}

func NewSoundManager(logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		limiter: NewLimiter(clock.RealTimeProvider{}, config.SFXMinInterval),
		logger:  logger,
	}
}

// Initialize открывает аудиоустройство.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит всё, что ещё играет.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlaySound реализует interfaces.Presenter. Повтор одного ключа чаще
// config.SFXMinInterval отбрасывается.
func (sm *SoundManager) PlaySound(key string, volume float64) {
	if !sm.limiter.Allow(key) {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played++
	if !sm.initialized {
		return
	}
	streamer, err := newToneStreamer(sampleRate, key, volume)
	if err != nil {
		sm.logger.Printf("sound %s: %v", key, err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Played - сколько звуков прошло ограничитель.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
