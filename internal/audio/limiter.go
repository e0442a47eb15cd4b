// internal/audio/limiter.go
package audio

import (
	"sync"
	"time"

	"go-siege-defense/internal/clock"
)

// Limiter пропускает не больше одного звука с данным ключом за interval.
type Limiter struct {
	mu       sync.Mutex
	provider clock.TimeProvider
	interval time.Duration
	last     map[string]time.Time
}

func NewLimiter(provider clock.TimeProvider, interval time.Duration) *Limiter {
	return &Limiter{
		provider: provider,
		interval: interval,
		last:     make(map[string]time.Time),
	}
}

// Allow отмечает воспроизведение и возвращает false, если ключ звучал недавно.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.provider.Now()
	if prev, ok := l.last[key]; ok && now.Sub(prev) < l.interval {
		return false
	}
	l.last[key] = now
	return true
}
