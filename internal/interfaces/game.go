// internal/interfaces/game.go
package interfaces

import (
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
)

// TowerStats - данные для инспектора выбранного строения.
type TowerStats struct {
	ID          types.EntityID
	Key         string
	Name        string
	Kind        string
	Level       int
	Damage      int // с учётом бафа
	Range       float64
	CooldownMs  int
	Multiplier  float64
	Health      int
	MaxHealth   int
	UpgradeCost int
	SellValue   int
	Upgradable  bool
	Sellable    bool
}

// Presenter receives fire-and-forget notifications from the simulation.
// Implementations must not call back into the game from these methods.
type Presenter interface {
	OnStatsChanged(stats event.Stats)
	OnWaveTimer(timeLeft, totalTime int)
	OnWaveStarted(waveNumber int)
	OnPhaseChanged(phase component.Phase)
	OnVictory(finalWave int)
	OnDefeat()
	OnTowerSelected(stats TowerStats)
	OnTowerDeselected()
	OnSpellCast(spellID string, success bool)
	PlayEffect(kind string, x, y float64)
	PlaySound(key string, volume float64)
}

// NopPresenter ignores every notification. Embed it to implement a subset.
type NopPresenter struct{}

func (NopPresenter) OnStatsChanged(event.Stats)          {}
func (NopPresenter) OnWaveTimer(int, int)                {}
func (NopPresenter) OnWaveStarted(int)                   {}
func (NopPresenter) OnPhaseChanged(component.Phase)      {}
func (NopPresenter) OnVictory(int)                       {}
func (NopPresenter) OnDefeat()                           {}
func (NopPresenter) OnTowerSelected(TowerStats)          {}
func (NopPresenter) OnTowerDeselected()                  {}
func (NopPresenter) OnSpellCast(string, bool)            {}
func (NopPresenter) PlayEffect(string, float64, float64) {}
func (NopPresenter) PlaySound(string, float64)           {}

// Presenters fans a notification out to several presenters in order.
type Presenters []Presenter

func (ps Presenters) OnStatsChanged(s event.Stats) {
	for _, p := range ps {
		p.OnStatsChanged(s)
	}
}

func (ps Presenters) OnWaveTimer(timeLeft, totalTime int) {
	for _, p := range ps {
		p.OnWaveTimer(timeLeft, totalTime)
	}
}

func (ps Presenters) OnWaveStarted(n int) {
	for _, p := range ps {
		p.OnWaveStarted(n)
	}
}

func (ps Presenters) OnPhaseChanged(phase component.Phase) {
	for _, p := range ps {
		p.OnPhaseChanged(phase)
	}
}

func (ps Presenters) OnVictory(finalWave int) {
	for _, p := range ps {
		p.OnVictory(finalWave)
	}
}

func (ps Presenters) OnDefeat() {
	for _, p := range ps {
		p.OnDefeat()
	}
}

func (ps Presenters) OnTowerSelected(stats TowerStats) {
	for _, p := range ps {
		p.OnTowerSelected(stats)
	}
}

func (ps Presenters) OnTowerDeselected() {
	for _, p := range ps {
		p.OnTowerDeselected()
	}
}

func (ps Presenters) OnSpellCast(spellID string, success bool) {
	for _, p := range ps {
		p.OnSpellCast(spellID, success)
	}
}

func (ps Presenters) PlayEffect(kind string, x, y float64) {
	for _, p := range ps {
		p.PlayEffect(kind, x, y)
	}
}

func (ps Presenters) PlaySound(key string, volume float64) {
	for _, p := range ps {
		p.PlaySound(key, volume)
	}
}
