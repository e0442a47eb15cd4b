// internal/event/types.go
package event

import (
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

const (
	UnitSpawned        EventType = "UnitSpawned"
	UnitRemoved        EventType = "UnitRemoved" // убит или дошёл до ядра
	StructurePlaced    EventType = "StructurePlaced"
	StructureDestroyed EventType = "StructureDestroyed" // разрушено или продано
	TowerFired         EventType = "TowerFired"
	CoreStruck         EventType = "CoreStruck"
	PhaseChanged       EventType = "PhaseChanged"
	WaveTimer          EventType = "WaveTimer"
	WaveStarted        EventType = "WaveStarted"
	WaveEnded          EventType = "WaveEnded" // Волна закончилась
	Victory            EventType = "Victory"
	Defeat             EventType = "Defeat"
	StatsChanged       EventType = "StatsChanged"
	SpellCast          EventType = "SpellCast"
	EffectRequested    EventType = "EffectRequested"
	SoundRequested     EventType = "SoundRequested"
)

// UnitRemovedData is carried by UnitRemoved.
type UnitRemovedData struct {
	ID         types.EntityID
	Killed     bool // false - дошёл до цели
	X, Y       float64
	RewardGold int
}

// StructureData is carried by StructurePlaced and StructureDestroyed.
type StructureData struct {
	ID   types.EntityID
	Key  string
	Cell isogrid.Cell
	Sold bool
}

// TowerFiredData is carried by TowerFired.
type TowerFiredData struct {
	TowerID    types.EntityID
	TargetID   types.EntityID
	Projectile types.EntityID
}

// WaveTimerData is carried by WaveTimer.
type WaveTimerData struct {
	TimeLeft  int
	TotalTime int
}

// WaveEndedData is carried by WaveEnded.
type WaveEndedData struct {
	WaveNumber int
	Reward     int
}

// SpellCastData is carried by SpellCast.
type SpellCastData struct {
	SpellID string
	Success bool
}

// EffectData is carried by EffectRequested.
type EffectData struct {
	Kind string
	X, Y float64
}

// SoundData is carried by SoundRequested.
type SoundData struct {
	Key    string
	Volume float64
}

// Stats - снимок ресурсов, рассылается при каждом изменении.
type Stats struct {
	Gold  int
	Mana  int
	Lives int
}

// Effect kinds and sound keys used by the simulation.
const (
	EffectHit       = "HIT"
	EffectExplosion = "EXPLOSION"
	EffectBuild     = "BUILD"
	EffectIce       = "ICE"
	EffectMuzzle    = "MUZZLE"

	SoundEnemyHit    = "sfx_enemy_hit"
	SoundBuildPlace  = "sfx_build_place"
	SoundUIClick     = "sfx_ui_click"
	SoundShootCannon = "sfx_shoot_cannon" // также звук заклинания NUKE
)
