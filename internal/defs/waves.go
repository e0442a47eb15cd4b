// internal/defs/waves.go
package defs

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	WaveNumber      int    `json:"wave"`
	EnemyCount      int    `json:"enemy_count"`
	SpawnIntervalMs int    `json:"spawn_interval_ms"`
	Archetype       string `json:"archetype"`
}

// SpawnInterval returns the delay between spawns in seconds.
func (w WaveDefinition) SpawnInterval() float64 { return msToSeconds(w.SpawnIntervalMs) }
