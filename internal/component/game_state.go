// internal/component/game_state.go
package component

// Phase - фаза планировщика волн
type Phase int

const (
	PhaseBuilding Phase = iota
	PhaseCombat
)

func (p Phase) String() string {
	if p == PhaseCombat {
		return "COMBAT"
	}
	return "BUILDING"
}

// Wave - состояние планировщика волн.
type Wave struct {
	Phase Phase
	Index int // -1 до первой волны

	BuildDuration int
	TimeLeft      int
	NextCountdown float64

	Archetype     string
	Remaining     int // ещё не заспавнено
	Active        int // живых юнитов волны
	SpawnInterval float64
	NextSpawn     float64

	Finished bool // список волн исчерпан
}

// Number is the 1-based number of the current wave.
func (w *Wave) Number() int {
	return w.Index + 1
}
