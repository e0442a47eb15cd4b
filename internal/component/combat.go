// internal/component/combat.go
package component

// Health - компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Fraction returns the remaining health share in [0,1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Value) / float64(h.Max)
	if f < 0 {
		return 0
	}
	return f
}
