// internal/economy/ledger.go
package economy

import "go-siege-defense/internal/event"

// Currency - одна из двух независимых валют.
type Currency int

const (
	Gold Currency = iota
	Mana
)

func (c Currency) String() string {
	if c == Mana {
		return "mana"
	}
	return "gold"
}

// Ledger - баланс золота и маны плюс счётчик жизней. Балансы никогда не
// уходят в минус; каждое изменение рассылает полный снимок подписчикам.
type Ledger struct {
	balances [2]int
	lives    int
	defeated bool

	onChange []func(event.Stats)
	onDefeat []func()
}

func NewLedger(gold, mana, lives int) *Ledger {
	return &Ledger{balances: [2]int{gold, mana}, lives: lives}
}

// OnChange registers a subscriber for stat snapshots.
func (l *Ledger) OnChange(fn func(event.Stats)) {
	l.onChange = append(l.onChange, fn)
}

// OnDefeat registers a subscriber for the one-time defeat signal.
func (l *Ledger) OnDefeat(fn func()) {
	l.onDefeat = append(l.onDefeat, fn)
}

func (l *Ledger) Snapshot() event.Stats {
	return event.Stats{Gold: l.balances[Gold], Mana: l.balances[Mana], Lives: l.lives}
}

func (l *Ledger) Balance(c Currency) int { return l.balances[c] }
func (l *Ledger) Lives() int             { return l.lives }
func (l *Ledger) Defeated() bool         { return l.defeated }

func (l *Ledger) CanAfford(c Currency, cost int) bool {
	return cost >= 0 && l.balances[c] >= cost
}

// Spend debits the balance. Insufficient funds leave it unchanged and return false.
func (l *Ledger) Spend(c Currency, amount int) bool {
	if !l.CanAfford(c, amount) {
		return false
	}
	l.balances[c] -= amount
	l.broadcast()
	return true
}

// Earn credits a single currency. Non-positive amounts are ignored.
func (l *Ledger) Earn(c Currency, amount int) {
	if amount <= 0 {
		return
	}
	l.balances[c] += amount
	l.broadcast()
}

// EarnBatch credits both currencies with one broadcast.
func (l *Ledger) EarnBatch(gold, mana int) {
	changed := false
	if gold > 0 {
		l.balances[Gold] += gold
		changed = true
	}
	if mana > 0 {
		l.balances[Mana] += mana
		changed = true
	}
	if changed {
		l.broadcast()
	}
}

// LoseLife removes one life, never going below zero. Crossing to zero
// fires the defeat signal exactly once.
func (l *Ledger) LoseLife() {
	if l.lives <= 0 {
		return
	}
	l.lives--
	l.broadcast()
	if l.lives == 0 && !l.defeated {
		l.defeated = true
		for _, fn := range l.onDefeat {
			fn()
		}
	}
}

// AddLives restores lives; a defeated ledger stays defeated.
func (l *Ledger) AddLives(n int) {
	if n <= 0 || l.defeated {
		return
	}
	l.lives += n
	l.broadcast()
}

func (l *Ledger) broadcast() {
	s := l.Snapshot()
	for _, fn := range l.onChange {
		fn(s)
	}
}
