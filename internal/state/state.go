// internal/state/state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// State - экран верхнего уровня: меню, игра, пауза, итог.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран. Переход вызывает Exit старого
// и Enter нового, в этом порядке.
type StateMachine struct {
	current State
	logger  *log.Logger
}

func NewStateMachine() *StateMachine {
	return &StateMachine{logger: log.Default()}
}

// Current возвращает активное состояние или nil.
func (sm *StateMachine) Current() State { return sm.current }

func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.logger.Printf("state: %s -> %s", stateName(sm.current), stateName(newState))
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
