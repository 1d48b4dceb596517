// internal/state/state.go
package state

import (
	"fmt"

	"go-season-defense/internal/input"
	"go-season-defense/internal/logger"
)

// Kind — вид состояния, по нему слой отрисовки выбирает экран
type Kind int

const (
	KindSplash Kind = iota
	KindMenu
	KindGame
	KindPause
	KindWon
	KindLost
)

func (k Kind) String() string {
	switch k {
	case KindSplash:
		return "splash"
	case KindMenu:
		return "menu"
	case KindGame:
		return "game"
	case KindPause:
		return "pause"
	case KindWon:
		return "won"
	case KindLost:
		return "lost"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(frame input.Frame, deltaTime float64)
	Exit()
	Kind() Kind
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		logger.Log.WithField("state", sm.current.Kind()).Debug("state changed")
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(frame input.Frame, deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(frame, deltaTime)
	}
}

// Current — текущее состояние (nil до первого SetState)
func (sm *StateMachine) Current() State {
	return sm.current
}
