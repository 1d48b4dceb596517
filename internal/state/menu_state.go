// internal/state/menu_state.go
package state

import "go-season-defense/internal/input"

// MenuState — главное меню: любая клавиша или клик начинают новую игру
type MenuState struct {
	sm      *StateMachine
	factory SessionFactory
}

func NewMenuState(sm *StateMachine, factory SessionFactory) *MenuState {
	return &MenuState{sm: sm, factory: factory}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(frame input.Frame, deltaTime float64) {
	if frame.AnyKey || frame.LeftReleased {
		// каждая игра получает свежую сессию
		m.sm.SetState(NewGameState(m.sm, m.factory(), m.factory))
	}
}

func (m *MenuState) Exit() {}

func (m *MenuState) Kind() Kind { return KindMenu }
