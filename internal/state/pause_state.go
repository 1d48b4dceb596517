// internal/state/pause_state.go
package state

import "go-season-defense/internal/input"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — пауза поверх игры. Время сессии не идёт.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(frame input.Frame, deltaTime float64) {
	if frame.Pause {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Exit() {}

func (s *PauseState) Kind() Kind { return KindPause }

// Previous — игра под паузой (отрисовывается под затемнением)
func (s *PauseState) Previous() *GameState {
	return s.previous
}
