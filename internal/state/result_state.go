// internal/state/result_state.go
package state

import (
	"fmt"

	"go-season-defense/internal/input"
)

// ResultState — экран победы или поражения; любая клавиша возвращает в меню
type ResultState struct {
	sm      *StateMachine
	kind    Kind
	score   int
	factory SessionFactory
}

func NewResultState(sm *StateMachine, kind Kind, score int, factory SessionFactory) *ResultState {
	return &ResultState{sm: sm, kind: kind, score: score, factory: factory}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Update(frame input.Frame, deltaTime float64) {
	if frame.AnyKey {
		r.sm.SetState(NewMenuState(r.sm, r.factory))
	}
}

func (r *ResultState) Exit() {}

func (r *ResultState) Kind() Kind { return r.kind }

func (r *ResultState) Score() int { return r.score }

// Message — текст итогового экрана
func (r *ResultState) Message() string {
	if r.kind == KindWon {
		return fmt.Sprintf("You won! Score: %d", r.score)
	}
	return fmt.Sprintf("You lost. Score: %d", r.score)
}
