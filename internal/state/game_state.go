// internal/state/game_state.go
package state

import (
	"go-season-defense/internal/input"
	"go-season-defense/internal/logger"
	"go-season-defense/internal/session"
)

// Simulation — то, что игровому состоянию нужно от сессии
type Simulation interface {
	Tick(frame input.Frame, deltaTime float64) error
	Outcome() session.Outcome
	Score() int
	View() session.View
}

// SessionFactory создаёт новую сессию при входе в игру
type SessionFactory func() Simulation

// GameState — идёт игра
type GameState struct {
	sm      *StateMachine
	sim     Simulation
	factory SessionFactory
}

func NewGameState(sm *StateMachine, sim Simulation, factory SessionFactory) *GameState {
	return &GameState{sm: sm, sim: sim, factory: factory}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(frame input.Frame, deltaTime float64) {
	if frame.Pause {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if err := g.sim.Tick(frame, deltaTime); err != nil {
		// сессия без базы или карты: тик пропускается, игра не падает
		logger.Log.WithError(err).Debug("tick skipped")
		return
	}

	switch g.sim.Outcome() {
	case session.Won:
		g.sm.SetState(NewResultState(g.sm, KindWon, g.sim.Score(), g.factory))
	case session.Lost:
		g.sm.SetState(NewResultState(g.sm, KindLost, g.sim.Score(), g.factory))
	}
}

func (g *GameState) Exit() {}

func (g *GameState) Kind() Kind { return KindGame }

// Simulation — сессия для отрисовки
func (g *GameState) Simulation() Simulation {
	return g.sim
}
