package state

import (
	"fmt"
	"testing"

	"go-season-defense/internal/input"
	"go-season-defense/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSim struct {
	id      int
	ticks   int
	outcome session.Outcome
	score   int
	err     error
}

func (f *fakeSim) Tick(input.Frame, float64) error {
	if f.err != nil {
		return f.err
	}
	f.ticks++
	return nil
}
func (f *fakeSim) Outcome() session.Outcome { return f.outcome }
func (f *fakeSim) Score() int               { return f.score }
func (f *fakeSim) View() session.View       { return session.View{Outcome: f.outcome} }

type factory struct {
	built []*fakeSim
}

func (f *factory) New() Simulation {
	sim := &fakeSim{id: len(f.built)}
	f.built = append(f.built, sim)
	return sim
}

func startAtMenu(t *testing.T) (*StateMachine, *factory) {
	t.Helper()
	sm := NewStateMachine()
	fac := &factory{}
	sm.SetState(NewMenuState(sm, fac.New))
	return sm, fac
}

func TestSplashAdvancesByTimeOrKey(t *testing.T) {
	fac := &factory{}

	sm := NewStateMachine()
	sm.SetState(NewSplashState(sm, 1.5, fac.New))
	sm.Update(input.Frame{}, 1.0)
	assert.Equal(t, KindSplash, sm.Current().Kind())
	assert.InDelta(t, 2.0/3, sm.Current().(*SplashState).Progress(), 1e-9)
	sm.Update(input.Frame{}, 0.6)
	assert.Equal(t, KindMenu, sm.Current().Kind())

	sm.SetState(NewSplashState(sm, 1.5, fac.New))
	sm.Update(input.Frame{AnyKey: true}, 0.01)
	assert.Equal(t, KindMenu, sm.Current().Kind())
	assert.Empty(t, fac.built, "splash does not start a session")
}

func TestMenuStartsFreshSession(t *testing.T) {
	sm, fac := startAtMenu(t)

	sm.Update(input.Frame{}, 0.1)
	assert.Equal(t, KindMenu, sm.Current().Kind())

	sm.Update(input.Frame{LeftReleased: true}, 0.1)
	require.Equal(t, KindGame, sm.Current().Kind())
	require.Len(t, fac.built, 1)
	assert.Same(t, fac.built[0], sm.Current().(*GameState).Simulation())
}

func TestGameTicksAndEnds(t *testing.T) {
	for _, tt := range []struct {
		outcome session.Outcome
		kind    Kind
		message string
	}{
		{session.Won, KindWon, "You won! Score: 120"},
		{session.Lost, KindLost, "You lost. Score: 120"},
	} {
		t.Run(tt.kind.String(), func(t *testing.T) {
			sm, fac := startAtMenu(t)
			sm.Update(input.Frame{AnyKey: true}, 0)
			sim := fac.built[0]

			sm.Update(input.Frame{}, 0.016)
			sm.Update(input.Frame{}, 0.016)
			assert.Equal(t, 2, sim.ticks)
			assert.Equal(t, KindGame, sm.Current().Kind())

			sim.outcome, sim.score = tt.outcome, 120
			sm.Update(input.Frame{}, 0.016)
			require.Equal(t, tt.kind, sm.Current().Kind())
			result := sm.Current().(*ResultState)
			assert.Equal(t, 120, result.Score())
			assert.Equal(t, tt.message, result.Message())

			// без клавиши остаёмся на экране итога
			sm.Update(input.Frame{LeftReleased: true}, 0.016)
			assert.Equal(t, tt.kind, sm.Current().Kind())

			sm.Update(input.Frame{AnyKey: true}, 0.016)
			assert.Equal(t, KindMenu, sm.Current().Kind())

			sm.Update(input.Frame{AnyKey: true}, 0.016)
			assert.Equal(t, KindGame, sm.Current().Kind())
			assert.Len(t, fac.built, 2, "restart builds a new session")
		})
	}
}

func TestPauseStopsTicks(t *testing.T) {
	sm, fac := startAtMenu(t)
	sm.Update(input.Frame{AnyKey: true}, 0)
	game := sm.Current().(*GameState)
	sim := fac.built[0]

	sm.Update(input.Frame{Pause: true, AnyKey: true}, 0.016)
	require.Equal(t, KindPause, sm.Current().Kind())
	assert.Same(t, game, sm.Current().(*PauseState).Previous())

	sm.Update(input.Frame{AnyKey: true}, 1)
	sm.Update(input.Frame{}, 1)
	assert.Equal(t, 0, sim.ticks)
	assert.Equal(t, KindPause, sm.Current().Kind())

	sm.Update(input.Frame{Pause: true, AnyKey: true}, 0.016)
	assert.Same(t, game, sm.Current())
	sm.Update(input.Frame{}, 0.016)
	assert.Equal(t, 1, sim.ticks)
	assert.Len(t, fac.built, 1, "resume keeps the session")
}

func TestTickErrorIsNotFatal(t *testing.T) {
	sm, fac := startAtMenu(t)
	sm.Update(input.Frame{AnyKey: true}, 0)
	fac.built[0].err = fmt.Errorf("tick: %w", session.ErrNotInitialized)

	sm.Update(input.Frame{}, 0.016)
	assert.Equal(t, KindGame, sm.Current().Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "splash", KindSplash.String())
	assert.Equal(t, "lost", KindLost.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
