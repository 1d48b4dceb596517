// internal/state/splash_state.go
package state

import "go-season-defense/internal/input"

// SplashState — заставка: держится duration секунд или до любой клавиши
type SplashState struct {
	sm       *StateMachine
	factory  SessionFactory
	duration float64
	elapsed  float64
}

func NewSplashState(sm *StateMachine, duration float64, factory SessionFactory) *SplashState {
	return &SplashState{sm: sm, duration: duration, factory: factory}
}

func (s *SplashState) Enter() {}

func (s *SplashState) Update(frame input.Frame, deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed >= s.duration || frame.AnyKey {
		s.sm.SetState(NewMenuState(s.sm, s.factory))
	}
}

func (s *SplashState) Exit() {}

func (s *SplashState) Kind() Kind { return KindSplash }

// Progress — доля показанной заставки
func (s *SplashState) Progress() float64 {
	if s.duration <= 0 {
		return 1
	}
	return min(s.elapsed/s.duration, 1)
}
