// internal/interfaces/game_context.go
package interfaces

import "go-season-defense/pkg/gridmap"

// GameContext — то, что системам нужно от сессии: карта и поле потока.
// Интерфейс разрывает зависимость system -> session.
type GameContext interface {
	GetMap() *gridmap.Map
	GetFlowField() *gridmap.FlowField
}

// Random — источник случайности (utils.PRNGService)
type Random interface {
	Range(min, max float64) float64
	Jitter(amplitude float64) float64
}
