// internal/event/types.go
package event

import (
	"go-season-defense/internal/component"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	WaveSpawned      EventType = "WaveSpawned"      // Волна создана
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен уроном
	EnemyReachedBase EventType = "EnemyReachedBase" // Враг дошёл до базы
	TowerPlaced      EventType = "TowerPlaced"
	TowerDestroyed   EventType = "TowerDestroyed"
	ObstaclePlaced   EventType = "ObstaclePlaced"
	BaseDamaged      EventType = "BaseDamaged"
	BaseDestroyed    EventType = "BaseDestroyed"
	SeasonChanged    EventType = "SeasonChanged"
	SeasonsCompleted EventType = "SeasonsCompleted" // Все сезоны пройдены
)

// WaveData — данные WaveSpawned
type WaveData struct {
	Requested int
	Accepted  int
	Forced    bool
}

// EntityData — данные событий об одной сущности
type EntityData struct {
	Entity   ecs.Entity
	Position r2.Vec
}

// DamageData — данные BaseDamaged
type DamageData struct {
	Amount    float64
	Remaining float64
}

// SeasonData — данные SeasonChanged
type SeasonData struct {
	From, To component.SeasonKind
	Index    int
}
