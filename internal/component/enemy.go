// internal/component/enemy.go
package component

import "gonum.org/v1/gonum/spatial/r2"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Destination   r2.Vec  // текущая точка назначения (центр клетки со смещением)
	Speed         float64 // единиц в секунду
	ContactDamage float64 // урон базе при касании
}
