// internal/component/projectile.go
package component

import "github.com/mlange-42/ark/ecs"

// Bullet представляет летящий самонаводящийся снаряд.
// Цель хранится как дескриптор с поколением: умершая цель распознаётся сразу.
type Bullet struct {
	Target ecs.Entity
	Damage float64
	Speed  float64
}
