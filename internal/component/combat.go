// internal/component/combat.go
package component

// MinScale — нижняя граница визуального масштаба по здоровью
const MinScale = 0.25

// Health — компонент здоровья
type Health struct {
	Value float64 // текущее здоровье, никогда не бывает отрицательным
	Max   float64 // начальное здоровье
}

// NewHealth создаёт полное здоровье
func NewHealth(max float64) Health {
	return Health{Value: max, Max: max}
}

// Scale — масштаб для отрисовки: max(health / initial, 0.25)
func (h Health) Scale() float64 {
	if h.Max <= 0 {
		return MinScale
	}
	s := h.Value / h.Max
	if s < MinScale {
		return MinScale
	}
	return s
}

// Tower — компонент башни
type Tower struct {
	Level        int
	Range        float64 // радиус атаки в единицах мира
	Damage       float64 // урон одного снаряда
	BulletSpeed  float64 // скорость снаряда, единиц в секунду
	FireInterval float64 // секунд между выстрелами
	Cooldown     float64 // оставшееся время до следующего выстрела
}
