// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fraction — доля done от total в пределах [0, 1]; для total <= 0 возвращает 1.
func Fraction(done, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(done/total, 0, 1)
}
