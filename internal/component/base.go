// internal/component/base.go
package component

// Base — защищаемая база, единственная на сессию.
type Base struct {
	Radius float64 // радиус касания для врагов
}
