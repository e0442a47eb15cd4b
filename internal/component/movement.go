// component/movement.go
package component

// Position - мировые координаты сущности
type Position struct {
	X, Y float64
}
