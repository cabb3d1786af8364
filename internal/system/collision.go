// internal/system/collision.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
)

// Touching — круги касаются или пересекаются с допуском TouchTolerance.
// Предикат симметричен: Touching(a, b) == Touching(b, a).
func Touching(a, b *component.Entity) bool {
	dist := a.Pos.Sub(b.Pos).Len()
	return dist-a.Radius-b.Radius < config.TouchTolerance
}

// OutOfBounds — снаряд целиком вышел за любой из четырёх краёв вьюпорта.
func OutOfBounds(e *component.Entity, width, height float64) bool {
	x, y, r := e.Pos.X(), e.Pos.Y(), e.Radius
	return x+r < 0 || x-r > width || y+r < 0 || y-r > height
}
