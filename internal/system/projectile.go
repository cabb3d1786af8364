// internal/system/projectile.go
package system

import (
	"go-circle-shooter/internal/entity"
)

// ProjectileSystem двигает снаряды и помечает улетевшие за экран.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	w := s.world
	for _, p := range w.Projectiles {
		p.Advance()
		if OutOfBounds(p, w.Width, w.Height) {
			p.MarkRemoved()
		}
	}
}
