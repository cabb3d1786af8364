// internal/system/particle.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/utils"
)

// ParticleSystem двигает частицы и убирает погасшие.
type ParticleSystem struct {
	world      *entity.World
	rng        *utils.PRNGService
	burstCount int
}

func NewParticleSystem(world *entity.World, rng *utils.PRNGService, settings config.Settings) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng, burstCount: settings.BurstCount}
}

// Update — фаза частиц: погасшие помечаются на удаление, остальные двигаются.
func (s *ParticleSystem) Update() {
	for _, p := range s.world.Particles {
		if p.Faded() {
			p.MarkRemoved()
			continue
		}
		p.Advance()
	}
}

// BurstSize — сколько частиц даёт попадание во врага данного радиуса.
func (s *ParticleSystem) BurstSize(enemyRadius float64) int {
	if s.burstCount > 0 {
		return s.burstCount
	}
	return int(math.Round(enemyRadius * config.BurstPerRadius))
}

// Burst создаёт вспышку частиц цвета врага в точке at.
func (s *ParticleSystem) Burst(at mgl64.Vec2, enemy *component.Entity) {
	n := s.BurstSize(enemy.Radius)
	for i := 0; i < n; i++ {
		radius := math.Max(s.rng.Float64()*config.ParticleMaxRadius, config.ParticleMinRadius)
		vel := mgl64.Vec2{
			(s.rng.Float64() - 0.5) * (s.rng.Float64() * config.ParticleMaxSpeed),
			(s.rng.Float64() - 0.5) * (s.rng.Float64() * config.ParticleMaxSpeed),
		}
		p := component.NewEntity(component.KindParticle, at, radius, enemy.Color, vel)
		s.world.Particles = append(s.world.Particles, p)
	}
}
