// internal/system/enemy.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/interfaces"
)

// EnemySystem двигает врагов и разбирает столкновения с игроком и снарядами.
type EnemySystem struct {
	world           *entity.World
	particles       *ParticleSystem
	animator        interfaces.Animator
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(world *entity.World, particles *ParticleSystem, animator interfaces.Animator, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		world:           world,
		particles:       particles,
		animator:        animator,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// Update — фаза врагов. Удаления только помечаются, сжатие коллекций
// выполняет World.Compact после прохода.
func (s *EnemySystem) Update() {
	if !s.game.Running() {
		return
	}
	w := s.world
	for _, enemy := range w.Enemies {
		if enemy.Removed() {
			continue
		}
		enemy.Advance()

		if Touching(w.Player, enemy) {
			// Итоговый счёт фиксируется в момент касания: попадания
			// остальных снарядов в этом тике уже не засчитываются.
			s.game.EndSession()
			return
		}

		for _, projectile := range w.Projectiles {
			if projectile.Removed() || !Touching(projectile, enemy) {
				continue
			}
			s.hit(enemy, projectile)
			if enemy.Removed() {
				break
			}
		}
	}
}

func (s *EnemySystem) hit(enemy, projectile *component.Entity) {
	s.particles.Burst(projectile.Pos, enemy)
	projectile.MarkRemoved()

	var score uint32
	if target := enemy.Radius - config.ShrinkStep; target > config.MinSurvivingRadius {
		// Радиус для столкновений меняется сразу, твин только догоняет картинку
		enemy.Radius = target
		s.animator.Animate(&enemy.DrawRadius, target, config.ShrinkDuration)
		score = s.world.AddScore(config.ScoreHit)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: enemy})
	} else {
		enemy.MarkRemoved()
		score = s.world.AddScore(config.ScoreKill)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemy})
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: score})
}
