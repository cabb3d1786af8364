package system

import (
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/utils"
)

// fakeGame записывает вызовы EndSession
type fakeGame struct {
	ended   int
	running bool
}

func (g *fakeGame) EndSession() {
	g.ended++
	g.running = false
}

func (g *fakeGame) Running() bool { return g.running }

// fakeAnimator записывает запросы на анимацию, не выполняя их
type fakeAnimator struct {
	targets []float64
}

func (a *fakeAnimator) Animate(target *float64, to, duration float64) {
	a.targets = append(a.targets, to)
}

// eventLog собирает события диспетчера
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	world      *entity.World
	particles  *ParticleSystem
	projectile *ProjectileSystem
	enemies    *EnemySystem
	game       *fakeGame
	animator   *fakeAnimator
	log        *eventLog
}

func newFixture(settings config.Settings) *fixture {
	world := entity.NewWorld(800, 600)
	rng := utils.NewPRNGService(42)
	dispatcher := event.NewDispatcher()
	log := &eventLog{}
	dispatcher.Subscribe(log, event.ScoreChanged, event.EnemyHit, event.EnemyDestroyed, event.EnemySpawned)

	f := &fixture{
		world:    world,
		game:     &fakeGame{running: true},
		animator: &fakeAnimator{},
		log:      log,
	}
	f.particles = NewParticleSystem(world, rng, settings)
	f.projectile = NewProjectileSystem(world)
	f.enemies = NewEnemySystem(world, f.particles, f.animator, f.game, dispatcher)
	return f
}

// step повторяет порядок фаз одного тика
func (f *fixture) step() {
	f.particles.Update()
	f.projectile.Update()
	f.enemies.Update()
	f.world.Compact()
}
