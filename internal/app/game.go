// internal/app/game.go
package app

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/system"
	"go-circle-shooter/internal/tween"
	"go-circle-shooter/internal/utils"
)

// Game holds the session state and runs the per-tick simulation.
type Game struct {
	ECS              *entity.World
	SpawnSystem      *system.SpawnSystem
	ParticleSystem   *system.ParticleSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	Tweener          *tween.Tweener
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Settings         config.Settings

	phase component.Phase
	ticks uint64 // тиков, отработанных в текущей сессии
}

// NewGame собирает мир и системы. Сессия не запускается до Start.
func NewGame(width, height float64, settings config.Settings) *Game {
	world := entity.NewWorld(width, height)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		ECS:             world,
		Tweener:         tween.NewTweener(nil),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Settings:        settings,
		phase:           component.MenuPhase,
	}
	g.SpawnSystem = system.NewSpawnSystem(world, rng, eventDispatcher, settings)
	g.ParticleSystem = system.NewParticleSystem(world, rng, settings)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.EnemySystem = system.NewEnemySystem(world, g.ParticleSystem, g.Tweener, g, eventDispatcher)
	return g
}

// Start начинает новую игру: сброс мира, таймера врагов и анимаций.
func (g *Game) Start() {
	g.ECS.NewGame()
	g.SpawnSystem.Reset()
	g.Tweener.Clear()
	g.ticks = 0
	g.phase = component.RunningPhase
	log.Printf("session started, spawn interval %.2f-%.2fs", g.Settings.SpawnIntervalMin, g.Settings.SpawnIntervalMax)
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionStarted})
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: g.ECS.Score})
}

// Update выполняет один тик. Вне запущенной сессии ничего не делает.
func (g *Game) Update(deltaTime float64) {
	if g.phase != component.RunningPhase {
		return
	}
	g.ticks++

	g.Tweener.Update(deltaTime)
	g.ParticleSystem.Update()
	g.ProjectileSystem.Update()
	g.EnemySystem.Update()
	g.ECS.Compact()

	if g.phase != component.RunningPhase {
		return
	}
	// Новый враг начнёт двигаться со следующего тика
	g.SpawnSystem.Update(deltaTime)
}

// EndSession останавливает цикл и сообщает итоговый счёт. Повторные вызовы игнорируются.
func (g *Game) EndSession() {
	if g.phase != component.RunningPhase {
		return
	}
	g.phase = component.OverPhase
	log.Printf("session ended: score %d after %d ticks", g.ECS.Score, g.ticks)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.SessionEnded,
		Data: event.SessionResult{FinalScore: g.ECS.Score, Ticks: g.ticks},
	})
}

// Fire выпускает снаряд в сторону точки экрана.
func (g *Game) Fire(x, y float64) {
	if g.phase != component.RunningPhase {
		return
	}
	g.ECS.FireProjectile(mgl64.Vec2{x, y})
}

// Resize меняет размер вьюпорта и центрирует игрока.
func (g *Game) Resize(width, height float64) {
	if width == g.ECS.Width && height == g.ECS.Height {
		return
	}
	g.ECS.Resize(width, height)
}

func (g *Game) Running() bool {
	return g.phase == component.RunningPhase
}

func (g *Game) Phase() component.Phase {
	return g.phase
}

func (g *Game) Score() uint32 {
	return g.ECS.Score
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

func (g *Game) World() *entity.World {
	return g.ECS
}
