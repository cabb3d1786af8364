// internal/system/spawner.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/utils"
)

// SpawnSystem выпускает врагов с краёв экрана через случайные интервалы.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	intervalMin     float64
	intervalMax     float64
	timer           float64 // сколько прошло с последнего появления
	interval        float64 // текущий интервал до следующего появления
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, settings config.Settings) *SpawnSystem {
	s := &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		intervalMin:     settings.SpawnIntervalMin,
		intervalMax:     settings.SpawnIntervalMax,
	}
	s.Reset()
	return s
}

// Reset обнуляет таймер и выбирает новый интервал.
func (s *SpawnSystem) Reset() {
	s.timer = 0
	s.interval = s.rng.Range(s.intervalMin, s.intervalMax)
}

// Interval — текущий интервал до следующего врага, в секундах
func (s *SpawnSystem) Interval() float64 {
	return s.interval
}

// Update копит время и выпускает врагов, когда истекает интервал.
// После долгого кадра может выпустить несколько врагов подряд.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	for s.interval > 0 && s.timer >= s.interval {
		s.timer -= s.interval
		s.SpawnEnemy()
		s.interval = s.rng.Range(s.intervalMin, s.intervalMax)
	}
}

// SpawnEnemy создаёт врага за краем экрана, летящего к центру.
func (s *SpawnSystem) SpawnEnemy() *component.Entity {
	w := s.world
	if w.Empty() {
		return nil
	}

	radius := config.EnemyMinRadius + s.rng.Float64()*config.EnemyRadiusRange
	var x, y float64
	if s.rng.Chance(0.5) {
		// левый или правый край
		if s.rng.Chance(0.5) {
			x = -radius
		} else {
			x = w.Width + radius
		}
		y = s.rng.Float64() * w.Height
	} else {
		// верхний или нижний край
		x = s.rng.Float64() * w.Width
		if s.rng.Chance(0.5) {
			y = -radius
		} else {
			y = w.Height + radius
		}
	}

	center := w.Center()
	angle := math.Atan2(center.Y()-y, center.X()-x)
	vel := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
	colour := s.rng.RandomHue(config.EnemySaturation, config.EnemyLightness)

	enemy := component.NewEntity(component.KindEnemy, mgl64.Vec2{x, y}, radius, colour, vel)
	w.Enemies = append(w.Enemies, enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
	return enemy
}
