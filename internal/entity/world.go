// internal/entity/world.go
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/utils"
)

// World — контейнер состояния одной игровой сессии.
// Коллекции упорядочены: новые сущности добавляются в конец.
type World struct {
	Player      *component.Entity
	Score       uint32
	Projectiles []*component.Entity
	Enemies     []*component.Entity
	Particles   []*component.Entity
	Width       float64
	Height      float64
}

// NewWorld создаёт мир для вьюпорта заданного размера и сразу начинает новую игру.
func NewWorld(width, height float64) *World {
	w := &World{Width: width, Height: height}
	w.NewGame()
	return w
}

// Center — центр вьюпорта
func (w *World) Center() mgl64.Vec2 {
	return mgl64.Vec2{w.Width / 2, w.Height / 2}
}

// NewGame сбрасывает игрока в центр, обнуляет счёт и очищает коллекции.
func (w *World) NewGame() {
	w.Player = component.NewEntity(component.KindPlayer, w.Center(), config.PlayerRadius, config.PlayerColor, mgl64.Vec2{})
	w.Score = 0
	clear(w.Projectiles)
	clear(w.Enemies)
	clear(w.Particles)
	w.Projectiles = w.Projectiles[:0]
	w.Enemies = w.Enemies[:0]
	w.Particles = w.Particles[:0]
}

// Resize меняет размер вьюпорта и возвращает игрока в центр.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
	if w.Player != nil {
		w.Player.Pos = w.Center()
	}
}

// Empty — вьюпорт нулевого размера
func (w *World) Empty() bool {
	return w.Width <= 0 || w.Height <= 0
}

// FireProjectile выпускает снаряд из центра в сторону target.
// Клик ровно в центр игнорируется: направление не определено.
func (w *World) FireProjectile(target mgl64.Vec2) (*component.Entity, bool) {
	center := w.Center()
	dx, dy, ok := utils.Heading(center.X(), center.Y(), target.X(), target.Y())
	if !ok {
		return nil, false
	}
	vel := mgl64.Vec2{dx, dy}.Mul(config.ProjectileSpeed)
	p := component.NewEntity(component.KindProjectile, w.Player.Pos, config.ProjectileRadius, config.ProjectileColor, vel)
	w.Projectiles = append(w.Projectiles, p)
	return p, true
}

// AddScore начисляет очки и возвращает новый счёт.
func (w *World) AddScore(points uint32) uint32 {
	w.Score += points
	return w.Score
}

// Compact удаляет помеченные сущности из всех коллекций, сохраняя порядок.
func (w *World) Compact() {
	w.Projectiles = compact(w.Projectiles)
	w.Enemies = compact(w.Enemies)
	w.Particles = compact(w.Particles)
}

func compact(list []*component.Entity) []*component.Entity {
	kept := list[:0]
	for _, e := range list {
		if !e.Removed() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}
