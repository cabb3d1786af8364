// internal/component/entity.go
package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"go-circle-shooter/internal/config"
)

// Kind — вариант сущности
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindParticle:
		return "particle"
	}
	return "unknown"
}

// Entity — любой круглый движущийся объект на экране.
// Общие поля для всех вариантов, Alpha имеет смысл только у частиц.
type Entity struct {
	Kind   Kind
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2 // смещение за один тик
	Radius float64    // радиус для столкновений
	// DrawRadius — радиус для отрисовки; анимируется твином, пока Radius уже
	// равен целевому значению.
	DrawRadius float64
	Color      color.RGBA
	Alpha      float64

	removed bool
}

// NewEntity создаёт непрозрачную сущность.
func NewEntity(kind Kind, pos mgl64.Vec2, radius float64, c color.RGBA, vel mgl64.Vec2) *Entity {
	return &Entity{
		Kind:       kind,
		Pos:        pos,
		Vel:        vel,
		Radius:     radius,
		DrawRadius: radius,
		Color:      c,
		Alpha:      1,
	}
}

// Advance сдвигает сущность на один тик. Частицы дополнительно тормозятся и гаснут.
func (e *Entity) Advance() {
	e.Pos = e.Pos.Add(e.Vel)
	if e.Kind == KindParticle {
		e.Vel = e.Vel.Mul(config.ParticleFriction)
		e.Alpha -= config.ParticleAlphaStep
	}
}

// Faded — частица полностью погасла
func (e *Entity) Faded() bool {
	return e.Kind == KindParticle && e.Alpha <= 0
}

// MarkRemoved помечает сущность на удаление после прохода
func (e *Entity) MarkRemoved() {
	e.removed = true
}

// Removed сообщает, помечена ли сущность на удаление
func (e *Entity) Removed() bool {
	return e.removed
}
