package component

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func TestAdvanceMovesByVelocity(t *testing.T) {
	for _, kind := range []Kind{KindPlayer, KindProjectile, KindEnemy, KindParticle} {
		e := NewEntity(kind, mgl64.Vec2{10, 20}, 5, color.RGBA{}, mgl64.Vec2{1.5, -2})
		e.Advance()
		if math.Abs(e.Pos.X()-11.5) > eps || math.Abs(e.Pos.Y()-18) > eps {
			t.Fatalf("%s: pos after advance = %v, want (11.5, 18)", kind, e.Pos)
		}
	}
}

func TestAdvanceKeepsVelocityForNonParticles(t *testing.T) {
	e := NewEntity(KindEnemy, mgl64.Vec2{}, 5, color.RGBA{}, mgl64.Vec2{3, 4})
	e.Advance()
	if e.Vel != (mgl64.Vec2{3, 4}) {
		t.Fatalf("enemy velocity = %v, want unchanged", e.Vel)
	}
	if e.Alpha != 1 {
		t.Fatalf("enemy alpha = %v, want 1", e.Alpha)
	}
}

func TestParticleFrictionAndFade(t *testing.T) {
	p := NewEntity(KindParticle, mgl64.Vec2{}, 1, color.RGBA{}, mgl64.Vec2{3, 4})
	prevSpeed := p.Vel.Len()
	prevAlpha := p.Alpha

	p.Advance()

	if p.Pos != (mgl64.Vec2{3, 4}) {
		t.Fatalf("particle moved to %v, want (3, 4)", p.Pos)
	}
	speed := p.Vel.Len()
	if speed >= prevSpeed || math.Abs(speed-prevSpeed*0.99) > eps {
		t.Fatalf("speed = %v, want %v", speed, prevSpeed*0.99)
	}
	if math.Abs(prevAlpha-p.Alpha-0.01) > eps {
		t.Fatalf("alpha = %v, want %v", p.Alpha, prevAlpha-0.01)
	}
}

func TestParticleFadesOut(t *testing.T) {
	p := NewEntity(KindParticle, mgl64.Vec2{}, 1, color.RGBA{}, mgl64.Vec2{1, 0})
	ticks := 0
	for !p.Faded() {
		prev := p.Alpha
		p.Advance()
		if p.Alpha >= prev {
			t.Fatalf("alpha did not decrease: %v -> %v", prev, p.Alpha)
		}
		ticks++
		if ticks > 200 {
			t.Fatal("particle never faded")
		}
	}
	if ticks < 99 || ticks > 101 {
		t.Fatalf("particle faded after %d ticks, want about 100", ticks)
	}
}

func TestFadedOnlyForParticles(t *testing.T) {
	e := NewEntity(KindEnemy, mgl64.Vec2{}, 1, color.RGBA{}, mgl64.Vec2{})
	e.Alpha = 0
	if e.Faded() {
		t.Fatal("enemy reported as faded")
	}
}

func TestMarkRemoved(t *testing.T) {
	e := NewEntity(KindProjectile, mgl64.Vec2{}, 1, color.RGBA{}, mgl64.Vec2{})
	if e.Removed() {
		t.Fatal("new entity is removed")
	}
	e.MarkRemoved()
	if !e.Removed() {
		t.Fatal("entity not removed after MarkRemoved")
	}
}
