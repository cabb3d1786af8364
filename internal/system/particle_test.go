package system

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
)

func TestFadedParticlesRemoved(t *testing.T) {
	f := newFixture(config.DefaultSettings())
	live := component.NewEntity(component.KindParticle, mgl64.Vec2{}, 1, color.RGBA{}, mgl64.Vec2{1, 1})
	dead := component.NewEntity(component.KindParticle, mgl64.Vec2{}, 1, color.RGBA{}, mgl64.Vec2{1, 1})
	dead.Alpha = 0
	f.world.Particles = append(f.world.Particles, dead, live)

	f.step()

	if len(f.world.Particles) != 1 || f.world.Particles[0] != live {
		t.Fatalf("particles = %v, want only the live one", f.world.Particles)
	}
	if dead.Pos != (mgl64.Vec2{}) {
		t.Fatal("faded particle was advanced")
	}
	if live.Pos != (mgl64.Vec2{1, 1}) {
		t.Fatalf("live particle at %v, want (1, 1)", live.Pos)
	}
}

func TestBurstSize(t *testing.T) {
	f := newFixture(config.DefaultSettings())
	tests := map[float64]int{6: 12, 12.3: 25, 12.2: 24, 35.9: 72}
	for radius, want := range tests {
		if got := f.particles.BurstSize(radius); got != want {
			t.Fatalf("BurstSize(%v) = %d, want %d", radius, got, want)
		}
	}
}

func TestProjectilesLeaveScreen(t *testing.T) {
	f := newFixture(config.DefaultSettings())
	p := addProjectile(f, 793, 300)
	p.Vel = mgl64.Vec2{config.ProjectileSpeed, 0}
	for i := 0; i < 2; i++ {
		f.step()
	}
	if len(f.world.Projectiles) != 1 {
		t.Fatalf("projectile removed too early at x=%v", p.Pos.X())
	}
	f.step()
	if len(f.world.Projectiles) != 0 {
		t.Fatalf("projectile at x=%v still alive", p.Pos.X())
	}
}
