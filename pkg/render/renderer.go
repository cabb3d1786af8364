// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/utils"
)

// Renderer draws the world onto an offscreen trail image that is faded,
// not cleared, every frame. The HUD is drawn on top of it by the caller.
type Renderer struct {
	trail *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// DrawCircle is the render sink: one filled circle, alpha in 0..1.
func (r *Renderer) DrawCircle(dst *ebiten.Image, x, y, radius float64, c color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	if alpha < 1 {
		c = utils.Fade(c, alpha)
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius), c, true)
}

// Step advances the trail by one frame: fade the old image, draw current entities.
// Call it once per simulation tick so the fade speed does not depend on FPS.
func (r *Renderer) Step(w *entity.World) {
	width, height := int(w.Width), int(w.Height)
	if width <= 0 || height <= 0 {
		return
	}
	r.ensureTrail(width, height)

	vector.DrawFilledRect(r.trail, 0, 0, float32(width), float32(height), TrailColor(), false)

	for _, p := range w.Particles {
		r.DrawCircle(r.trail, p.Pos.X(), p.Pos.Y(), p.DrawRadius, EntityColor(p), 1)
	}
	for _, p := range w.Projectiles {
		r.DrawCircle(r.trail, p.Pos.X(), p.Pos.Y(), p.DrawRadius, p.Color, 1)
	}
	for _, e := range w.Enemies {
		r.DrawCircle(r.trail, e.Pos.X(), e.Pos.Y(), e.DrawRadius, e.Color, 1)
	}
	if pl := w.Player; pl != nil {
		r.DrawCircle(r.trail, pl.Pos.X(), pl.Pos.Y(), pl.DrawRadius, pl.Color, 1)
	}
}

// Draw copies the trail image onto the screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.trail == nil {
		return
	}
	screen.DrawImage(r.trail, nil)
}

// Clear wipes the trail, used when a new game starts.
func (r *Renderer) Clear() {
	if r.trail != nil {
		r.trail.Clear()
	}
}

func (r *Renderer) ensureTrail(width, height int) {
	if r.trail != nil {
		b := r.trail.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		r.trail.Deallocate()
	}
	r.trail = ebiten.NewImage(width, height)
}
