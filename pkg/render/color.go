// pkg/render/color.go
package render

import (
	"image/color"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/utils"
)

// EntityColor returns the fill colour of an entity, faded by its alpha.
func EntityColor(e *component.Entity) color.RGBA {
	if e.Kind != component.KindParticle {
		return e.Color
	}
	return utils.Fade(e.Color, e.Alpha)
}

// TrailColor is the translucent fill that fades the previous frame instead of clearing it.
func TrailColor() color.RGBA {
	return utils.Fade(config.BackgroundColor, config.TrailAlpha)
}
