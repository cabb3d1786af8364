// internal/utils/color.go
package utils

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL переводит тон (градусы), насыщенность и светлоту (0..1) в color.RGBA.
func HSL(hue, saturation, lightness float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RandomHue возвращает цвет со случайным тоном и заданными насыщенностью и светлотой.
func (s *PRNGService) RandomHue(saturation, lightness float64) color.RGBA {
	return HSL(s.Float64()*360, saturation, lightness)
}

// Fade домножает цвет на alpha (0..1). Результат в premultiplied виде,
// как этого ждёт ebiten.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
