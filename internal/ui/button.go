// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-circle-shooter/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	fontFace   font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, fontFace font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.ButtonTextColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		fontFace:   fontFace,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку с подсветкой под курсором.
func (b *Button) Draw(screen *ebiten.Image) {
	bgColor := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bgColor = b.HoverColor
	}
	vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), float32(b.Rect.Dx()), float32(b.Rect.Dy()), bgColor, true)

	textBounds := text.BoundString(b.fontFace, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, b.fontFace, textX, textY, b.TextColor)
}
