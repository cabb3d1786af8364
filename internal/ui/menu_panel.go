// internal/ui/menu_panel.go
package ui

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-circle-shooter/internal/config"
)

// MenuPanel — окно меню по центру экрана: итоговый счёт и кнопка старта.
type MenuPanel struct {
	Rect        image.Rectangle
	StartButton *Button
	fonts       *Fonts
}

func NewMenuPanel(fonts *Fonts) *MenuPanel {
	p := &MenuPanel{fonts: fonts}
	p.StartButton = NewButton(image.Rectangle{}, "Start Game", fonts.Label)
	return p
}

// Layout центрирует панель во вьюпорте заданного размера.
func (p *MenuPanel) Layout(width, height int) {
	x := (width - config.MenuWidth) / 2
	y := (height - config.MenuHeight) / 2
	p.Rect = image.Rect(x, y, x+config.MenuWidth, y+config.MenuHeight)

	bx := x + (config.MenuWidth-config.ButtonWidth)/2
	by := p.Rect.Max.Y - config.ButtonHeight - 24
	p.StartButton.Rect = image.Rect(bx, by, bx+config.ButtonWidth, by+config.ButtonHeight)
}

// Draw рисует панель с итоговым счётом.
func (p *MenuPanel) Draw(screen *ebiten.Image, finalScore uint32) {
	vector.DrawFilledRect(screen, float32(p.Rect.Min.X), float32(p.Rect.Min.Y), float32(p.Rect.Dx()), float32(p.Rect.Dy()), config.MenuPanelColor, true)

	scoreText := strconv.FormatUint(uint64(finalScore), 10)
	p.drawCentered(screen, scoreText, p.fonts.Title, p.Rect.Min.Y+80)
	p.drawCentered(screen, "Points", p.fonts.Label, p.Rect.Min.Y+112)

	p.StartButton.Draw(screen)
}

func (p *MenuPanel) drawCentered(screen *ebiten.Image, s string, face font.Face, baseline int) {
	bounds := text.BoundString(face, s)
	x := p.Rect.Min.X + (p.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	text.Draw(screen, s, face, x, baseline, config.TextDarkColor)
}
