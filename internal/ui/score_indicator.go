// internal/ui/score_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/event"
)

// ScoreIndicator — счёт в левом верхнем углу. Получает значение только из событий.
type ScoreIndicator struct {
	X, Y      int
	Color     color.Color
	fontFace  font.Face
	label     string
	lastFinal uint32
}

func NewScoreIndicator(x, y int, fontFace font.Face) *ScoreIndicator {
	return &ScoreIndicator{
		X:        x,
		Y:        y,
		Color:    config.TextLightColor,
		fontFace: fontFace,
		label:    formatScore(0),
	}
}

// OnEvent реализует event.Listener
func (i *ScoreIndicator) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScoreChanged:
		if score, ok := e.Data.(uint32); ok {
			i.label = formatScore(score)
		}
	case event.SessionEnded:
		if result, ok := e.Data.(event.SessionResult); ok {
			i.lastFinal = result.FinalScore
		}
	}
}

// FinalScore — счёт последней завершённой сессии
func (i *ScoreIndicator) FinalScore() uint32 {
	return i.lastFinal
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image) {
	text.Draw(screen, i.label, i.fontFace, i.X, i.Y, i.Color)
}

func formatScore(score uint32) string {
	return "Score: " + strconv.FormatUint(uint64(score), 10)
}
