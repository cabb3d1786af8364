// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState — идёт игра
type PlayState struct {
	sm *StateMachine
}

func NewPlayState(sm *StateMachine) *PlayState {
	return &PlayState{sm: sm}
}

func (p *PlayState) Enter() {
	p.sm.shell.Renderer.Clear()
}

func (p *PlayState) Update(deltaTime float64) {
	shell := p.sm.shell
	game := shell.Game

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		game.Fire(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		game.Fire(float64(x), float64(y))
	}

	game.Update(deltaTime)
	shell.Renderer.Step(game.World())

	if !game.Running() {
		p.sm.SetState(NewMenuState(p.sm))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	shell := p.sm.shell
	shell.Renderer.Draw(screen)
	shell.Score.Draw(screen)
}

func (p *PlayState) Exit() {
	// Ничего не делаем при выходе
}
