// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — меню: показывает счёт прошлой сессии и ждёт команды старта.
// Последний кадр игры остаётся на фоне.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	w, h := m.sm.shell.FrameSize()
	m.sm.shell.Menu.Layout(w, h)
}

func (m *MenuState) Update(deltaTime float64) {
	shell := m.sm.shell
	w, h := shell.FrameSize()
	shell.Menu.Layout(w, h)

	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if shell.Menu.StartButton.Contains(ebiten.CursorPosition()) {
			start = true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if shell.Menu.StartButton.Contains(ebiten.TouchPosition(id)) {
			start = true
		}
	}

	if start {
		shell.Game.Start()
		m.sm.SetState(NewPlayState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	shell := m.sm.shell
	shell.Renderer.Draw(screen)
	shell.Menu.Draw(screen, shell.Score.FinalScore())
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
