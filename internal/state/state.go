// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-circle-shooter/internal/interfaces"
	"go-circle-shooter/internal/ui"
	"go-circle-shooter/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Shell — общие для всех состояний объекты оболочки
type Shell struct {
	Game      interfaces.Game
	Renderer  *render.Renderer
	Score     *ui.ScoreIndicator
	Menu      *ui.MenuPanel
	Fonts     *ui.Fonts
	FrameSize func() (int, int) // текущий размер вьюпорта
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	shell   *Shell
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(shell *Shell) *StateMachine {
	return &StateMachine{shell: shell}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Resume возвращает ранее активное состояние без повторного Enter/Exit.
// Нужен для снятия паузы: игра продолжается с того же места.
func (sm *StateMachine) Resume(state State) {
	sm.current = state
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
