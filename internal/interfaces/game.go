package interfaces

import "go-circle-shooter/internal/entity"

// Game — то, что оболочка (state, ui) требует от игровой логики.
type Game interface {
	Start()
	Update(deltaTime float64)
	Fire(x, y float64)
	Resize(width, height float64)
	Running() bool
	Score() uint32
	World() *entity.World
}
