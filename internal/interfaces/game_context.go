// internal/interfaces/game_context.go
package interfaces

// GameContext — методы Game, которые нужны системам.
// Это помогает избежать циклических зависимостей.
type GameContext interface {
	EndSession()
	Running() bool
}

// Animator — внешний аниматор числовых полей (уменьшение врага).
type Animator interface {
	Animate(target *float64, to, duration float64)
}
