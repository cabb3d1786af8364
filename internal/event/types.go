// internal/event/types.go
package event

const (
	SessionStarted EventType = "SessionStarted" // Новая игра началась
	SessionEnded   EventType = "SessionEnded"   // Враг коснулся игрока, Data: SessionResult
	ScoreChanged   EventType = "ScoreChanged"   // Data: uint32, новый счёт
	EnemySpawned   EventType = "EnemySpawned"   // Data: *component.Entity
	EnemyHit       EventType = "EnemyHit"       // Враг уменьшился, Data: *component.Entity
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен, Data: *component.Entity
)

// SessionResult — итог сессии
type SessionResult struct {
	FinalScore uint32
	Ticks      uint64
}
