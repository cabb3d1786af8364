// internal/component/session.go
package component

// Phase — фаза игровой сессии
type Phase int

const (
	MenuPhase Phase = iota // сессия ещё не начата
	RunningPhase
	OverPhase // игрок коснулся врага
)

func (p Phase) String() string {
	switch p {
	case MenuPhase:
		return "menu"
	case RunningPhase:
		return "running"
	case OverPhase:
		return "over"
	}
	return "unknown"
}
