package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// countingState считает вызовы Enter и Exit
type countingState struct {
	enters, exits, updates int
}

func (s *countingState) Enter() { s.enters++ }
func (s *countingState) Update(deltaTime float64) { s.updates++ }
func (s *countingState) Draw(screen *ebiten.Image) {}
func (s *countingState) Exit() { s.exits++ }

func TestSetStateCallsEnterAndExit(t *testing.T) {
	sm := NewStateMachine(&Shell{})
	a, b := &countingState{}, &countingState{}

	sm.SetState(a)
	sm.SetState(b)

	if a.enters != 1 || a.exits != 1 {
		t.Fatalf("first state enters=%d exits=%d, want 1 and 1", a.enters, a.exits)
	}
	if b.enters != 1 || b.exits != 0 {
		t.Fatalf("second state enters=%d exits=%d, want 1 and 0", b.enters, b.exits)
	}
}

func TestResumeSkipsEnter(t *testing.T) {
	sm := NewStateMachine(&Shell{})
	play := &countingState{}
	sm.SetState(play)
	sm.SetState(NewPauseState(sm, play))

	sm.Resume(play)
	sm.Update(1.0 / 60)

	if play.enters != 1 {
		t.Fatalf("enters = %d, want 1: resume must not re-enter", play.enters)
	}
	if play.updates != 1 {
		t.Fatalf("updates = %d, want 1 after resume", play.updates)
	}
}
