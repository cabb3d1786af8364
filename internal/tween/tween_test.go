package tween

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimateReachesTarget(t *testing.T) {
	tw := NewTweener(ease.Linear)
	v := 30.0
	tw.Animate(&v, 20, 1)

	tw.Update(0.5)
	if math.Abs(v-25) > 1e-9 {
		t.Fatalf("value at half time = %v, want 25", v)
	}
	tw.Update(0.6)
	if v != 20 {
		t.Fatalf("value after duration = %v, want 20", v)
	}
	if tw.Active() != 0 {
		t.Fatalf("active = %d, want 0", tw.Active())
	}
}

func TestDefaultEaseMonotonic(t *testing.T) {
	tw := NewTweener(nil)
	v := 30.0
	tw.Animate(&v, 20, 0.5)
	prev := v
	for i := 0; i < 40; i++ {
		tw.Update(1.0 / 60)
		if v > prev {
			t.Fatalf("value went up: %v -> %v", prev, v)
		}
		prev = v
	}
	if v != 20 {
		t.Fatalf("value = %v, want 20", v)
	}
}

func TestAnimateReplacesExisting(t *testing.T) {
	tw := NewTweener(ease.Linear)
	v := 30.0
	tw.Animate(&v, 20, 1)
	tw.Update(0.5)
	tw.Animate(&v, 15, 1)
	if tw.Active() != 1 {
		t.Fatalf("active = %d, want 1", tw.Active())
	}
	tw.Update(1)
	if v != 15 {
		t.Fatalf("value = %v, want 15", v)
	}
}

func TestZeroDurationApplies(t *testing.T) {
	tw := NewTweener(ease.Linear)
	v := 5.0
	tw.Animate(&v, 1, 0)
	if v != 1 || tw.Active() != 0 {
		t.Fatalf("value = %v active = %d, want 1 and 0", v, tw.Active())
	}
}

func TestClearStopsAnimations(t *testing.T) {
	tw := NewTweener(ease.Linear)
	a, b := 10.0, 10.0
	tw.Animate(&a, 0, 1)
	tw.Animate(&b, 0, 1)
	tw.Clear()
	tw.Update(1)
	if a != 10 || b != 10 {
		t.Fatalf("values changed after Clear: %v %v", a, b)
	}
}

func TestShrinkTicksMatchDuration(t *testing.T) {
	tw := NewTweener(nil)
	v := 30.0
	tw.Animate(&v, 20, 0.5)
	ticks := 0
	for tw.Active() > 0 && ticks < 100 {
		tw.Update(1.0 / 60)
		ticks++
	}
	if ticks < 29 || ticks > 31 {
		t.Fatalf("finished after %d ticks, want about 30", ticks)
	}
	if v != 20 {
		t.Fatalf("value = %v, want 20", v)
	}
}
