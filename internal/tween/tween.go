// Package tween анимирует числовые поля к целевому значению за заданное время.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type binding struct {
	target *float64
	tween  *gween.Tween
}

// Tweener хранит активные анимации и продвигает их в Update.
// Каждое поле анимируется не более чем одним gween.Tween.
type Tweener struct {
	bindings []binding
	ease     ease.TweenFunc
}

// NewTweener создаёт аниматор; nil ease означает ease.OutQuad.
func NewTweener(easing ease.TweenFunc) *Tweener {
	if easing == nil {
		easing = ease.OutQuad
	}
	return &Tweener{ease: easing}
}

// Animate запускает анимацию *target от текущего значения к to.
// Повторный вызов для того же поля заменяет предыдущую анимацию.
func (t *Tweener) Animate(target *float64, to, duration float64) {
	if target == nil {
		return
	}
	if duration <= 0 {
		*target = to
		t.cancel(target)
		return
	}
	tw := gween.New(float32(*target), float32(to), float32(duration), t.ease)
	for i := range t.bindings {
		if t.bindings[i].target == target {
			t.bindings[i].tween = tw
			return
		}
	}
	t.bindings = append(t.bindings, binding{target: target, tween: tw})
}

// Update продвигает все анимации на dt секунд и удаляет завершённые.
func (t *Tweener) Update(dt float64) {
	kept := t.bindings[:0]
	for _, b := range t.bindings {
		current, finished := b.tween.Update(float32(dt))
		*b.target = float64(current)
		if !finished {
			kept = append(kept, b)
		}
	}
	clear(t.bindings[len(kept):])
	t.bindings = kept
}

// Active — число незавершённых анимаций
func (t *Tweener) Active() int {
	return len(t.bindings)
}

// Clear останавливает все анимации, оставляя поля как есть.
func (t *Tweener) Clear() {
	clear(t.bindings)
	t.bindings = t.bindings[:0]
}

func (t *Tweener) cancel(target *float64) {
	for i, b := range t.bindings {
		if b.target == target {
			t.bindings = append(t.bindings[:i], t.bindings[i+1:]...)
			return
		}
	}
}
