// internal/utils/math.go
package utils

import "math"

// Clamp01 ограничивает значение диапазоном [0, 1]
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Heading возвращает единичный вектор направления от (fromX, fromY) к (toX, toY).
// Для совпадающих точек ok == false: направление не определено.
func Heading(fromX, fromY, toX, toY float64) (dx, dy float64, ok bool) {
	if fromX == toX && fromY == toY {
		return 0, 0, false
	}
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle), true
}
