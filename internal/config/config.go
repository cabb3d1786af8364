// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1200 // Стартовый размер окна, дальше размер берётся из Layout
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TPS          = 60

	PlayerRadius = 30.0

	ProjectileSpeed  = 6.0 // пикселей за тик
	ProjectileRadius = 5.0

	EnemyMinRadius   = 6.0
	EnemyRadiusRange = 30.0 // радиус врага: [EnemyMinRadius, EnemyMinRadius+EnemyRadiusRange)
	EnemySaturation  = 0.5
	EnemyLightness   = 0.5

	// Касание кругов: dist - rA - rB < TouchTolerance
	TouchTolerance = 1.0

	ShrinkStep         = 10.0 // на сколько уменьшается враг при попадании
	MinSurvivingRadius = 5.0  // враг выживает, только если после уменьшения радиус > этого
	ShrinkDuration     = 0.5  // секунд, длительность анимации уменьшения

	ScoreHit  = 100
	ScoreKill = 250

	ParticleFriction  = 0.99
	ParticleAlphaStep = 0.01
	ParticleMaxRadius = 2.0
	ParticleMinRadius = 0.1
	ParticleMaxSpeed  = 5.0
	BurstPerRadius    = 2.0 // частиц на единицу радиуса врага, если BurstCount == 0
	FixedBurstCount   = 8   // количество частиц в простой версии

	SpawnIntervalMin = 0.8 // секунд
	SpawnIntervalMax = 1.8

	TrailAlpha = 0.1 // прозрачность заливки, которая «гасит» предыдущий кадр

	ScoreTextX    = 16
	ScoreTextY    = 28
	MenuWidth     = 320
	MenuHeight    = 220
	ButtonWidth   = 200
	ButtonHeight  = 48
	TitleFontSize = 56
	LabelFontSize = 20
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	PlayerColor      = colornames.White
	ProjectileColor  = colornames.White
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	MenuPanelColor   = color.RGBA{255, 255, 255, 255}
	ButtonColor      = colornames.Dodgerblue
	ButtonHoverColor = colornames.Royalblue
	ButtonTextColor  = colornames.White
)
