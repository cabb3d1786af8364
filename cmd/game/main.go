// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-circle-shooter/internal/app"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/state"
	"go-circle-shooter/internal/ui"
	"go-circle-shooter/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *app.Game
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout использует размер окна как логический размер экрана, как canvas во весь экран.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (a *AppGame) frameSize() (int, int) {
	return a.width, a.height
}

func main() {
	envFile := flag.String("env", ".env", "файл с настройками")
	simple := flag.Bool("simple", false, "простая версия: враг раз в секунду, 8 частиц")
	seed := flag.Int64("seed", 0, "сид генератора, 0 — текущее время")
	flag.Parse()

	base := config.DefaultSettings()
	if *simple {
		base = config.SimpleSettings()
	}
	settings, err := config.LoadSettings(base, *envFile)
	if err != nil {
		log.Printf("Ошибка настроек, используем значения по умолчанию: %v", err)
		settings = base
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	game := app.NewGame(config.ScreenWidth, config.ScreenHeight, settings)
	fonts := ui.LoadFonts(config.TitleFontSize, config.LabelFontSize)
	scoreIndicator := ui.NewScoreIndicator(config.ScoreTextX, config.ScoreTextY, fonts.Label)
	game.EventDispatcher.Subscribe(scoreIndicator, event.ScoreChanged, event.SessionEnded)

	a := &AppGame{
		game:           game,
		width:          config.ScreenWidth,
		height:         config.ScreenHeight,
		lastUpdateTime: time.Now(),
	}
	sm := state.NewStateMachine(&state.Shell{
		Game:      game,
		Renderer:  render.NewRenderer(),
		Score:     scoreIndicator,
		Menu:      ui.NewMenuPanel(fonts),
		Fonts:     fonts,
		FrameSize: a.frameSize,
	})
	sm.SetState(state.NewMenuState(sm))
	a.stateMachine = sm

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Circle Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
