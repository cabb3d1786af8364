// internal/ui/fonts.go
package ui

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — шрифты оверлея
type Fonts struct {
	Title font.Face // крупный счёт в меню
	Label font.Face // счёт в углу, подписи, кнопка
}

// LoadFonts парсит встроенный Go Regular. При ошибке возвращается basicfont,
// чтобы игра всё равно запустилась.
func LoadFonts(titleSize, labelSize float64) *Fonts {
	fonts, err := loadGoRegular(titleSize, labelSize)
	if err != nil {
		log.Printf("Не удалось загрузить шрифт, используем basicfont: %v", err)
		return &Fonts{Title: basicfont.Face7x13, Label: basicfont.Face7x13}
	}
	return fonts
}

func loadGoRegular(titleSize, labelSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse goregular: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: titleSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}
	label, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: labelSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create label face: %w", err)
	}
	return &Fonts{Title: title, Label: label}, nil
}
