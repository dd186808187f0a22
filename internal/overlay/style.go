package overlay

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Style controls panel layout. All lengths are in scene units.
type Style struct {
	Face    font.Face
	Origin  geometry.Vector2
	Width   float64
	Padding float64
	Spacing float64
}

// DesktopStyle lays out the panel for a pixel window
func DesktopStyle() Style {
	return Style{
		Face:    basicfont.Face7x13,
		Origin:  geometry.NewVector2(10, 10),
		Width:   230,
		Padding: 6,
		Spacing: 4,
	}
}

// CellStyle lays out the panel on a character grid where one cell spans
// cellW x cellH scene units, so every widget occupies exactly one row.
func CellStyle(cellW, cellH int, columns int) Style {
	face := *basicfont.Face7x13
	face.Advance = cellW
	face.Height = cellH
	return Style{
		Face:   &face,
		Origin: geometry.NewVector2(0, 0),
		Width:  float64(columns * cellW),
	}
}

// TextWidth measures s with the style's face
func (s Style) TextWidth(text string) float64 {
	return fixedToFloat(font.MeasureString(s.Face, text))
}

// Fit trims text from the end until it is at most width wide
func (s Style) Fit(text string, width float64) string {
	if s.TextWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && s.TextWidth(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// RowHeight is the height of one widget row
func (s Style) RowHeight() float64 {
	return fixedToFloat(s.Face.Metrics().Height) + s.Padding
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
