// Package raster draws a scene into an image with gg, for headless runs.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/overlay"
	"github.com/philipparndt/gosketch/internal/sketch"
)

const (
	markerRadius   = 2.0
	highlightHalf  = 5.0
	previewFactor  = 0.33
	lineWidth      = 1.0
	panelAlpha     = 200
	labelBaselineY = 0.75
)

// Renderer rasterizes scenes at a fixed size
type Renderer struct {
	Width, Height int
	Palette       config.Palette
	// Panel, when set, is drawn on top of the scene
	Panel *overlay.Panel
}

// Render draws scene into a new image
func (r *Renderer) Render(scene sketch.Scene) image.Image {
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetColor(r.Palette.Background)
	dc.Clear()
	dc.SetLineWidth(lineWidth)

	dc.SetColor(r.Palette.Line)
	for _, l := range scene.Lines {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
		dc.Stroke()
	}

	dc.SetColor(r.Palette.Point)
	for _, p := range scene.Points {
		dc.DrawCircle(p.X, p.Y, markerRadius)
		dc.Fill()
	}

	if scene.Preview != nil {
		dc.SetColor(config.Scale(r.Palette.Line, previewFactor))
		dc.DrawLine(scene.Preview.From.X, scene.Preview.From.Y, scene.Preview.To.X, scene.Preview.To.Y)
		dc.Stroke()
	}

	if scene.Highlight != nil {
		sq := scene.Highlight.Square(highlightHalf)
		dc.SetColor(r.Palette.Highlight)
		dc.MoveTo(sq[0].X, sq[0].Y)
		for _, c := range sq[1:] {
			dc.LineTo(c.X, c.Y)
		}
		dc.Stroke()
	}

	if scene.Cursor != nil {
		dc.SetColor(r.Palette.Preview)
		dc.DrawCircle(scene.Cursor.X, scene.Cursor.Y, markerRadius)
		dc.Fill()
	}

	if r.Panel != nil {
		r.drawPanel(dc)
	}

	return dc.Image()
}

func (r *Renderer) drawPanel(dc *gg.Context) {
	dc.SetFontFace(basicfont.Face7x13)

	b := r.Panel.Bounds()
	dc.SetColor(color.RGBA{A: panelAlpha})
	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	dc.Fill()

	for _, w := range r.Panel.Widgets() {
		rect := w.Rect
		switch w.Kind {
		case overlay.KindButton:
			fill := color.RGBA{R: 60, G: 60, B: 60, A: 255}
			if w.Active {
				fill = color.RGBA{R: 110, G: 110, B: 110, A: 255}
			} else if w.Hot {
				fill = color.RGBA{R: 80, G: 80, B: 80, A: 255}
			}
			dc.SetColor(fill)
			dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
			dc.Fill()
		case overlay.KindSlider:
			dc.SetColor(color.RGBA{R: 40, G: 40, B: 40, A: 255})
			dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
			dc.Fill()
			dc.SetColor(color.RGBA{R: 70, G: 90, B: 140, A: 255})
			dc.DrawRectangle(rect.X, rect.Y, rect.W*w.Value, rect.H)
			dc.Fill()
		}

		dc.SetColor(color.White)
		dc.DrawString(w.Text, rect.X+2, rect.Y+rect.H*labelBaselineY)
	}
}

// WritePNG renders scene and encodes it as PNG
func (r *Renderer) WritePNG(w io.Writer, scene sketch.Scene) error {
	dc := gg.NewContextForImage(r.Render(scene))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG renders scene into the file at path
func (r *Renderer) SavePNG(path string, scene sketch.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := r.WritePNG(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
