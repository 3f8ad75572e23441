package main

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	trail "github.com/gogpu/ggtrail"
)

// hud draws a one-line status label in the corner of each frame.
type hud struct {
	face    text.Face
	printer *message.Printer
	color   gg.RGBA
}

func newHUD(size float64, color gg.RGBA) (*hud, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &hud{
		face:    src.Face(size),
		printer: message.NewPrinter(language.English),
		color:   color,
	}, nil
}

// label formats the status line.
func (h *hud) label(frame, samples int, stats trail.SpawnStats) string {
	return h.printer.Sprintf("frame %d  samples %d  shapes %d", frame, samples, stats.Total())
}

func (h *hud) draw(dc *gg.Context, s string) {
	dc.Push()
	defer dc.Pop()
	dc.Identity()
	dc.SetFont(h.face)
	dc.SetRGBA(h.color.R, h.color.G, h.color.B, h.color.A)
	dc.DrawString(s, 8, float64(dc.Height())-8)
}
