package main

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the top half of a cell with the foreground color and the
// bottom half with the background, giving two pixel rows per text row.
const halfBlock = '▀'

// blit samples img at the center of every half cell and writes the result
// to screen. scale is the number of image pixels per half cell.
func blit(screen tcell.Screen, img image.Image, cols, rows, scale int) {
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x := cx*scale + scale/2
			top := pixelColor(img, x, (2*cy)*scale+scale/2)
			bottom := pixelColor(img, x, (2*cy+1)*scale+scale/2)

			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			if top == tcell.ColorDefault && bottom == tcell.ColorDefault {
				screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// pixelColor converts a pixel to a terminal color. Pixels under half
// coverage map to the terminal's own background.
func pixelColor(img image.Image, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return tcell.ColorDefault
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return tcell.ColorDefault
	}
	// Undo alpha premultiplication.
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// cellToCanvas maps a terminal cell to the center of its pixel block.
func cellToCanvas(cx, cy, scale int) (float64, float64) {
	return (float64(cx) + 0.5) * float64(scale), (float64(cy) + 0.5) * float64(2*scale)
}
