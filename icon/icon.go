// seehuhn.de/go/scanfix - colour correction assets for scanner output
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package icon draws the scanner glyph used as the tray icon and packs it
// into a multi-resolution ICO container.
package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Sizes lists the resolutions stored in the icon container, in the order
// in which they appear.
var Sizes = []int{16, 32, 48, 64, 128, 256}

// Colours of the glyph. The scanning beam is translucent so that the
// document shines through.
var (
	bodyOutline = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	bodyFill    = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	lidFill     = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	docFill     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	docOutline  = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	textLine    = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
	scanBeam    = color.NRGBA{R: 0, G: 200, B: 255, A: 200}
)

// Render draws the scanner glyph at the given pixel size on a transparent
// background. All proportions scale with size, so the glyph stays legible
// down to 16 pixels.
func Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	padding := max(2, size/8)
	bodyTop := padding
	bodyBottom := size - padding
	bodyLeft := padding
	bodyRight := size - padding

	// scanner body: dark frame around a light fill
	frame := max(1, size/16)
	fillRect(img, bodyLeft, bodyTop, bodyRight, bodyBottom, bodyOutline)
	fillRect(img, bodyLeft+frame, bodyTop+frame, bodyRight-frame, bodyBottom-frame, bodyFill)

	// lid along the top of the body
	lidHeight := max(3, size/4)
	fillRect(img, bodyLeft+frame, bodyTop+frame, bodyRight-frame, bodyTop+lidHeight, lidFill)

	// document on the scanner bed, with a thin outline
	docPadding := max(2, size/5)
	docTop := bodyTop + lidHeight + max(2, size/16)
	docBottom := bodyBottom - max(2, size/8)
	docLeft := bodyLeft + docPadding
	docRight := bodyRight - docPadding
	fillRect(img, docLeft, docTop, docRight, docBottom, docOutline)
	fillRect(img, docLeft+1, docTop+1, docRight-1, docBottom-1, docFill)

	// text lines on the document
	numLines := max(2, size/8)
	spacing := float64(docBottom-docTop) / float64(numLines+1)
	inset := max(1, size/16)
	for i := 1; i <= numLines; i++ {
		y := docTop + int(float64(i)*spacing)
		fillRect(img, docLeft+inset, y, docRight-inset, y+1, textLine)
	}

	// the scanning beam, 40% of the way down the document
	beamY := docTop + int(float64(docBottom-docTop)*0.4)
	beamWidth := max(1, size/12)
	fillRect(img, docLeft, beamY, docRight, beamY+beamWidth, scanBeam)

	return img
}

// fillRect fills an axis-aligned rectangle. Coordinates are half-open,
// like image.Rect. Translucent colours are composited over the existing
// pixels.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	r.MoveTo(float32(x0), float32(y0))
	r.LineTo(float32(x1), float32(y0))
	r.LineTo(float32(x1), float32(y1))
	r.LineTo(float32(x0), float32(y1))
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}
