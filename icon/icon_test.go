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

package icon

import (
	"fmt"
	"image"
	"image/color"
	"testing"
)

func TestRenderBounds(t *testing.T) {
	for _, size := range Sizes {
		t.Run(fmt.Sprintf("%dpx", size), func(t *testing.T) {
			img := Render(size)
			if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
				t.Errorf("bounds are %v", got)
			}
			if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
				t.Errorf("corner pixel is not transparent")
			}
			if _, _, _, a := img.At(size/2, size/2).RGBA(); a == 0 {
				t.Errorf("centre pixel is transparent")
			}
		})
	}
}

func TestRenderColours(t *testing.T) {
	type probe struct {
		x, y int
		want color.RGBA
	}
	type testCase struct {
		size   int
		probes []probe
	}
	cases := []testCase{
		{
			size: 256,
			probes: []probe{
				{0, 0, color.RGBA{}},                       // transparent corner
				{40, 128, color.RGBA{70, 70, 70, 255}},     // body frame
				{128, 60, color.RGBA{120, 120, 120, 255}},  // lid
				{128, 104, color.RGBA{200, 200, 200, 255}}, // scanner bed
			},
		},
		{
			size: 64,
			probes: []probe{
				{0, 0, color.RGBA{}},
				{10, 32, color.RGBA{70, 70, 70, 255}},
				{32, 16, color.RGBA{120, 120, 120, 255}},
			},
		},
	}
	for _, test := range cases {
		t.Run(fmt.Sprintf("%dpx", test.size), func(t *testing.T) {
			img := Render(test.size)
			for _, p := range test.probes {
				if got := img.RGBAAt(p.x, p.y); got != p.want {
					t.Errorf("pixel (%d,%d) is %v, want %v", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	img := Render(256)

	// white shows between the text lines on the document
	white := false
	for y := 113; y < 144; y++ {
		if img.RGBAAt(128, y) == (color.RGBA{255, 255, 255, 255}) {
			white = true
			break
		}
	}
	if !white {
		t.Errorf("no white document pixels found")
	}

	// the translucent beam tints the document cyan
	beam := img.RGBAAt(128, 150)
	if beam.A != 255 {
		t.Errorf("beam pixel is translucent: %v", beam)
	}
	if beam.B <= beam.R {
		t.Errorf("beam pixel is not cyan: %v", beam)
	}
}
