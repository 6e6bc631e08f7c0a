// seehuhn.de/go/scanfix - colour correction assets for scanner output
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package profile constructs ICC display profiles which shift individual
// colour channels by a constant amount.
//
// The generated profile is a version 2.1 matrix/TRC monitor profile with
// nine tags: a description, a copyright notice, the white point, the three
// colorant primaries, and one tone curve per channel. Each tone curve adds
// a fixed offset to its channel:
//
//	p := profile.New("Red+22 Test Profile", "Public Domain", 22, 0, 0)
//	data, err := p.Encode()
//	if err != nil {
//	    // handle error
//	}
//
// Encoding is deterministic. The creation date embedded in the profile
// header is fixed, so repeated runs produce byte-identical output.
package profile

// Profile describes an RGB display profile with per-channel tone curves.
//
// Both text fields must be ASCII; [Profile.Encode] rejects anything else.
type Profile struct {
	Description string // profile name shown by colour management tools
	Copyright   string

	// Colorimetry stored in the white point and colorant tags.
	WhitePoint   XYZNumber
	RedPrimary   XYZNumber
	GreenPrimary XYZNumber
	BluePrimary  XYZNumber

	// Transfer curves stored in the three TRC tags.
	RedCurve   ToneCurve
	GreenCurve ToneCurve
	BlueCurve  ToneCurve
}

// New returns a profile which adds the given offsets to the red, green and
// blue channels of the display. Offsets are in 8-bit units; they may be
// negative, and values outside [-255, 255] saturate.
func New(description, copyright string, red, green, blue int) *Profile {
	return &Profile{
		Description:  description,
		Copyright:    copyright,
		WhitePoint:   D50,
		RedPrimary:   DefaultRedPrimary,
		GreenPrimary: DefaultGreenPrimary,
		BluePrimary:  DefaultBluePrimary,
		RedCurve:     NewToneCurve(red),
		GreenCurve:   NewToneCurve(green),
		BlueCurve:    NewToneCurve(blue),
	}
}

// D50 is the standard illuminant used as the profile's white point.
var D50 = XYZNumber{0x0000F6D6, 0x00010000, 0x0000D32D}

// Primaries of a generic sRGB-like display, used by [New].
var (
	DefaultRedPrimary   = XYZNumber{0x0000F351, 0x00010000, 0x0000D32D}
	DefaultGreenPrimary = XYZNumber{0x00006FA2, 0x00010000, 0x0000D32D}
	DefaultBluePrimary  = XYZNumber{0x00006FA2, 0x00010000, 0x0000D32D}
)
