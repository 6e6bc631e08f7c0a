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

package profile

import "fmt"

// The TagType identifies a tag in an ICC profile.
type TagType uint32

func (t TagType) String() string {
	switch t {
	case ProfileDescription:
		return "Profile Description"
	case Copyright:
		return "Copyright"
	case MediaWhitePoint:
		return "Media White Point"
	case RedColorant:
		return "Red Colorant"
	case GreenColorant:
		return "Green Colorant"
	case BlueColorant:
		return "Blue Colorant"
	case RedToneCurve:
		return "Red Tone Curve"
	case GreenToneCurve:
		return "Green Tone Curve"
	case BlueToneCurve:
		return "Blue Tone Curve"
	default:
		bb := []byte{
			byte(t >> 24),
			byte(t >> 16),
			byte(t >> 8),
			byte(t),
		}
		isASCII := true
		for _, c := range bb {
			if c < 0x20 || c > 0x7E {
				isASCII = false
				break
			}
		}
		if isASCII {
			return fmt.Sprintf("%q", string(bb))
		}
		return fmt.Sprintf("0x%08X", uint32(t))
	}
}

// These are the tags present in the generated profile, in the order in
// which they appear in the tag table.
const (
	ProfileDescription TagType = 0x64657363 // "desc"
	Copyright          TagType = 0x63707274 // "cprt"
	MediaWhitePoint    TagType = 0x77747074 // "wtpt"
	RedColorant        TagType = 0x7258595A // "rXYZ"
	GreenColorant      TagType = 0x6758595A // "gXYZ"
	BlueColorant       TagType = 0x6258595A // "bXYZ"
	RedToneCurve       TagType = 0x72545243 // "rTRC"
	GreenToneCurve     TagType = 0x67545243 // "gTRC"
	BlueToneCurve      TagType = 0x62545243 // "bTRC"
)
