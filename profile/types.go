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

// XYZNumber is a CIE 1931 XYZ value, with each component stored as a raw
// s15Fixed16 number.
type XYZNumber struct {
	X, Y, Z uint32
}

// Encode converts the value to an ICC XYZType element.
func (v XYZNumber) Encode() []byte {
	buf := make([]byte, 20)
	copy(buf[0:4], "XYZ ")
	putUint32(buf, 8, v.X)
	putUint32(buf, 12, v.Y)
	putUint32(buf, 16, v.Z)
	return buf
}

// encodeTextDescription converts text to an ICC textDescriptionType
// element. The caller must have validated the text using checkText.
func encodeTextDescription(text string) []byte {
	n := len(text) + 1 // including the trailing NUL byte

	buf := make([]byte, 12+n+11)
	copy(buf[0:4], "desc")
	putUint32(buf, 8, uint32(n))
	copy(buf[12:], text)
	// The trailing fields (Unicode language code and count, ScriptCode
	// code and count) remain zero.
	return buf
}

// checkText verifies that text can be stored in a textDescriptionType
// element. Only ASCII text can be represented.
func checkText(field, text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return &InvalidTextError{Field: field, Offset: i}
		}
	}
	return nil
}

// InvalidTextError indicates that a text field contains characters which
// cannot be stored in the profile.
type InvalidTextError struct {
	Field  string // name of the offending field
	Offset int    // byte position of the first invalid character
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("profile: non-ASCII character in %s (byte %d)", e.Field, e.Offset)
}
