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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeICO(t *testing.T) {
	buf := &bytes.Buffer{}
	err := EncodeICO(buf, Sizes)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if len(data) < 6+16*len(Sizes) {
		t.Fatalf("container has only %d bytes", len(data))
	}
	if getLE16(data, 0) != 0 {
		t.Errorf("reserved field is not zero")
	}
	if got := getLE16(data, 2); got != 1 {
		t.Errorf("type field is %d, want 1 (icon)", got)
	}
	if got := int(getLE16(data, 4)); got != len(Sizes) {
		t.Fatalf("entry count is %d, want %d", got, len(Sizes))
	}

	var gotSizes []int
	end := uint32(6 + 16*len(Sizes))
	for i := range Sizes {
		entry := 6 + 16*i

		// a width or height byte of 0 means 256
		w := int(data[entry])
		h := int(data[entry+1])
		if w == 0 {
			w = 256
		}
		if h == 0 {
			h = 256
		}
		if w != h {
			t.Errorf("entry %d is %dx%d, not square", i, w, h)
		}
		gotSizes = append(gotSizes, w)

		length := getLE32(data, entry+8)
		offset := getLE32(data, entry+12)
		if offset < end || uint64(offset)+uint64(length) > uint64(len(data)) {
			t.Fatalf("entry %d: bytes %d+%d outside the container", i, offset, length)
		}
		end = offset + length

		if !isPNG(data[offset:]) && !isBMP(data[offset:]) {
			t.Errorf("entry %d is neither PNG nor BMP encoded", i)
		}
	}

	if d := cmp.Diff(Sizes, gotSizes); d != "" {
		t.Errorf("sizes differ (-want +got):\n%s", d)
	}
}

func TestEncodeICOSingle(t *testing.T) {
	buf := &bytes.Buffer{}
	err := EncodeICO(buf, []int{32})
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if got := int(getLE16(data, 4)); got != 1 {
		t.Fatalf("entry count is %d, want 1", got)
	}
	if got := int(data[6]); got != 32 {
		t.Errorf("entry width is %d, want 32", got)
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func isPNG(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[0:8], pngMagic)
}

// isBMP recognises the headerless DIB form used inside ICO containers.
func isBMP(data []byte) bool {
	return len(data) >= 4 && getLE32(data, 0) == 40 // BITMAPINFOHEADER size
}

// The ICONDIR structure is little-endian, unlike the ICC format.

func getLE16(data []byte, offset int) uint16 {
	return uint16(data[offset]) | uint16(data[offset+1])<<8
}

func getLE32(data []byte, offset int) uint32 {
	return uint32(data[offset]) | uint32(data[offset+1])<<8 |
		uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24
}
