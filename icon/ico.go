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
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// EncodeICO renders the glyph at each of the given sizes and writes a
// multi-resolution ICO container to w.
func EncodeICO(w io.Writer, sizes []int) error {
	images := make([]image.Image, len(sizes))
	for i, size := range sizes {
		images[i] = Render(size)
	}
	return ico.EncodeAll(w, images)
}
