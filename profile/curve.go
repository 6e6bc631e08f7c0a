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

// ToneCurve is a sampled transfer function with one entry per 8-bit input
// level. Curves constructed by [NewToneCurve] are monotonically
// non-decreasing.
type ToneCurve []uint16

// NewToneCurve returns the curve which adds offset to every 8-bit input
// level, saturating at 0 and 255.
func NewToneCurve(offset int) ToneCurve {
	curve := make(ToneCurve, 256)
	for i := range curve {
		v := min(max(i+offset, 0), 255)

		// 65535 == 255*257, so this equals round(v/255*65535) exactly.
		curve[i] = uint16(v * 257)
	}
	return curve
}

// Encode converts the curve to an ICC curveType element.
func (c ToneCurve) Encode() []byte {
	buf := make([]byte, 12+len(c)*2)
	copy(buf[0:4], "curv")
	putUint32(buf, 8, uint32(len(c)))
	for i, v := range c {
		putUint16(buf, 12+i*2, v)
	}
	return buf
}
