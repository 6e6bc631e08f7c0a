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

import "time"

// Encode converts the profile to binary form. It fails if one of the text
// fields contains non-ASCII characters; in this case the error is of type
// [*InvalidTextError].
func (p *Profile) Encode() ([]byte, error) {
	err := checkText("description", p.Description)
	if err != nil {
		return nil, err
	}
	err = checkText("copyright", p.Copyright)
	if err != nil {
		return nil, err
	}

	// The tag order is the conventional one for matrix/TRC display
	// profiles. Some consumers depend on it, so it must not change.
	type tagInfo struct {
		tagType TagType
		data    []byte
		start   uint32
	}
	tags := []tagInfo{
		{tagType: ProfileDescription, data: encodeTextDescription(p.Description)},
		{tagType: Copyright, data: encodeTextDescription(p.Copyright)},
		{tagType: MediaWhitePoint, data: p.WhitePoint.Encode()},
		{tagType: RedColorant, data: p.RedPrimary.Encode()},
		{tagType: GreenColorant, data: p.GreenPrimary.Encode()},
		{tagType: BlueColorant, data: p.BluePrimary.Encode()},
		{tagType: RedToneCurve, data: p.RedCurve.Encode()},
		{tagType: GreenToneCurve, data: p.GreenCurve.Encode()},
		{tagType: BlueToneCurve, data: p.BlueCurve.Encode()},
	}

	// The tag table records the padded length of each element.
	pos := 128 + 4 + len(tags)*12
	for i := range tags {
		tags[i].data = pad(tags[i].data, 4)
		tags[i].start = uint32(pos)
		pos += len(tags[i].data)
	}

	buf := make([]byte, pos)

	// Header fields not written below (preferred CMM, flags, device
	// manufacturer, model and attributes, rendering intent, creator) are
	// zero. The profile size field is filled in last.
	putUint32(buf, 8, headerVersion)
	putUint32(buf, 12, classDisplay)
	putUint32(buf, 16, spaceRGB)
	putUint32(buf, 20, spacePCSXYZ)
	putDateTime(buf, 24, creationDate)
	putUint32(buf, 36, 0x61637370) // "acsp"
	putUint32(buf, 40, platformMicrosoft)
	copy(buf[68:], d50)

	putUint32(buf, 128, uint32(len(tags)))
	tagTable := 128 + 4
	for i, tag := range tags {
		putUint32(buf, tagTable+i*12, uint32(tag.tagType))
		putUint32(buf, tagTable+i*12+4, tag.start)
		putUint32(buf, tagTable+i*12+8, uint32(len(tag.data)))
		copy(buf[tag.start:], tag.data)
	}

	putUint32(buf, 0, uint32(len(buf)))

	return buf, nil
}

// Fixed header fields of the generated profile.
const (
	headerVersion     = 0x02100000 // profile format version 2.1
	classDisplay      = 0x6D6E7472 // "mntr"
	spaceRGB          = 0x52474220 // "RGB "
	spacePCSXYZ       = 0x58595A20 // "XYZ "
	platformMicrosoft = 0x4D534654 // "MSFT"
)

// creationDate is embedded in the profile header. A fixed date keeps the
// output reproducible.
var creationDate = time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)

// This is the value for the "PCS illuminant" header field (Bytes 68 to 79).
var d50 = []byte{
	0x00, 0x00, 0xf6, 0xd6, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0xd3, 0x2d,
}

// pad appends zero bytes until the length of data is a multiple of
// boundary. Data which is already aligned is returned unchanged.
func pad(data []byte, boundary int) []byte {
	for len(data)%boundary != 0 {
		data = append(data, 0)
	}
	return data
}

func putUint16(data []byte, offset int, value uint16) {
	data[offset] = byte(value >> 8)
	data[offset+1] = byte(value)
}

func putUint32(data []byte, offset int, value uint32) {
	data[offset] = byte(value >> 24)
	data[offset+1] = byte(value >> 16)
	data[offset+2] = byte(value >> 8)
	data[offset+3] = byte(value)
}

func putDateTime(data []byte, offset int, t time.Time) {
	year := t.Year()
	data[offset] = byte(year >> 8)
	data[offset+1] = byte(year)
	data[offset+3] = byte(t.Month())
	data[offset+5] = byte(t.Day())
	data[offset+7] = byte(t.Hour())
	data[offset+9] = byte(t.Minute())
	data[offset+11] = byte(t.Second())
}
