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

// Genicon writes the scanner tray icon "scanner_icon.ico" and a 256x256
// PNG preview of it to the current directory.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/google/renameio/v2"

	"seehuhn.de/go/scanfix/icon"
)

const (
	icoName     = "scanner_icon.ico"
	previewName = "scanner_icon_preview.png"
	previewSize = 256
)

func main() {
	buf := &bytes.Buffer{}
	err := icon.EncodeICO(buf, icon.Sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", icoName, err)
		os.Exit(1)
	}
	err = renameio.WriteFile(icoName, buf.Bytes(), 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", icoName, err)
		os.Exit(1)
	}

	var sizes []string
	for _, s := range icon.Sizes {
		sizes = append(sizes, fmt.Sprintf("%dx%d", s, s))
	}
	fmt.Printf("Created scanner icon: %s\n", icoName)
	fmt.Printf("  Sizes included: %s\n", strings.Join(sizes, ", "))

	buf.Reset()
	err = png.Encode(buf, icon.Render(previewSize))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", previewName, err)
		os.Exit(1)
	}
	err = renameio.WriteFile(previewName, buf.Bytes(), 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", previewName, err)
		os.Exit(1)
	}
	fmt.Printf("Created preview: %s (%dx%d)\n", previewName, previewSize, previewSize)
}
