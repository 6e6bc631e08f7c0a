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

// Genprofile writes the test profile "red_plus_22.icc" to the current
// directory. The profile shifts the red channel up by 22 out of 255 and
// leaves the green and blue channels unchanged.
package main

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"seehuhn.de/go/scanfix/profile"
)

const (
	outputName = "red_plus_22.icc"
	redOffset  = 22
)

func main() {
	p := profile.New("Red+22 Test Profile", "Public Domain", redOffset, 0, 0)
	data, err := p.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", outputName, err)
		os.Exit(1)
	}

	// Write via a temporary file, so that an interrupted run cannot leave
	// a truncated profile behind.
	err = renameio.WriteFile(outputName, data, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", outputName, err)
		os.Exit(1)
	}

	fmt.Printf("Generated ICC profile: %s\n", outputName)
	fmt.Printf("  Profile size: %d bytes\n", len(data))
	fmt.Printf("  Effect: Increases red channel by %d (out of 255)\n", redOffset)
}
