// This file is part of libchip8.
//
// libchip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// libchip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with libchip8.  If not, see <https://www.gnu.org/licenses/>.

// Package display implements the monochrome pixel grid of the CHIP-8
// machine and the XOR sprite drawing model that goes with it.
//
// The display is passive. It has no notion of a frame or a refresh rate and
// it never pushes pixels anywhere. A renderer polls Generation() to learn
// whether the grid changed since it last looked and reads the pixels back
// with Get().
package display

import "strings"

// The display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is the 64 by 32 monochrome pixel grid.
type Display struct {
	pixels [Height][Width]bool

	// incremented whenever the grid changes. never reset, a renderer only
	// ever compares values for inequality
	generation int
}

// NewDisplay is the preferred method of initialisation for the Display
// type.
func NewDisplay() *Display {
	return &Display{}
}

// Reset the display to its hard power-on state: all pixels unset.
func (dsp *Display) Reset() {
	dsp.pixels = [Height][Width]bool{}
	dsp.generation++
}

// Clear all pixels. The effect of the Clear opcode.
func (dsp *Display) Clear() {
	dsp.pixels = [Height][Width]bool{}
	dsp.generation++
}

// Plot XORs the pixel at (x, y). Coordinates beyond the dimensions wrap on
// their own axis. Returns true if the pixel was set before the plot, the
// collision condition.
func (dsp *Display) Plot(x, y int) bool {
	x %= Width
	y %= Height

	was := dsp.pixels[y][x]
	dsp.pixels[y][x] = !was
	dsp.generation++
	return was
}

// Draw a sprite with its top-left corner at (x, y). Each byte of the sprite
// is one row of eight pixels, most significant bit leftmost. Set bits are
// plotted, unset bits leave the grid alone. Returns true if any plot
// unset a pixel that was set, however many times it happened.
func (dsp *Display) Draw(x, y uint8, sprite []uint8) bool {
	collision := false

	for j, row := range sprite {
		for i := 0; i < 8; i++ {
			if row&(0x80>>i) != 0 {
				if dsp.Plot(int(x)+i, int(y)+j) {
					collision = true
				}
			}
		}
	}

	return collision
}

// Get returns the state of the pixel at (x, y).
func (dsp *Display) Get(x, y int) bool {
	return dsp.pixels[y][x]
}

// Generation returns a value that changes whenever the pixel grid changes.
// Renderers compare values between polls to decide whether to redraw.
func (dsp *Display) Generation() int {
	return dsp.generation
}

// String renders the grid with a hash for a set pixel and a dot for an
// unset pixel. One line per row.
func (dsp *Display) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if dsp.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
