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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/kamchy/libchip8/hardware/display"
)

// Video produces a SHA-1 value of the display every time Update() is called.
// Values are chained: every fingerprint covers the previous fingerprint as
// well as the pixels, so a single value at the end of a run stands in for
// the whole history of frames.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	dsp    *display.Display
	digest [sha1.Size]byte

	// the previous digest value followed by one byte per pixel
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(dsp *display.Display) *Video {
	return &Video{
		dsp:    dsp,
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of times the digest has been updated.
func (dig *Video) Frames() int {
	return dig.frames
}

// Update folds the current state of the display into the digest. The driving
// loop should call it once per frame.
func (dig *Video) Update() {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the pixel data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if dig.dsp.Get(x, y) {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
