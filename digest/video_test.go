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

package digest_test

import (
	"testing"

	"github.com/kamchy/libchip8/digest"
	"github.com/kamchy/libchip8/hardware/display"
	"github.com/kamchy/libchip8/test"
)

func TestChaining(t *testing.T) {
	dsp := display.NewDisplay()
	dig := digest.NewVideo(dsp)

	zero := dig.Hash()

	// the same blank frame twice. the hashes differ because each folds in
	// the one before
	dig.Update()
	first := dig.Hash()
	dig.Update()
	second := dig.Hash()

	test.ExpectInequality(t, first, zero)
	test.ExpectInequality(t, second, first)
	test.ExpectEquality(t, dig.Frames(), 2)
}

func TestReproducible(t *testing.T) {
	render := func() string {
		dsp := display.NewDisplay()
		dig := digest.NewVideo(dsp)
		dsp.Draw(1, 2, []uint8{0xf0, 0x90})
		dig.Update()
		return dig.Hash()
	}

	test.ExpectEquality(t, render(), render())
}

func TestPixelSensitivity(t *testing.T) {
	dsp := display.NewDisplay()
	dig := digest.NewVideo(dsp)

	dig.Update()
	blank := dig.Hash()

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Frames(), 0)

	dsp.Plot(63, 31)
	dig.Update()
	test.ExpectInequality(t, dig.Hash(), blank)
}
