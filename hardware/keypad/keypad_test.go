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

package keypad_test

import (
	"testing"

	"github.com/kamchy/libchip8/hardware/keypad"
	"github.com/kamchy/libchip8/test"
)

func TestKeypad(t *testing.T) {
	pad := keypad.NewKeypad()

	for k := uint8(0); k < keypad.NumKeys; k++ {
		test.ExpectEquality(t, pad.IsDown(k), false, k)
	}

	pad.Down(0xa)
	test.ExpectEquality(t, pad.IsDown(0xa), true)
	test.ExpectEquality(t, pad.IsDown(0xb), false)

	// pressing twice then releasing once leaves the key up
	pad.Down(0xa)
	pad.Up(0xa)
	test.ExpectEquality(t, pad.IsDown(0xa), false)

	// releasing an unpressed key is fine
	pad.Up(0x0)
	test.ExpectEquality(t, pad.IsDown(0x0), false)
}

func TestFirstDown(t *testing.T) {
	pad := keypad.NewKeypad()

	_, ok := pad.FirstDown()
	test.ExpectEquality(t, ok, false)

	pad.Down(0xc)
	pad.Down(0x3)

	k, ok := pad.FirstDown()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, k, 0x3)
}

// key numbers beyond the pad are ignored rather than faulting. the skip and
// wait instructions take key numbers from register values which can hold
// anything.
func TestOutOfRange(t *testing.T) {
	pad := keypad.NewKeypad()

	pad.Down(0x10)
	pad.Down(0xff)
	test.ExpectEquality(t, pad.IsDown(0x10), false)
	test.ExpectEquality(t, pad.IsDown(0xff), false)

	_, ok := pad.FirstDown()
	test.ExpectEquality(t, ok, false)

	pad.Up(0x47)
}

func TestReset(t *testing.T) {
	pad := keypad.NewKeypad()

	pad.Down(0x1)
	pad.Down(0xf)
	pad.Reset()

	for k := uint8(0); k < keypad.NumKeys; k++ {
		test.ExpectEquality(t, pad.IsDown(k), false, k)
	}
}
