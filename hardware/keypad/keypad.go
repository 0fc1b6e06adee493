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

// Package keypad implements the sixteen key hexadecimal pad of the CHIP-8
// machine.
//
// The keypad holds pressed/released state and nothing else. Translating
// host keyboard events into pad keys is the business of whichever driver is
// attached to the console.
package keypad

// NumKeys is the number of keys on the pad, 0x0 to 0xf.
const NumKeys = 16

// Keypad records the state of the sixteen keys.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset the keypad to its hard power-on state: no key pressed.
func (pad *Keypad) Reset() {
	pad.keys = [NumKeys]bool{}
}

// Down marks key k as pressed. Pressing an already pressed key changes
// nothing. Keys outside the pad are ignored, a guard against callers
// constructing key numbers from arbitrary register values.
func (pad *Keypad) Down(k uint8) {
	if k < NumKeys {
		pad.keys[k] = true
	}
}

// Up marks key k as released. The same rules as Down apply.
func (pad *Keypad) Up(k uint8) {
	if k < NumKeys {
		pad.keys[k] = false
	}
}

// IsDown returns true if key k is pressed. Keys outside the pad read as not
// pressed.
func (pad *Keypad) IsDown(k uint8) bool {
	return k < NumKeys && pad.keys[k]
}

// FirstDown returns the lowest numbered pressed key. The boolean return
// value is false if no key is pressed.
func (pad *Keypad) FirstDown() (uint8, bool) {
	for k := uint8(0); k < NumKeys; k++ {
		if pad.keys[k] {
			return k, true
		}
	}
	return 0, false
}
