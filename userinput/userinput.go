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

package userinput

// Event represents a single user input event sent from a front end.
type Event interface{}

// EventKeyboard is sent when a host key changes state. Key is the lower case
// rune of the host key.
type EventKeyboard struct {
	Key  rune
	Down bool
}

// EventQuit is sent when the user closes the front end window or otherwise
// asks for the emulation to end.
type EventQuit struct{}

// HandleInput conceptualises key state changes being sent to the console
// keypad. The only likely implementation of the interface is the
// hardware.Chip8 type.
type HandleInput interface {
	KeyDown(key int)
	KeyUp(key int)
}

// Controllers translates userinput events into console keypad changes.
type Controllers struct {
	// is true if a quit event has been received
	Quit bool
}

// the standard mapping of the left side of a QWERTY keyboard onto the hex
// pad of the CHIP-8 machine:
//
//	1 2 3 4         1 2 3 C
//	q w e r   --->  4 5 6 D
//	a s d f         7 8 9 E
//	z x c v         A 0 B F
var hexPad = map[rune]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// HandleUserInput deals with one userinput event. Returns true if the event
// was consumed by the console.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventKeyboard:
		if key, ok := hexPad[ev.Key]; ok {
			if ev.Down {
				handle.KeyDown(key)
			} else {
				handle.KeyUp(key)
			}
			return true
		}
	case EventQuit:
		c.Quit = true
		return true
	}

	return false
}
