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

package registers

import "fmt"

// Timer is an 8-bit countdown register. The delay and sound timers of the
// console are instances of this type.
//
// The timer has no clock of its own. Something outside of the emulation
// core, the play loop in practice, calls Tick() at the 60Hz cadence the
// timers are specified at.
type Timer struct {
	label string
	value uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(label string) Timer {
	return Timer{label: label}
}

func (t Timer) String() string {
	return fmt.Sprintf("%s=%#02x", t.label, t.value)
}

// Label returns the identifying string given to the timer on creation.
func (t Timer) Label() string {
	return t.label
}

// Value returns the current value of the timer.
func (t Timer) Value() uint8 {
	return t.value
}

// Load value into timer.
func (t *Timer) Load(val uint8) {
	t.value = val
}

// Tick decrements the timer by one, saturating at zero. Returns the new
// value. Ticking a zero timer is not an error, the timer simply stays at
// zero.
func (t *Timer) Tick() uint8 {
	if t.value > 0 {
		t.value--
	}
	return t.value
}

// IsActive returns true while the timer is above zero. For the sound timer
// this is the beep condition.
func (t Timer) IsActive() bool {
	return t.value > 0
}
