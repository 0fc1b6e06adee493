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

import (
	"fmt"
)

// Register is an 8-bit data register. The sixteen V registers of the CPU are
// instances of this type.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with an initial value and a label.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the identifying string given to the register on creation.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns the carry state: true if the unmasked sum
// does not fit in eight bits.
func (r *Register) Add(val uint8) bool {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. The return value is the borrow state
// inverted: true if the register was greater than or equal to the value
// being subtracted. If we think of the flag register as the "no borrow"
// indicator, as the sprite and arithmetic conventions do, then this is the
// value to load into it.
func (r *Register) Subtract(val uint8) bool {
	v := r.value
	r.value -= val
	return v >= val
}

// SubtractFrom replaces the register with val minus the register. As with
// Subtract, the return value is true when no borrow occurred.
func (r *Register) SubtractFrom(val uint8) bool {
	v := r.value
	r.value = val - v
	return val >= v
}

// Or value with register.
func (r *Register) Or(val uint8) {
	r.value |= val
}

// And value with register.
func (r *Register) And(val uint8) {
	r.value &= val
}

// Xor value with register.
func (r *Register) Xor(val uint8) {
	r.value ^= val
}

// ShiftLeft shifts the register one bit to the left. Returns the most
// significant bit as it was before the shift.
func (r *Register) ShiftLeft() bool {
	out := r.value&0x80 == 0x80
	r.value <<= 1
	return out
}

// ShiftRight shifts the register one bit to the right. Returns the least
// significant bit as it was before the shift.
func (r *Register) ShiftRight() bool {
	out := r.value&0x01 == 0x01
	r.value >>= 1
	return out
}
