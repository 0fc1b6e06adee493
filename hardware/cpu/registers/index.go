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

// Index represents the I register of the CPU, the memory index used by the
// sprite and bulk transfer instructions.
type Index struct {
	value uint16
}

// NewIndex is the preferred method of initialisation for the Index type.
func NewIndex(val uint16) Index {
	return Index{value: val}
}

// Label returns an identifying string for the index register.
func (idx Index) Label() string {
	return "I"
}

func (idx Index) String() string {
	return fmt.Sprintf("%#04x", idx.value)
}

// Address returns the current value of the register as a value of type
// uint16.
func (idx Index) Address() uint16 {
	return idx.value
}

// Load a value into the register.
func (idx *Index) Load(val uint16) {
	idx.value = val
}

// Add a value to the register.
func (idx *Index) Add(val uint16) {
	idx.value += val
}
