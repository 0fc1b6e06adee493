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

package memory

// Size of the address space in bytes. Addresses are twelve bits wide so
// there is no room for anything more.
const Size = 4096

// Origin is the conventional load address for program images. The area
// below is reserved for the interpreter, which in this emulation means the
// font table.
const Origin = 0x200

// Memory is the flat address space of the console. In addition to the byte
// array it records where the font table was installed so that glyph address
// lookups remain valid wherever the table is placed.
type Memory struct {
	bytes [Size]uint8

	fontOrigin    uint16
	fontInstalled bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Reset the memory to its hard power-on state: every cell zero and no font
// table installed.
func (mem *Memory) Reset() {
	mem.bytes = [Size]uint8{}
	mem.fontOrigin = 0
	mem.fontInstalled = false
}

// Load returns the byte at address. An address outside the address space is
// a programming error, not a runtime condition, and faults the natural way.
func (mem *Memory) Load(address uint16) uint8 {
	return mem.bytes[address]
}

// Store the byte at address. As with Load, an address outside the address
// space is a programming error.
func (mem *Memory) Store(address uint16, data uint8) {
	mem.bytes[address] = data
}

// StoreMany copies data into memory starting at origin. The copy must fit
// inside the address space.
func (mem *Memory) StoreMany(origin uint16, data []uint8) {
	copy(mem.bytes[origin:int(origin)+len(data)], data)
}

// Read returns a copy of the address range [from, to). The boolean return
// value is false, and the slice nil, if the range leaves the address space
// or is inverted. Unlike Load, a bad range is an expected runtime condition:
// the sprite and bulk transfer instructions take ranges from program state.
func (mem *Memory) Read(from, to uint16) ([]uint8, bool) {
	if from > to || int(to) > Size {
		return nil, false
	}

	c := make([]uint8, to-from)
	copy(c, mem.bytes[from:to])
	return c, true
}
