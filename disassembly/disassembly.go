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

package disassembly

import (
	"fmt"
	"io"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/hardware/memory"
	"github.com/kamchy/libchip8/romloader"
)

// Entry is one word of the program image, decoded where possible.
type Entry struct {
	Address uint16
	Word    uint16

	// Operation is meaningful only when IsInstruction is true. words that do
	// not decode are listed as data, there is no way of telling a sprite
	// from a misaligned instruction in a flat listing
	Operation     instructions.Operation
	IsInstruction bool
}

func (e Entry) String() string {
	if !e.IsInstruction {
		return fmt.Sprintf("$%03x  %04x  .byte $%02x, $%02x", e.Address, e.Word, uint8(e.Word>>8), uint8(e.Word))
	}
	return fmt.Sprintf("$%03x  %04x  %s", e.Address, e.Word, e.Operation)
}

// Disassembly is the decoded listing of a program image.
type Disassembly struct {
	Entries []Entry
}

// FromLoader loads the ROM image referenced by the Loader and returns its
// disassembly. Useful for one-shot disassemblies, like the "disasm" mode of
// the command line program.
func FromLoader(cl romloader.Loader) (*Disassembly, error) {
	err := cl.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	return FromBytes(cl.Data, memory.Origin), nil
}

// FromBytes disassembles a program image directly. The origin argument is
// the address of the first byte, which for a ROM image is the load origin.
//
// Decoding is strictly pairwise from the origin. An image with an odd number
// of bytes ends with a word padded with zero.
func FromBytes(data []uint8, origin uint16) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(data)+1)/2),
	}

	for i := 0; i < len(data); i += 2 {
		word := uint16(data[i]) << 8
		if i+1 < len(data) {
			word |= uint16(data[i+1])
		}

		e := Entry{Address: origin + uint16(i), Word: word}
		e.Operation, e.IsInstruction = instructions.Decode(word)
		dsm.Entries = append(dsm.Entries, e)
	}

	return dsm
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		_, err := fmt.Fprintf(output, "%s\n", e)
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}

	return nil
}
