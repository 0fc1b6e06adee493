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

// Package disassembly produces a static listing of a CHIP-8 program image.
//
// The listing is flat. Every pair of bytes from the load origin onwards is
// treated as one word and decoded if possible. CHIP-8 images freely mix
// sprite data with instructions so a listing necessarily shows data words
// where the program never executes, and would mislead for the rare program
// that jumps to an odd address. For the common case it is what is wanted
// from a "what is in this file" tool.
package disassembly
