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

// Package cpu emulates the processor state of the CHIP-8 machine: the sixteen
// V registers, the I index register, the program counter, the subroutine
// stack and the two countdown timers. Register logic is implemented by the
// types in the registers sub-package.
//
// The CPU does not fetch or execute instructions by itself. The console
// implementation in the hardware package drives the CPU through the public
// functions of this package, most of which correspond to a group of
// instructions from the instructions sub-package.
//
// The arithmetic and shift functions maintain the flag register in the way
// CHIP-8 programs expect. In particular the flag is always written before the
// result, meaning that when an instruction names the flag register as its
// destination the result is what remains, not the flag.
package cpu
