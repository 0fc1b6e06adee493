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

// Package memory implements the flat 4096 byte address space of the CHIP-8
// machine.
//
// There is no memory map to speak of. The region below 0x200 is reserved by
// convention for the interpreter, which in this emulation means the font
// table installed by InstallFont(). Program images load at 0x200, the
// Origin constant, and run to the top of memory.
//
// Single byte access with a bad address is treated as a programming error,
// the index fault is allowed to happen. Ranged access through Read() is
// bounds checked and reports failure instead, because ranges are computed
// from program controlled state (the I register) and a program can
// legitimately run them off the end of memory.
package memory
