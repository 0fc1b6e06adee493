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

// Package registers implements the register types found in the CHIP-8 CPU.
//
// The 8 bit Register type is used for the sixteen V registers. It defines
// the operations the instruction set can apply to them: load, add, subtract,
// the logical operations and shifts. Operations that the flag register
// observes return the value the flag should take. For example:
//
//	x.Load(0xff)
//	carry := x.Add(0x01)
//
// In this case carry will be true, the addition having overflowed eight
// bits. It is for the CPU to load the flag register with one or zero
// accordingly.
//
// The ProgramCounter and Index types are 16 bits wide and define only load
// and add.
//
// The Timer type is the 8 bit countdown register used for the delay and
// sound timers. It decrements on Tick() and saturates at zero.
package registers
