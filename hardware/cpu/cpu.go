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

package cpu

import (
	"fmt"
	"strings"

	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/hardware/cpu/registers"
	"github.com/kamchy/libchip8/hardware/instance"
	"github.com/kamchy/libchip8/hardware/memory"
)

// NumRegisters is the number of V registers in the CPU.
const NumRegisters = 16

// FlagRegister is the index of the V register used as the flag by the
// arithmetic, shift and sprite instructions.
const FlagRegister = 0xf

// CPU implements the processor of the CHIP-8 machine. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC registers.ProgramCounter
	I  registers.Index
	V  [NumRegisters]registers.Register

	// some operations only need an accumulator
	acc registers.Register

	// return addresses for the subroutine instructions. the stack pointer is
	// the number of active frames. it duplicates len(Stack) but the register
	// is part of the machine state proper so it is kept explicitly
	Stack []uint16
	SP    int

	DelayTimer registers.Timer
	SoundTimer registers.Timer

	// the operation most recently executed and the address it was fetched
	// from. nothing in the emulation reads these, they are for the front ends
	// and the disassembly
	LastOperation instructions.Operation
	LastAddress   uint16
}

// NewCPU is the preferred method of initialisation for the CPU structure.
//
// The instance argument can be nil, as it often is in tests, in which case
// the CPU resets to a zero state regardless of the RandomState preference.
func NewCPU(ins *instance.Instance) *CPU {
	mc := &CPU{
		instance:   ins,
		PC:         registers.NewProgramCounter(0),
		I:          registers.NewIndex(0),
		acc:        registers.NewRegister(0, "accumulator"),
		Stack:      make([]uint16, 0, 16),
		DelayTimer: registers.NewTimer("DT"),
		SoundTimer: registers.NewTimer("ST"),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}

	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.Stack = make([]uint16, len(mc.Stack))
	copy(n.Stack, mc.Stack)
	return &n
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I))
	for i := range mc.V {
		s.WriteString(fmt.Sprintf(" %s", mc.V[i]))
	}
	s.WriteString(fmt.Sprintf(" %s %s", mc.DelayTimer, mc.SoundTimer))
	return s.String()
}

// Reset reinitialises all registers. The PC is left at zero, loading it with
// a start address is the caller's responsibility.
func (mc *CPU) Reset() {
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		for i := range mc.V {
			mc.V[i].Load(uint8(mc.instance.Random.Intn(0x100)))
		}
		mc.I.Load(uint16(mc.instance.Random.Intn(memory.Size)))
	} else {
		for i := range mc.V {
			mc.V[i].Load(0)
		}
		mc.I.Load(0)
	}

	mc.PC.Load(0)
	mc.Stack = mc.Stack[:0]
	mc.SP = 0
	mc.DelayTimer.Load(0)
	mc.SoundTimer.Load(0)
	mc.LastOperation = instructions.Operation{}
	mc.LastAddress = 0
}

// AdvancePC moves the program counter on to the next instruction.
func (mc *CPU) AdvancePC() {
	mc.PC.Add(2)
}

// SkipIf moves the program counter over the next instruction if skip is true,
// or on to the next instruction if it is not.
func (mc *CPU) SkipIf(skip bool) {
	if skip {
		mc.PC.Add(4)
	} else {
		mc.PC.Add(2)
	}
}

// Call pushes the address of the current instruction onto the stack and loads
// the PC with addr. The pushed address is the call site and not the
// instruction after it. The return path runs through Return() and the usual
// advancement of the PC.
func (mc *CPU) Call(addr uint16) {
	mc.Stack = append(mc.Stack, mc.PC.Address())
	mc.SP++
	mc.PC.Load(addr)
}

// Return pops the most recent return address from the stack and loads it into
// the PC. Returns false if the stack is empty, in which case the PC is left
// untouched.
func (mc *CPU) Return() bool {
	if len(mc.Stack) == 0 {
		return false
	}

	mc.PC.Load(mc.Stack[len(mc.Stack)-1])
	mc.Stack = mc.Stack[:len(mc.Stack)-1]
	mc.SP--

	return true
}

// SetFlag loads the flag register with one or zero.
func (mc *CPU) SetFlag(flag bool) {
	if flag {
		mc.V[FlagRegister].Load(1)
	} else {
		mc.V[FlagRegister].Load(0)
	}
}

// Add register y to register x. The flag register is loaded with one if the
// sum overflowed eight bits.
//
// As with all the arithmetic functions the flag is written before the result.
// When x is the flag register itself the result is what remains.
func (mc *CPU) Add(x, y int) {
	mc.acc.Load(mc.V[x].Value())
	carry := mc.acc.Add(mc.V[y].Value())
	mc.SetFlag(carry)
	mc.V[x].Load(mc.acc.Value())
}

// Subtract register y from register x. The flag register is loaded with one
// if no borrow was required.
func (mc *CPU) Subtract(x, y int) {
	mc.acc.Load(mc.V[x].Value())
	noBorrow := mc.acc.Subtract(mc.V[y].Value())
	mc.SetFlag(noBorrow)
	mc.V[x].Load(mc.acc.Value())
}

// SubtractFrom replaces register x with register y minus register x. The flag
// register is loaded with one if no borrow was required.
func (mc *CPU) SubtractFrom(x, y int) {
	mc.acc.Load(mc.V[x].Value())
	noBorrow := mc.acc.SubtractFrom(mc.V[y].Value())
	mc.SetFlag(noBorrow)
	mc.V[x].Load(mc.acc.Value())
}

// ShiftRight shifts register x one bit to the right. The flag register is
// loaded with the bit that was shifted out.
func (mc *CPU) ShiftRight(x int) {
	mc.acc.Load(mc.V[x].Value())
	out := mc.acc.ShiftRight()
	mc.SetFlag(out)
	mc.V[x].Load(mc.acc.Value())
}

// ShiftLeft shifts register x one bit to the left. The flag register is
// loaded with the bit that was shifted out.
func (mc *CPU) ShiftLeft(x int) {
	mc.acc.Load(mc.V[x].Value())
	out := mc.acc.ShiftLeft()
	mc.SetFlag(out)
	mc.V[x].Load(mc.acc.Value())
}
