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

package hardware

import (
	"fmt"

	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/hardware/memory"
	"github.com/kamchy/libchip8/logger"
)

// execute dispatches a decoded operation to the components it mutates.
//
// Program counter policy: the control flow opcodes (Jump, Call, JumpOffset
// and the Skip* group) decide the new program counter themselves. every
// other opcode, Return included, performs its effect and then advances the
// program counter by two.
func (ch8 *Chip8) execute(op instructions.Operation) {
	switch op.Opcode {
	case instructions.Clear:
		ch8.Display.Clear()
		ch8.CPU.AdvancePC()

	case instructions.Return:
		if !ch8.CPU.Return() {
			logger.Log(logger.Allow, "chip8", fmt.Sprintf("return with empty stack at %#04x", ch8.CPU.PC.Address()))
		}
		ch8.CPU.AdvancePC()

	case instructions.Jump:
		ch8.CPU.PC.Load(op.NNN)

	case instructions.Call:
		ch8.CPU.Call(op.NNN)

	case instructions.SkipEq:
		ch8.CPU.SkipIf(ch8.CPU.V[op.X].Value() == op.KK)

	case instructions.SkipNeq:
		ch8.CPU.SkipIf(ch8.CPU.V[op.X].Value() != op.KK)

	case instructions.SkipEqReg:
		ch8.CPU.SkipIf(ch8.CPU.V[op.X].Value() == ch8.CPU.V[op.Y].Value())

	case instructions.Load:
		ch8.CPU.V[op.X].Load(op.KK)
		ch8.CPU.AdvancePC()

	case instructions.AddImm:
		// no flag for the immediate form
		ch8.CPU.V[op.X].Add(op.KK)
		ch8.CPU.AdvancePC()

	case instructions.Move:
		ch8.CPU.V[op.X].Load(ch8.CPU.V[op.Y].Value())
		ch8.CPU.AdvancePC()

	case instructions.Or:
		ch8.CPU.V[op.X].Or(ch8.CPU.V[op.Y].Value())
		ch8.CPU.AdvancePC()

	case instructions.And:
		ch8.CPU.V[op.X].And(ch8.CPU.V[op.Y].Value())
		ch8.CPU.AdvancePC()

	case instructions.Xor:
		ch8.CPU.V[op.X].Xor(ch8.CPU.V[op.Y].Value())
		ch8.CPU.AdvancePC()

	case instructions.AddReg:
		ch8.CPU.Add(int(op.X), int(op.Y))
		ch8.CPU.AdvancePC()

	case instructions.SubReg:
		ch8.CPU.Subtract(int(op.X), int(op.Y))
		ch8.CPU.AdvancePC()

	case instructions.ShiftRight:
		ch8.CPU.ShiftRight(int(op.X))
		ch8.CPU.AdvancePC()

	case instructions.SubRegRev:
		ch8.CPU.SubtractFrom(int(op.X), int(op.Y))
		ch8.CPU.AdvancePC()

	case instructions.ShiftLeft:
		ch8.CPU.ShiftLeft(int(op.X))
		ch8.CPU.AdvancePC()

	case instructions.SkipNeqReg:
		ch8.CPU.SkipIf(ch8.CPU.V[op.X].Value() != ch8.CPU.V[op.Y].Value())

	case instructions.LoadI:
		ch8.CPU.I.Load(op.NNN)
		ch8.CPU.AdvancePC()

	case instructions.JumpOffset:
		ch8.CPU.PC.Load(op.NNN + uint16(ch8.CPU.V[0].Value()))

	case instructions.Random:
		ch8.CPU.V[op.X].Load(uint8(ch8.Instance.Random.Intn(0x100)) & op.KK)
		ch8.CPU.AdvancePC()

	case instructions.Draw:
		// a sprite range that leaves the address space reads as empty
		from := ch8.CPU.I.Address()
		sprite, _ := ch8.Mem.Read(from, from+uint16(op.N))
		collision := ch8.Display.Draw(ch8.CPU.V[op.X].Value(), ch8.CPU.V[op.Y].Value(), sprite)
		ch8.CPU.SetFlag(collision)
		ch8.CPU.AdvancePC()

	case instructions.SkipKeyDown:
		ch8.CPU.SkipIf(ch8.Keypad.IsDown(ch8.CPU.V[op.X].Value()))

	case instructions.SkipKeyUp:
		ch8.CPU.SkipIf(!ch8.Keypad.IsDown(ch8.CPU.V[op.X].Value()))

	case instructions.GetDelay:
		ch8.CPU.V[op.X].Load(ch8.CPU.DelayTimer.Value())
		ch8.CPU.AdvancePC()

	case instructions.WaitKey:
		// the wait is the caller's problem. if no key is down the register
		// is left alone and the program counter advances as usual, so a
		// program waits by looping over this instruction
		if k, ok := ch8.Keypad.FirstDown(); ok {
			ch8.CPU.V[op.X].Load(k)
		}
		ch8.CPU.AdvancePC()

	case instructions.SetDelay:
		ch8.CPU.DelayTimer.Load(ch8.CPU.V[op.X].Value())
		ch8.CPU.AdvancePC()

	case instructions.SetSound:
		ch8.CPU.SoundTimer.Load(ch8.CPU.V[op.X].Value())
		ch8.CPU.AdvancePC()

	case instructions.AddToI:
		// no flag, unlike the register add
		ch8.CPU.I.Add(uint16(ch8.CPU.V[op.X].Value()))
		ch8.CPU.AdvancePC()

	case instructions.FontAddr:
		ch8.CPU.I.Load(ch8.Mem.GlyphAddr(ch8.CPU.V[op.X].Value()))
		ch8.CPU.AdvancePC()

	case instructions.ToBCD:
		v := ch8.CPU.V[op.X].Value()
		addr := ch8.CPU.I.Address()
		ch8.Mem.Store(addr, v/100)
		ch8.Mem.Store(addr+1, (v/10)%10)
		ch8.Mem.Store(addr+2, v%10)
		ch8.CPU.AdvancePC()

	case instructions.StoreRegs:
		addr := ch8.CPU.I.Address()
		for i := 0; i <= int(op.X); i++ {
			ch8.Mem.Store(addr+uint16(i), ch8.CPU.V[i].Value())
		}
		ch8.CPU.AdvancePC()

	case instructions.LoadRegs:
		// offsets that stray outside the address space leave the register
		// untouched, matching the hardware's forgiving bulk load
		addr := ch8.CPU.I.Address()
		for i := 0; i <= int(op.X); i++ {
			if int(addr)+i < memory.Size {
				ch8.CPU.V[i].Load(ch8.Mem.Load(addr + uint16(i)))
			}
		}
		ch8.CPU.AdvancePC()

	default:
		panic(fmt.Sprintf("chip8: execute: unhandled opcode (%d)", op.Opcode))
	}
}
