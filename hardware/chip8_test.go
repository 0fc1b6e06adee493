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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/emulation"
	"github.com/kamchy/libchip8/hardware"
	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/romloader"
	"github.com/kamchy/libchip8/test"
)

func newMachine(t *testing.T) *hardware.Chip8 {
	t.Helper()

	ch8, err := hardware.NewChip8(nil)
	test.DemandSuccess(t, err)
	ch8.Instance.Normalise()

	return ch8
}

func TestArithmeticProgram(t *testing.T) {
	ch8 := newMachine(t)

	// LD V1, $05 / LD V2, $09 / ADD V1, V2
	err := ch8.StoreBytes([]uint8{0x61, 0x05, 0x62, 0x09, 0x81, 0x24})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.CPU.V[1].Value(), 14)
	test.ExpectEquality(t, ch8.CPU.V[0xf].Value(), 0)
	test.ExpectEquality(t, ch8.InstructionCount(), 3)

	// the run ended on the zero word after the program
	test.ExpectEquality(t, ch8.Halted, true)
	test.ExpectEquality(t, ch8.LastHalt.Address, 0x206)
	test.ExpectEquality(t, ch8.LastHalt.Word, 0x0000)
}

func TestJumpCallReturn(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Call, NNN: 0x204},
		{Opcode: instructions.Jump, NNN: 0x209},
		{Opcode: instructions.Clear},
		{Opcode: instructions.Return},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	// call at 0x200 jumps to the subroutine at 0x204, the return resumes
	// after the call site and the jump leaves the program counter at an
	// address with nothing to decode
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x209)
	test.ExpectEquality(t, ch8.CPU.SP, 0)
}

func TestReturnWithEmptyStack(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Return},
	})
	test.ExpectSuccess(t, err)

	// the return is a no-op but execution carries on regardless
	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x202)
	test.ExpectEquality(t, ch8.CPU.SP, 0)
}

func TestBCD(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 5, KK: 145},
		{Opcode: instructions.LoadI, NNN: 0x300},
		{Opcode: instructions.ToBCD, X: 5},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.Mem.Load(0x300), 1)
	test.ExpectEquality(t, ch8.Mem.Load(0x301), 4)
	test.ExpectEquality(t, ch8.Mem.Load(0x302), 5)
}

func TestFontDraw(t *testing.T) {
	ch8 := newMachine(t)

	// the font table is installed at address zero on reset and the I
	// register starts at zero, so with no LD I the sprite is the top of
	// glyph "0"
	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 2, KK: 1},
		{Opcode: instructions.Load, X: 3, KK: 2},
		{Opcode: instructions.Draw, X: 2, Y: 3, N: 2},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.Display.Get(1, 2), true)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x206)
	test.ExpectEquality(t, ch8.CPU.V[0xf].Value(), 0)
}

func TestDrawCollision(t *testing.T) {
	ch8 := newMachine(t)

	// drawing the same sprite twice. the second draw undoes the first and
	// reports the collision
	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 2, KK: 1},
		{Opcode: instructions.Load, X: 3, KK: 2},
		{Opcode: instructions.Draw, X: 2, Y: 3, N: 2},
		{Opcode: instructions.Draw, X: 2, Y: 3, N: 2},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.CPU.V[0xf].Value(), 1)
	for y := 2; y <= 3; y++ {
		for x := 1; x <= 4; x++ {
			test.ExpectEquality(t, ch8.Display.Get(x, y), false, "pixel", x, y)
		}
	}
}

func TestJumpOffset(t *testing.T) {
	ch8 := newMachine(t)

	// LD V0, $01 / JP V0, $124
	err := ch8.StoreBytes([]uint8{0x60, 0x01, 0xb1, 0x24})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x125)
}

func TestTimers(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 0, KK: 2},
		{Opcode: instructions.SetDelay, X: 0},
		{Opcode: instructions.SetSound, X: 0},
	})
	test.ExpectSuccess(t, err)

	for i := 0; i < 3; i++ {
		err = ch8.Step()
		test.ExpectSuccess(t, err)
	}

	dl, sd := ch8.Tick()
	test.ExpectEquality(t, dl, 1)
	test.ExpectEquality(t, sd, 1)

	dl, sd = ch8.Tick()
	test.ExpectEquality(t, dl, 0)
	test.ExpectEquality(t, sd, 0)

	// saturation. the timers never wrap around
	dl, sd = ch8.Tick()
	test.ExpectEquality(t, dl, 0)
	test.ExpectEquality(t, sd, 0)
}

func TestGetDelay(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 0, KK: 9},
		{Opcode: instructions.SetDelay, X: 0},
		{Opcode: instructions.GetDelay, X: 1},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	err = ch8.Step()
	test.ExpectSuccess(t, err)

	ch8.Tick()

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.V[1].Value(), 8)
}

func TestKeys(t *testing.T) {
	ch8 := newMachine(t)

	// SKP and SKNP test the key numbered by the value of Vx
	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 1, KK: 0x0c},
		{Opcode: instructions.SkipKeyDown, X: 1},
	})
	test.ExpectSuccess(t, err)

	ch8.KeyDown(0x0c)

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x206)

	// again with the key released. no skip this time
	err = ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 1, KK: 0x0c},
		{Opcode: instructions.SkipKeyDown, X: 1},
	})
	test.ExpectSuccess(t, err)

	ch8.KeyUp(0x0c)

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x204)

	// key values outside the pad are ignored rather than panicking
	ch8.KeyDown(-1)
	ch8.KeyDown(100)
	ch8.KeyUp(-1)
}

func TestWaitKey(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.WaitKey, X: 4},
	})
	test.ExpectSuccess(t, err)

	// no key down. the register is untouched and the program counter moves
	// on, the instruction does not block
	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.V[4].Value(), 0)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x202)

	ch8.KeyDown(0x0a)
	ch8.CPU.PC.Load(0x200)

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.V[4].Value(), 0x0a)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x202)
}

func TestRandomMask(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Random, X: 0, KK: 0x0f},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.V[0].Value()&0xf0, 0)
}

func TestStoreAndLoadRegs(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 0, KK: 0x11},
		{Opcode: instructions.Load, X: 1, KK: 0x22},
		{Opcode: instructions.Load, X: 2, KK: 0x33},
		{Opcode: instructions.LoadI, NNN: 0x300},
		{Opcode: instructions.StoreRegs, X: 2},
		{Opcode: instructions.Load, X: 0, KK: 0},
		{Opcode: instructions.Load, X: 1, KK: 0},
		{Opcode: instructions.Load, X: 2, KK: 0},
		{Opcode: instructions.LoadRegs, X: 2},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.Mem.Load(0x300), 0x11)
	test.ExpectEquality(t, ch8.Mem.Load(0x301), 0x22)
	test.ExpectEquality(t, ch8.Mem.Load(0x302), 0x33)
	test.ExpectEquality(t, ch8.CPU.V[0].Value(), 0x11)
	test.ExpectEquality(t, ch8.CPU.V[1].Value(), 0x22)
	test.ExpectEquality(t, ch8.CPU.V[2].Value(), 0x33)
}

func TestFontAddr(t *testing.T) {
	ch8 := newMachine(t)

	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Load, X: 0, KK: 0x0a},
		{Opcode: instructions.FontAddr, X: 0},
	})
	test.ExpectSuccess(t, err)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch8.CPU.I.Address(), ch8.Mem.GlyphAddr(0x0a))

	// glyph "A" begins with rows 0xf0 0x90
	test.ExpectEquality(t, ch8.Mem.Load(ch8.CPU.I.Address()), 0xf0)
	test.ExpectEquality(t, ch8.Mem.Load(ch8.CPU.I.Address()+1), 0x90)
}

func TestHaltIsNotSticky(t *testing.T) {
	ch8 := newMachine(t)

	// nothing stored. the fetch at the origin finds the zero word
	err := ch8.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.Halted))
	test.ExpectEquality(t, ch8.Halted, true)
	test.ExpectEquality(t, ch8.LastHalt.Address, 0x200)
	test.ExpectEquality(t, ch8.LastHalt.Word, 0x0000)

	// poking an instruction into place revives the machine
	ch8.Mem.Store(0x200, 0x61)
	ch8.Mem.Store(0x201, 0x05)

	err = ch8.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.Halted, false)
	test.ExpectEquality(t, ch8.CPU.V[1].Value(), 0x05)
}

func TestRunContinueCheck(t *testing.T) {
	ch8 := newMachine(t)

	// an endless loop. JP $200 forever
	err := ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.Jump, NNN: 0x200},
	})
	test.ExpectSuccess(t, err)

	count := 0
	err = ch8.Run(func() (emulation.State, error) {
		count++
		if count >= 10 {
			return emulation.Ending, nil
		}
		return emulation.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 10)
	test.ExpectEquality(t, ch8.Halted, false)
}

func TestAttachROM(t *testing.T) {
	ch8 := newMachine(t)

	fn := filepath.Join(t.TempDir(), "test.ch8")
	err := os.WriteFile(fn, []uint8{0x61, 0x05, 0x00, 0x00}, 0600)
	test.DemandSuccess(t, err)

	err = ch8.AttachROM(romloader.NewLoader(fn))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x200)
	test.ExpectEquality(t, ch8.Mem.Load(0x200), 0x61)

	err = ch8.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch8.CPU.V[1].Value(), 0x05)

	// reset restores the attached image and rewinds the program counter
	ch8.Reset()
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x200)
	test.ExpectEquality(t, ch8.Mem.Load(0x200), 0x61)
	test.ExpectEquality(t, ch8.CPU.V[1].Value(), 0)
	test.ExpectEquality(t, ch8.InstructionCount(), 0)
}

func TestAttachROMTooLarge(t *testing.T) {
	ch8 := newMachine(t)

	fn := filepath.Join(t.TempDir(), "big.ch8")
	err := os.WriteFile(fn, make([]uint8, 4000), 0600)
	test.DemandSuccess(t, err)

	err = ch8.AttachROM(romloader.NewLoader(fn))
	test.ExpectFailure(t, err)
}
