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

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/hardware/cpu"
	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/hardware/display"
	"github.com/kamchy/libchip8/hardware/instance"
	"github.com/kamchy/libchip8/hardware/keypad"
	"github.com/kamchy/libchip8/hardware/memory"
	"github.com/kamchy/libchip8/hardware/preferences"
	"github.com/kamchy/libchip8/logger"
	"github.com/kamchy/libchip8/romloader"
)

// FontOrigin is where Reset() installs the font table. Anywhere below the
// load origin would do.
const FontOrigin = 0x000

// HaltCondition records the fetch that stopped execution: the address the
// program counter was pointing at and the word that would not decode.
type HaltCondition struct {
	Address uint16
	Word    uint16
}

func (h HaltCondition) String() string {
	return fmt.Sprintf("%#04x (word %#04x)", h.Address, h.Word)
}

// Chip8 struct is the main container for the emulated components of the
// CHIP-8 machine.
type Chip8 struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad

	// the loader most recently attached. kept so that Reset() can restore
	// the program image
	loader romloader.Loader

	// number of instructions executed since the last Reset(). used to seed
	// the random package (unless ZeroSeed is set)
	steps uint64

	// whether the most recent Step() stopped on a decode failure. the
	// condition is not sticky: a later Step() that succeeds, after the
	// program counter or memory has been changed, clears it
	Halted   bool
	LastHalt HaltCondition
}

// NewChip8 creates a new CHIP-8 machine and everything associated with the
// hardware. It is used for all aspects of emulation: headless runs, regular
// play and performance profiling.
//
// The prefs argument can be nil, in which case a new preferences instance is
// created (and the preferences file loaded, if it exists).
func NewChip8(prefs *preferences.Preferences) (*Chip8, error) {
	ch8 := &Chip8{
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  keypad.NewKeypad(),
	}

	var err error

	ch8.Instance, err = instance.NewInstance(ch8, prefs)
	if err != nil {
		return nil, curated.Errorf("chip8: %v", err)
	}

	ch8.CPU = cpu.NewCPU(ch8.Instance)

	ch8.Reset()

	return ch8, nil
}

// Reset emulates the reset switch on the console: components return to their
// power-on state, the font table is installed and any previously attached
// program image is restored, with the program counter pointing at it.
func (ch8 *Chip8) Reset() {
	ch8.steps = 0
	ch8.Mem.Reset()
	ch8.Display.Reset()
	ch8.Keypad.Reset()
	ch8.CPU.Reset()

	ch8.Mem.InstallFont(FontOrigin)

	if ch8.loader.HasLoaded() {
		ch8.Mem.StoreMany(memory.Origin, ch8.loader.Data)
	}

	ch8.CPU.PC.Load(memory.Origin)

	ch8.Halted = false
	ch8.LastHalt = HaltCondition{}
}

// AttachROM loads the program image referenced by the Loader into the
// machine and resets. The loader is remembered so that a subsequent Reset()
// restores the image.
//
// Once the loader itself has succeeded the only reason for failure is an
// image too large to fit above the load origin. The image is not inspected
// in any other way.
func (ch8 *Chip8) AttachROM(cl romloader.Loader) error {
	err := cl.Load()
	if err != nil {
		return err
	}

	if len(cl.Data) > memory.Size-memory.Origin {
		return curated.Errorf("chip8: %s: image too large by %d bytes", cl.ShortName(), len(cl.Data)-(memory.Size-memory.Origin))
	}

	ch8.loader = cl
	ch8.Reset()

	logger.Log(logger.Allow, "chip8", fmt.Sprintf("%s attached (%d bytes)", cl.ShortName(), len(cl.Data)))

	return nil
}

// StoreBytes copies a program into memory at the load origin and points the
// program counter at it. The machine is otherwise left as it is.
//
// Intended for tests and tooling that assemble programs on the fly. ROM
// files should go through AttachROM.
func (ch8 *Chip8) StoreBytes(data []uint8) error {
	if len(data) > memory.Size-memory.Origin {
		return curated.Errorf("chip8: program too large by %d bytes", len(data)-(memory.Size-memory.Origin))
	}

	ch8.Mem.StoreMany(memory.Origin, data)
	ch8.CPU.PC.Load(memory.Origin)

	return nil
}

// StoreOperations encodes a program given as a sequence of operations and
// stores it at the load origin, as StoreBytes does.
func (ch8 *Chip8) StoreOperations(program []instructions.Operation) error {
	data := make([]uint8, 0, len(program)*2)
	for _, op := range program {
		word := instructions.Encode(op)
		data = append(data, uint8(word>>8), uint8(word))
	}
	return ch8.StoreBytes(data)
}

// Tick moves the delay and sound timers along, saturating at zero. The
// driving loop should call it at 60Hz, independently of the instruction
// rate. The new timer values are returned: a sound value greater than zero
// means the buzzer is on.
func (ch8 *Chip8) Tick() (uint8, uint8) {
	return ch8.CPU.DelayTimer.Tick(), ch8.CPU.SoundTimer.Tick()
}

// KeyDown presses a key on the hex pad. Key values outside the pad are
// ignored. Satisfies the userinput.HandleInput interface.
func (ch8 *Chip8) KeyDown(key int) {
	if key < 0 || key >= keypad.NumKeys {
		return
	}
	ch8.Keypad.Down(uint8(key))
}

// KeyUp releases a key on the hex pad. Key values outside the pad are
// ignored. Satisfies the userinput.HandleInput interface.
func (ch8 *Chip8) KeyUp(key int) {
	if key < 0 || key >= keypad.NumKeys {
		return
	}
	ch8.Keypad.Up(uint8(key))
}

// InstructionCount returns the number of instructions executed since the
// last Reset(). Satisfies the random.Counter interface.
func (ch8 *Chip8) InstructionCount() uint64 {
	return ch8.steps
}
