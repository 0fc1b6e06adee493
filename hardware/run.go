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
	"github.com/kamchy/libchip8/emulation"
	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/logger"
)

// Halted is the sentinel error returned by Step() when the word at the
// program counter does not decode. By CHIP-8 convention this is how a
// program ends, so Run() treats it as a normal stop and not an error.
const Halted = "chip8: halted at %#04x (word %#04x)"

// While the continueCheck() function only runs between instructions it can
// still be expensive to call every time when an instruction is just a
// handful of operations on emulated registers.
//
// It depends on context whether it is used or not but the PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return emulation.Ending, nil
//		}
//	}
//	return emulation.Running, nil
const PerformanceBrake = 100

// Step moves the emulation on by one instruction.
//
// On a decode failure nothing in the machine changes, the failing fetch is
// recorded in LastHalt and an error with the Halted pattern is returned. The
// condition is not sticky: the fetch is retried on the next call, which is
// of use to a caller that pokes the program counter or memory between
// steps.
func (ch8 *Chip8) Step() error {
	addr := ch8.CPU.PC.Address()
	word := uint16(ch8.Mem.Load(addr))<<8 | uint16(ch8.Mem.Load(addr+1))

	op, ok := instructions.Decode(word)
	if !ok {
		if !ch8.Halted {
			logger.Log(logger.Allow, "chip8", fmt.Sprintf("halted at %#04x (word %#04x)", addr, word))
		}
		ch8.Halted = true
		ch8.LastHalt = HaltCondition{Address: addr, Word: word}
		return curated.Errorf(Halted, addr, word)
	}

	ch8.Halted = false
	ch8.CPU.LastOperation = op
	ch8.CPU.LastAddress = addr

	ch8.execute(op)
	ch8.steps++

	return nil
}

// Run sets the emulation running as quickly as possible. It returns when the
// program halts on an undecodable word (with a nil error, Halted and
// LastHalt record the event), when continueCheck says the emulation is
// ending, or on a genuine error.
func (ch8 *Chip8) Run(continueCheck func() (emulation.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (emulation.State, error) { return emulation.Running, nil }
	}

	var err error

	state := emulation.Running

	for state != emulation.Ending {
		switch state {
		case emulation.Running:
			err = ch8.Step()
			if err != nil {
				if curated.Is(err, Halted) {
					return nil
				}
				return err
			}
		case emulation.Paused:
		default:
			return curated.Errorf("chip8: unsupported emulation state (%v) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
