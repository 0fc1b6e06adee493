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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/digest"
	"github.com/kamchy/libchip8/emulation"
	"github.com/kamchy/libchip8/hardware"
	"github.com/kamchy/libchip8/hardware/instance"
	"github.com/kamchy/libchip8/romloader"
)

// Check the performance of the emulator using the supplied ROM.
//
// The emulation runs flat out, ignoring the instructions-per-second
// preference, for the specified duration and reports the instruction rate
// achieved. A cpu profile, memory profile or execution trace is created as
// required by the profile argument.
//
// When withDigest is true a fingerprint of the final display state is
// printed alongside the instruction rate, for checking that two runs of the
// same ROM ended the same way.
func Check(output io.Writer, profile Profile, cartload romloader.Loader, duration string, withDigest bool) error {
	ch8, err := hardware.NewChip8(nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	ch8.Instance.Label = instance.Performance

	err = ch8.AttachROM(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	runner := func() error {
		// expires when the measurement period is over
		timerChan := make(chan bool)

		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// only check the timer every PerformanceBrake instructions. reading
		// the channel is expensive next to an emulated instruction
		performanceBrake := 0

		return ch8.Run(func() (emulation.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timerChan:
					return emulation.Ending, nil
				default:
				}
			}

			return emulation.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	count := ch8.InstructionCount()
	ips := float64(count) / dur.Seconds()

	if ch8.Halted {
		fmt.Fprintf(output, "program halted at %s before the measurement period ended\n", ch8.LastHalt)
	}

	fmt.Fprintf(output, "%d instructions in %.2f seconds (%.0f ips)\n", count, dur.Seconds(), ips)

	if withDigest {
		dig := digest.NewVideo(ch8.Display)
		dig.Update()
		fmt.Fprintf(output, "display digest: %s\n", dig.Hash())
	}

	return nil
}
