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

// Package gui defines the interface between the play loop and a front end.
//
// A front end draws the display and collects user input. It does not drive
// the emulation: the play loop calls Service() and Render() at its own
// cadence, conventionally sixty times a second, and runs the machine in
// between. Front ends that insist on owning the event loop themselves (some
// graphics libraries are built that way) provide their own play function
// instead of implementing GUI.
package gui

import (
	"github.com/kamchy/libchip8/userinput"
)

// GUI is the interface implemented by the front ends that can be driven by
// the play loop.
type GUI interface {
	// SetEventChannel connects the front end to the play loop. the front
	// end posts userinput events to the channel as it discovers them.
	// events must be posted without blocking, dropping input is preferable
	// to stalling the emulation
	SetEventChannel(chan userinput.Event)

	// Service the input devices of the front end. called once per frame
	Service()

	// Render the current state of the display. called once per frame, after
	// the machine has been run
	Render() error

	// End the front end, releasing any resources it acquired. the front end
	// is unusable afterwards
	End() error
}
