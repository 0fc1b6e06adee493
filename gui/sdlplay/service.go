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

package sdlplay

import (
	"github.com/kamchy/libchip8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events == nil {
		return
	}

	// loop until there are no more events to retrieve. we do not want to
	// leave events queued until the next frame but neither do we want to
	// wait for events that are yet to happen
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.post(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			sym := ev.Keysym.Sym

			switch {
			case sym == sdl.K_ESCAPE:
				if ev.Type == sdl.KEYDOWN {
					scr.post(userinput.EventQuit{})
				}

			// the pad keys are all plain letters and digits. for those the
			// SDL keycode is the rune itself
			case (sym >= sdl.K_a && sym <= sdl.K_z) || (sym >= sdl.K_0 && sym <= sdl.K_9):
				scr.post(userinput.EventKeyboard{
					Key:  rune(sym),
					Down: ev.Type == sdl.KEYDOWN,
				})
			}

		case nil:
			// if we have a nil value then the WaitEvent has timed out and
			// we can say that the event queue is empty
			empty = true
		}
	}
}

// post an event without blocking. the play loop drains the channel every
// frame so a full channel means the user is typing faster than the emulation
// is running. dropping input is preferable to stalling
func (scr *SdlPlay) post(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
	}
}
