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

//go:build !windows

package termplay

import (
	"unicode"

	"github.com/kamchy/libchip8/userinput"
)

// the number of frames a key stays down after it was last seen in the input
// stream. it must be longer than the auto repeat delay of the host keyboard
// or a held key appears to bounce while waiting for the repeats to begin
const keyUpFrames = 40

// the end-of-text character. in raw mode ctrl-c arrives as this ordinary
// byte rather than raising SIGINT
const keyInterrupt = 0x03

const keyEsc = 0x1b

// Service implements the gui.GUI interface.
func (scr *TermPlay) Service() {
	// do nothing if the event channel hasn't been set yet
	if scr.events == nil {
		return
	}

	scr.frame++

	// an escape byte seen recently and nothing following it means the escape
	// key was pressed on its own
	if scr.esc > 0 {
		scr.esc--
		if scr.esc == 0 && scr.escAlone {
			scr.post(userinput.EventQuit{})
		}
	}

	done := false
	for !done {
		select {
		case b := <-scr.reader:
			// a recent escape byte means we may be inside a multi byte key
			// sequence. discard the rest of the sequence, none of it is
			// meant for the pad
			if scr.esc > 0 {
				scr.escAlone = false
				continue
			}

			switch b {
			case keyInterrupt:
				scr.post(userinput.EventQuit{})

			case keyEsc:
				// escape begins the multi byte sequences sent by keys like
				// the cursor keys. wait a couple of frames for the rest of
				// a sequence before deciding it was the escape key alone
				scr.esc = 2
				scr.escAlone = true

			default:
				k := unicode.ToLower(rune(b))
				if _, ok := scr.pressed[k]; !ok {
					scr.post(userinput.EventKeyboard{Key: k, Down: true})
				}
				scr.pressed[k] = scr.frame
			}

		default:
			done = true
		}
	}

	// synthesise releases for keys that haven't been seen for a while
	for k, f := range scr.pressed {
		if scr.frame-f >= keyUpFrames {
			scr.post(userinput.EventKeyboard{Key: k, Down: false})
			delete(scr.pressed, k)
		}
	}
}

// post the event onto the user input channel without ever blocking. the
// channel is serviced by the same loop that calls Service() so blocking
// here would deadlock. a dropped event is the lesser evil
func (scr *TermPlay) post(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
	}
}
