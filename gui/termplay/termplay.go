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

// Package termplay implements the gui.GUI interface on an ANSI terminal.
// The display is drawn with the unicode half block characters, two CHIP-8
// pixels to every terminal cell, so the whole screen fits in a 64x16
// character grid.
//
// The terminal is switched to the alternate screen buffer and put into raw
// mode for the duration of the emulation. Raw mode means SIGINT is never
// raised by the terminal driver and ctrl-c arrives as an ordinary byte,
// which the Service() function turns into a quit event.
package termplay

import (
	"os"
	"strings"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/gui"
	"github.com/kamchy/libchip8/hardware/display"
	"github.com/kamchy/libchip8/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// CSI sequences used to prepare and to restore the terminal.
const (
	clearScreen  = "\033[2J"
	cursorHome   = "\033[H"
	cursorHide   = "\033[?25l"
	cursorShow   = "\033[?25h"
	altScreen    = "\033[?1049h"
	normalScreen = "\033[?1049l"
)

// TermPlay is a front end for the playmode loop on a posix terminal.
type TermPlay struct {
	dsp *display.Display

	input  *os.File
	output *os.File

	// terminal attributes as they were on startup. End() restores these
	canAttr unix.Termios
	rawAttr unix.Termios

	// the event channel is used by the Service() function to send
	// information back to the main event loop
	events chan userinput.Event

	// bytes arriving on the input file. fed by a dedicated goroutine
	// because reads from a terminal block
	reader chan byte

	// ttys report key presses but never key releases so releases are
	// synthesised in the Service() function. the map records the frame on
	// which each held key was last seen
	pressed map[rune]int
	frame   int

	// state of escape sequence handling. see Service() commentary
	esc      int
	escAlone bool

	// the display generation most recently written to the terminal. when
	// the display reports the same generation the redraw is skipped
	generation int

	buf strings.Builder
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is left in raw mode on success and the caller must make
// sure End() runs before the program exits.
func NewTermPlay(dsp *display.Display) (gui.GUI, error) {
	scr := &TermPlay{
		dsp:        dsp,
		input:      os.Stdin,
		output:     os.Stdout,
		reader:     make(chan byte, 32),
		pressed:    make(map[rune]int),
		generation: -1,
	}

	// this fails when the input is not a terminal, which is the closest we
	// can get to asking whether the front end is usable at all
	err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	scr.rawAttr = scr.canAttr
	termios.Cfmakeraw(&scr.rawAttr)
	err = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.rawAttr)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// the goroutine ends when the input file errors. that doesn't happen on
	// a quit event but a stale blocked read is harmless at process exit
	go func() {
		b := make([]byte, 1)
		for {
			n, err := scr.input.Read(b)
			if err != nil {
				return
			}
			if n > 0 {
				scr.reader <- b[0]
			}
		}
	}()

	scr.output.WriteString(altScreen)
	scr.output.WriteString(cursorHide)
	scr.output.WriteString(clearScreen)

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *TermPlay) SetEventChannel(events chan userinput.Event) {
	scr.events = events
}

// Render implements the gui.GUI interface.
//
// Unlike a windowed front end the terminal keeps what was last written to
// it, so when the display hasn't changed there is nothing to do.
func (scr *TermPlay) Render() error {
	g := scr.dsp.Generation()
	if g == scr.generation {
		return nil
	}
	scr.generation = g

	scr.buf.Reset()
	scr.buf.WriteString(cursorHome)

	// a cell per pair of vertically adjacent pixels
	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			up := scr.dsp.Get(x, y)
			dn := scr.dsp.Get(x, y+1)
			switch {
			case up && dn:
				scr.buf.WriteRune('█')
			case up:
				scr.buf.WriteRune('▀')
			case dn:
				scr.buf.WriteRune('▄')
			default:
				scr.buf.WriteRune(' ')
			}
		}

		// raw mode turns off output post-processing so the carriage return
		// must be explicit
		scr.buf.WriteString("\r\n")
	}

	_, err := scr.output.WriteString(scr.buf.String())
	if err != nil {
		return curated.Errorf("termplay: %v", err)
	}

	return nil
}

// End implements the gui.GUI interface. Restores the terminal to the state
// it was in before NewTermPlay().
func (scr *TermPlay) End() error {
	scr.output.WriteString(cursorShow)
	scr.output.WriteString(normalScreen)

	// restoration is best effort. there is nothing useful to do on failure
	_ = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr)

	return nil
}
