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

// Package playmode ties a console, a front end and the user's input together
// into a running emulation, without any debugging features.
package playmode

import (
	"os"
	"os/signal"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/gui"
	"github.com/kamchy/libchip8/gui/ebitenplay"
	"github.com/kamchy/libchip8/gui/sdlplay"
	"github.com/kamchy/libchip8/gui/termplay"
	"github.com/kamchy/libchip8/hardware"
	"github.com/kamchy/libchip8/hardware/preferences"
	"github.com/kamchy/libchip8/logger"
	"github.com/kamchy/libchip8/performance/limiter"
	"github.com/kamchy/libchip8/romloader"
	"github.com/kamchy/libchip8/userinput"
)

// The list of supported front ends. Suitable as values for the frontend
// argument to the Play() function.
const (
	FrontEndSDL    = "sdl"
	FrontEndEbiten = "ebiten"
	FrontEndTerm   = "term"
)

const framesPerSecond = 60

// Play sets the emulation running. The frontend argument is one of the
// FrontEnd values listed above, the empty string meaning FrontEndSDL. A
// scale value greater than zero overrides the front end's scale preference.
//
// MUST only be called from the main goroutine.
func Play(cartload romloader.Loader, frontend string, scale float64) error {
	prf, err := preferences.NewPreferences()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	ch8, err := hardware.NewChip8(prf)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = ch8.AttachROM(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// the number of instructions to work through every frame, rounded to
	// the nearest whole instruction
	ips := prf.InstructionsPerSecond.Get().(int)
	if ips < 1 {
		ips = 1
	}
	budget := (ips + framesPerSecond/2) / framesPerSecond
	if budget < 1 {
		budget = 1
	}

	// ebiten owns the program's main loop so the console is handed over to
	// it rather than being driven from here
	if frontend == FrontEndEbiten {
		err = ebitenplay.Play(ch8.Display, ch8, scale, func() error {
			return frame(ch8, budget)
		})
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		return nil
	}

	var scr gui.GUI

	switch frontend {
	case FrontEndSDL, "":
		scr, err = sdlplay.NewSdlPlay(ch8.Display, scale)
	case FrontEndTerm:
		scr, err = termplay.NewTermPlay(ch8.Display)
	default:
		return curated.Errorf("playmode: unsupported front end (%s)", frontend)
	}
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	defer func() {
		err := scr.End()
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
	}()

	events := make(chan userinput.Event, 2)
	scr.SetEventChannel(events)

	var controllers userinput.Controllers

	// ctrl-c in the controlling terminal ends the emulation cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	lmtr, err := limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	paused := false

	for !controllers.Quit {
		lmtr.Wait()

		scr.Service()

		// drain the user input gathered by the service function
		drained := false
		for !drained {
			select {
			case <-intChan:
				controllers.Quit = true
			case ev := <-events:
				if !controllers.HandleUserInput(ev, ch8) {
					// keys that mean nothing to the console may mean
					// something to the play loop
					if kev, ok := ev.(userinput.EventKeyboard); ok && kev.Down && kev.Key == 'p' {
						paused = !paused
					}
				}
			default:
				drained = true
			}
		}

		// a paused console still renders and still responds to the user
		if !paused {
			err = frame(ch8, budget)
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}

		err = scr.Render()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	return nil
}

// frame advances the console by one frame's worth of instructions and ticks
// the timers once.
func frame(ch8 *hardware.Chip8, budget int) error {
	for i := 0; i < budget; i++ {
		err := ch8.Step()
		if err != nil {
			// a halted console is not an error in play mode. the screen
			// keeps its last frame and the user can quit in their own time
			if curated.Is(err, hardware.Halted) {
				break
			}
			return err
		}
	}

	ch8.Tick()

	return nil
}
