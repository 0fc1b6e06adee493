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

// Package sdlplay is an SDL front end. The display is streamed to a texture
// which the renderer stretches over the window, so the window can be any
// size at all.
package sdlplay

import (
	"runtime"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/gui"
	"github.com/kamchy/libchip8/hardware/display"
	"github.com/kamchy/libchip8/logger"
	"github.com/kamchy/libchip8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay is a front end rendering the display in an SDL window.
type SdlPlay struct {
	dsp *display.Display

	// connects the SDL event queue with the play loop
	events chan userinput.Event

	prefs *Preferences

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer
	pixels []byte

	// the display generation most recently copied to the texture. when the
	// display reports the same generation the copy is skipped
	generation int
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// A scale value greater than zero overrides the scale preference. The new
// value is saved with the rest of the preferences when End() runs.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(dsp *display.Display, scale float64) (gui.GUI, error) {
	runtime.LockOSThread()

	scr := &SdlPlay{dsp: dsp}

	var err error

	scr.prefs, err = newPreferences()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if scale > 0 {
		scr.prefs.Scale.Set(scale)
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	winScale := float32(scr.prefs.Scale.Get().(float64))

	scr.window, err = sdl.CreateWindow("libchip8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(display.Width)*winScale), int32(float32(display.Height)*winScale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the pixel grid. the renderer stretches it
	// over the window on every Render()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(events chan userinput.Event) {
	scr.events = events
}

// Render implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Render() error {
	if g := scr.dsp.Generation(); g != scr.generation {
		scr.generation = g

		i := 0
		for y := 0; y < display.Height; y++ {
			for x := 0; x < display.Width; x++ {
				var v byte
				if scr.dsp.Get(x, y) {
					v = 255
				}
				scr.pixels[i] = v
				scr.pixels[i+1] = v
				scr.pixels[i+2] = v
				i += pixelDepth
			}
		}

		err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
		if err != nil {
			return curated.Errorf("sdlplay: %v", err)
		}
	}

	// copy and present every frame, not just when the grid has changed, so
	// that the window recovers from being obscured or resized
	err := scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// End implements the gui.GUI interface. Preferences are saved at this point
// so that scale changes survive to the next session.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) End() error {
	err := scr.prefs.Save()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}

	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
	return nil
}
