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

// Package ebitenplay is a front end built on the ebiten game engine.
//
// Ebiten is one of those libraries that insists on owning the program's main
// loop, so unlike the other front ends this package does not implement the
// gui.GUI interface. Instead the Play() function runs the loop itself and
// calls back into the emulation once per frame.
package ebitenplay

import (
	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/hardware/display"
	"github.com/kamchy/libchip8/logger"
	"github.com/kamchy/libchip8/userinput"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const pixelDepth = 4

// the host keys that map onto the hex pad, named by the rune the userinput
// package expects
var hostKeys = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyDigit1, '1'}, {ebiten.KeyDigit2, '2'}, {ebiten.KeyDigit3, '3'}, {ebiten.KeyDigit4, '4'},
	{ebiten.KeyQ, 'q'}, {ebiten.KeyW, 'w'}, {ebiten.KeyE, 'e'}, {ebiten.KeyR, 'r'},
	{ebiten.KeyA, 'a'}, {ebiten.KeyS, 's'}, {ebiten.KeyD, 'd'}, {ebiten.KeyF, 'f'},
	{ebiten.KeyZ, 'z'}, {ebiten.KeyX, 'x'}, {ebiten.KeyC, 'c'}, {ebiten.KeyV, 'v'},
}

// game implements the ebiten.Game interface.
type game struct {
	dsp    *display.Display
	handle userinput.HandleInput

	controllers userinput.Controllers

	// called once per update. the emulation advances in here
	onFrame func() error

	// the RGBA pixels written to the screen. the alpha channel is preset and
	// never changes
	pixels []byte

	// the display generation most recently copied into the pixel buffer
	generation int
}

// Update implements the ebiten.Game interface.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range hostKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.controllers.HandleUserInput(userinput.EventKeyboard{Key: k.r, Down: true}, g.handle)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.controllers.HandleUserInput(userinput.EventKeyboard{Key: k.r, Down: false}, g.handle)
		}
	}

	return g.onFrame()
}

// Draw implements the ebiten.Game interface.
func (g *game) Draw(screen *ebiten.Image) {
	// ebiten clears the screen between frames so the pixels must be written
	// on every call, but the buffer itself only needs refreshing when the
	// display has changed
	if gen := g.dsp.Generation(); gen != g.generation {
		g.generation = gen

		for y := 0; y < display.Height; y++ {
			for x := 0; x < display.Width; x++ {
				i := (y*display.Width + x) * pixelDepth
				if g.dsp.Get(x, y) {
					g.pixels[i] = 255
					g.pixels[i+1] = 255
					g.pixels[i+2] = 255
				} else {
					g.pixels[i] = 0
					g.pixels[i+1] = 0
					g.pixels[i+2] = 0
				}
			}
		}
	}

	screen.WritePixels(g.pixels)
}

// Layout implements the ebiten.Game interface. The logical screen is always
// the size of the CHIP-8 display, ebiten scales it to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}

// Play opens a window and runs the emulation loop until the user closes the
// window or presses the escape key.
//
// The onFrame function is called sixty times a second and is where the
// console should be advanced. An error returned from onFrame ends the loop
// and is returned to the caller.
//
// A scale value greater than zero overrides the scale preference and is
// saved with the rest of the preferences when the loop ends.
//
// MUST only be called from the main goroutine.
func Play(dsp *display.Display, handle userinput.HandleInput, scale float64, onFrame func() error) error {
	prf, err := newPreferences()
	if err != nil {
		return curated.Errorf("ebitenplay: %v", err)
	}

	if scale > 0 {
		prf.Scale.Set(scale)
	}

	g := &game{
		dsp:        dsp,
		handle:     handle,
		onFrame:    onFrame,
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		generation: -1,
	}

	// preset alpha channel
	for i := pixelDepth - 1; i < len(g.pixels); i += pixelDepth {
		g.pixels[i] = 255
	}

	winScale := prf.Scale.Get().(float64)
	ebiten.SetWindowSize(int(float64(display.Width)*winScale), int(float64(display.Height)*winScale))
	ebiten.SetWindowTitle("libchip8")

	// the console timers assume an update rate of sixty hertz
	ebiten.SetTPS(60)

	// RunGame returns nil when the game ends with ebiten.Termination
	err = ebiten.RunGame(g)
	if err != nil {
		return curated.Errorf("ebitenplay: %v", err)
	}

	err = prf.Save()
	if err != nil {
		logger.Log(logger.Allow, "ebitenplay", err)
	}

	return nil
}
