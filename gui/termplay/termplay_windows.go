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

//go:build windows

// Package termplay is not available under windows.
package termplay

import (
	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/gui"
	"github.com/kamchy/libchip8/hardware/display"
)

// NewTermPlay always returns an error under windows.
func NewTermPlay(dsp *display.Display) (gui.GUI, error) {
	return nil, curated.Errorf("termplay: not available on windows")
}
