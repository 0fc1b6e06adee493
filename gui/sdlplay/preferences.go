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
	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/prefs"
	"github.com/kamchy/libchip8/resources"
)

// Preferences defines and collates the preference values used by the sdlplay
// front end.
type Preferences struct {
	dsk *prefs.Disk

	// Scale is the size of a single CHIP-8 pixel, in host pixels, when the
	// window is created
	Scale prefs.Float
}

const defScale = 12.0

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.scale", &p.Scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	// scale values from the file that make no sense revert to the default
	if p.Scale.Get().(float64) <= 0 {
		p.Scale.Set(defScale)
	}

	return p, nil
}

// SetDefaults reverts all sdlplay preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(defScale)
}

// Save current sdlplay preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
