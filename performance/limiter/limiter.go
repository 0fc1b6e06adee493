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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The play modes use it for the 60Hz cadence of the timer tick
// and the display refresh.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"

	"github.com/kamchy/libchip8/curated"
)

// FpsLimiter will trigger at the specified frames per second.
type FpsLimiter struct {
	framesPerSecond int
	tick            *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf("limiter: frame rate must be positive (%d)", framesPerSecond)
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		tick:            time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}

	return lim, nil
}

// SetLimit changes the rate at which the FpsLimiter triggers. Rates that are
// not positive are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.framesPerSecond = framesPerSecond
	lim.tick.Reset(time.Second / time.Duration(framesPerSecond))
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick.C
}

// HasWaited returns true if the trigger has already elapsed and false if it
// is still yet to happen. It never blocks.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick.C:
		return true
	default:
		return false
	}
}
