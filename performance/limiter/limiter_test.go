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

package limiter_test

import (
	"testing"

	"github.com/kamchy/libchip8/performance/limiter"
	"github.com/kamchy/libchip8/test"
)

func TestNewFPSLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	_, err = limiter.NewFPSLimiter(-60)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(60)
	test.DemandSuccess(t, err)

	// the first trigger is in the future
	test.ExpectEquality(t, lim.HasWaited(), false)

	// Wait() blocks until the trigger fires
	lim.Wait()
}
