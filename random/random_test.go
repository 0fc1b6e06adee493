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

package random_test

import (
	"testing"

	"github.com/kamchy/libchip8/random"
	"github.com/kamchy/libchip8/test"
)

type counter struct {
	count uint64
}

func (m *counter) InstructionCount() uint64 {
	return m.count
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&counter{count: 100})
	b := random.NewRandom(&counter{count: 100})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

// an instance draws the same number for as long as the emulation does not
// advance.
func TestRandomStability(t *testing.T) {
	c := &counter{count: 42}
	a := random.NewRandom(c)
	a.ZeroSeed = true

	first := a.Intn(256)
	test.ExpectEquality(t, a.Intn(256), first)

	c.count++
	_ = a.Intn(256)
}
