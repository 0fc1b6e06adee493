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

package registers_test

import (
	"testing"

	"github.com/kamchy/libchip8/hardware/cpu/registers"
	"github.com/kamchy/libchip8/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "V0")
	test.ExpectEquality(t, r.Value(), 0)
	test.ExpectEquality(t, r.Label(), "V0")

	// loading & addition
	r.Load(127)
	test.ExpectEquality(t, r.Value(), 127)
	carry := r.Add(2)
	test.ExpectEquality(t, r.Value(), 129)
	test.ExpectEquality(t, carry, false)

	// addition boundary
	r.Load(255)
	carry = r.Add(1)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r.Value(), 0)

	r.Load(250)
	carry = r.Add(10)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r.Value(), 4)
}

func TestRegisterSubtraction(t *testing.T) {
	r := registers.NewRegister(0, "V1")

	// no borrow when the register is larger or equal
	r.Load(11)
	noBorrow := r.Subtract(1)
	test.ExpectEquality(t, r.Value(), 10)
	test.ExpectEquality(t, noBorrow, true)

	r.Load(5)
	noBorrow = r.Subtract(5)
	test.ExpectEquality(t, r.Value(), 0)
	test.ExpectEquality(t, noBorrow, true)

	// subtract on boundary
	r.Load(0x01)
	noBorrow = r.Subtract(0x06)
	test.ExpectEquality(t, r.Value(), 0xfb)
	test.ExpectEquality(t, noBorrow, false)

	// reversed subtraction
	r.Load(3)
	noBorrow = r.SubtractFrom(10)
	test.ExpectEquality(t, r.Value(), 7)
	test.ExpectEquality(t, noBorrow, true)

	r.Load(10)
	noBorrow = r.SubtractFrom(3)
	test.ExpectEquality(t, r.Value(), 0xf9)
	test.ExpectEquality(t, noBorrow, false)
}

func TestRegisterLogicalOperators(t *testing.T) {
	r := registers.NewRegister(0x21, "V2")

	r.And(0x01)
	test.ExpectEquality(t, r.Value(), 0x01)
	r.Xor(0xff)
	test.ExpectEquality(t, r.Value(), 0xfe)
	r.Or(0x01)
	test.ExpectEquality(t, r.Value(), 0xff)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0xff, "V3")

	out := r.ShiftLeft()
	test.ExpectEquality(t, r.Value(), 0xfe)
	test.ExpectEquality(t, out, true)

	out = r.ShiftRight()
	test.ExpectEquality(t, r.Value(), 0x7f)
	test.ExpectEquality(t, out, false)

	r.Load(0x01)
	out = r.ShiftRight()
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectEquality(t, out, true)

	r.Load(0x40)
	out = r.ShiftLeft()
	test.ExpectEquality(t, r.Value(), 0x80)
	test.ExpectEquality(t, out, false)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x200)
	test.ExpectEquality(t, pc.Address(), 0x200)
	test.ExpectEquality(t, pc.Label(), "PC")

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x202)

	pc.Load(0x123)
	test.ExpectEquality(t, pc.Address(), 0x123)
	test.ExpectEquality(t, pc.String(), "0x123")
}

func TestIndex(t *testing.T) {
	idx := registers.NewIndex(0)
	test.ExpectEquality(t, idx.Address(), 0)
	test.ExpectEquality(t, idx.Label(), "I")

	idx.Load(0x300)
	idx.Add(5)
	test.ExpectEquality(t, idx.Address(), 0x305)
}

func TestTimer(t *testing.T) {
	tmr := registers.NewTimer("DT")
	test.ExpectEquality(t, tmr.Value(), 0)
	test.ExpectEquality(t, tmr.IsActive(), false)

	// a zero timer stays at zero when ticked
	test.ExpectEquality(t, tmr.Tick(), 0)

	tmr.Load(2)
	test.ExpectEquality(t, tmr.IsActive(), true)
	test.ExpectEquality(t, tmr.Tick(), 1)
	test.ExpectEquality(t, tmr.Tick(), 0)
	test.ExpectEquality(t, tmr.Tick(), 0)
	test.ExpectEquality(t, tmr.IsActive(), false)
}
