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

package main_test

import (
	"testing"

	"github.com/kamchy/libchip8/hardware"
	"github.com/kamchy/libchip8/hardware/cpu/instructions"
)

func BenchmarkStep(b *testing.B) {
	ch8, err := hardware.NewChip8(nil)
	if err != nil {
		b.Fatal(err)
	}

	// a program that never halts. the jump at the end sends the program
	// counter back to the beginning
	err = ch8.StoreOperations([]instructions.Operation{
		{Opcode: instructions.AddImm, X: 0, KK: 1},
		{Opcode: instructions.Random, X: 1, KK: 0x0f},
		{Opcode: instructions.Jump, NNN: 0x200},
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err = ch8.Step()
		if err != nil {
			b.Fatal(err)
		}
	}
}
