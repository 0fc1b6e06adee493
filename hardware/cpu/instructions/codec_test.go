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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/kamchy/libchip8/hardware/cpu/instructions"
	"github.com/kamchy/libchip8/test"
)

// every opcode in the definitions table sits at the index its Opcode value
// names. the codec and the String() functions index the table directly so
// this ordering is load bearing.
func TestDefinitionsTable(t *testing.T) {
	test.DemandEquality(t, len(instructions.Definitions), 34)
	for i, def := range instructions.Definitions {
		test.ExpectEquality(t, def.Opcode, instructions.Opcode(i), def.Mnemonic)
	}
}

// enumerate the canonical operations for an opcode. operand fields not in
// the opcode's form stay zero.
func enumerate(def instructions.Definition) []instructions.Operation {
	var ops []instructions.Operation

	kks := []uint8{0x00, 0x01, 0x7f, 0x80, 0xff}
	nnns := []uint16{0x000, 0x123, 0x7ff, 0xfff}

	switch def.Form {
	case instructions.FormNone:
		ops = append(ops, instructions.Operation{Opcode: def.Opcode})

	case instructions.FormNNN:
		for _, nnn := range nnns {
			ops = append(ops, instructions.Operation{Opcode: def.Opcode, NNN: nnn})
		}

	case instructions.FormXKK:
		for x := uint8(0); x < 16; x++ {
			for _, kk := range kks {
				ops = append(ops, instructions.Operation{Opcode: def.Opcode, X: x, KK: kk})
			}
		}

	case instructions.FormXY:
		for x := uint8(0); x < 16; x++ {
			for y := uint8(0); y < 16; y++ {
				ops = append(ops, instructions.Operation{Opcode: def.Opcode, X: x, Y: y})
			}
		}

	case instructions.FormX:
		for x := uint8(0); x < 16; x++ {
			ops = append(ops, instructions.Operation{Opcode: def.Opcode, X: x})
		}

	case instructions.FormXYN:
		for x := uint8(0); x < 16; x++ {
			for y := uint8(0); y < 16; y++ {
				for n := uint8(0); n < 16; n++ {
					ops = append(ops, instructions.Operation{Opcode: def.Opcode, X: x, Y: y, N: n})
				}
			}
		}
	}

	return ops
}

// decoding an encoded operation gives back the operation, for every opcode
// and a spread of operand values.
func TestRoundTrip(t *testing.T) {
	for _, def := range instructions.Definitions {
		for _, op := range enumerate(def) {
			word := instructions.Encode(op)
			decoded, ok := instructions.Decode(word)
			test.DemandEquality(t, ok, true, op.String())
			test.ExpectEquality(t, decoded, op, op.String())
		}
	}
}

func TestDecode(t *testing.T) {
	vectors := []struct {
		word uint16
		op   instructions.Operation
	}{
		{0x00e0, instructions.Operation{Opcode: instructions.Clear}},
		{0x00ee, instructions.Operation{Opcode: instructions.Return}},
		{0x1abc, instructions.Operation{Opcode: instructions.Jump, NNN: 0xabc}},
		{0x2123, instructions.Operation{Opcode: instructions.Call, NNN: 0x123}},
		{0x3a7f, instructions.Operation{Opcode: instructions.SkipEq, X: 0xa, KK: 0x7f}},
		{0x4b01, instructions.Operation{Opcode: instructions.SkipNeq, X: 0xb, KK: 0x01}},
		{0x5ab0, instructions.Operation{Opcode: instructions.SkipEqReg, X: 0xa, Y: 0xb}},
		{0x6c12, instructions.Operation{Opcode: instructions.Load, X: 0xc, KK: 0x12}},
		{0x7d34, instructions.Operation{Opcode: instructions.AddImm, X: 0xd, KK: 0x34}},
		{0x8ab0, instructions.Operation{Opcode: instructions.Move, X: 0xa, Y: 0xb}},
		{0x8ab1, instructions.Operation{Opcode: instructions.Or, X: 0xa, Y: 0xb}},
		{0x8ab2, instructions.Operation{Opcode: instructions.And, X: 0xa, Y: 0xb}},
		{0x8ab3, instructions.Operation{Opcode: instructions.Xor, X: 0xa, Y: 0xb}},
		{0x8ab4, instructions.Operation{Opcode: instructions.AddReg, X: 0xa, Y: 0xb}},
		{0x8ab5, instructions.Operation{Opcode: instructions.SubReg, X: 0xa, Y: 0xb}},
		{0x8ab7, instructions.Operation{Opcode: instructions.SubRegRev, X: 0xa, Y: 0xb}},
		{0x9ab0, instructions.Operation{Opcode: instructions.SkipNeqReg, X: 0xa, Y: 0xb}},
		{0xaabc, instructions.Operation{Opcode: instructions.LoadI, NNN: 0xabc}},
		{0xbdef, instructions.Operation{Opcode: instructions.JumpOffset, NNN: 0xdef}},
		{0xc2ff, instructions.Operation{Opcode: instructions.Random, X: 0x2, KK: 0xff}},
		{0xd12f, instructions.Operation{Opcode: instructions.Draw, X: 0x1, Y: 0x2, N: 0xf}},
		{0xe19e, instructions.Operation{Opcode: instructions.SkipKeyDown, X: 0x1}},
		{0xe2a1, instructions.Operation{Opcode: instructions.SkipKeyUp, X: 0x2}},
		{0xf107, instructions.Operation{Opcode: instructions.GetDelay, X: 0x1}},
		{0xf20a, instructions.Operation{Opcode: instructions.WaitKey, X: 0x2}},
		{0xf315, instructions.Operation{Opcode: instructions.SetDelay, X: 0x3}},
		{0xf418, instructions.Operation{Opcode: instructions.SetSound, X: 0x4}},
		{0xf51e, instructions.Operation{Opcode: instructions.AddToI, X: 0x5}},
		{0xf629, instructions.Operation{Opcode: instructions.FontAddr, X: 0x6}},
		{0xf733, instructions.Operation{Opcode: instructions.ToBCD, X: 0x7}},
		{0xf855, instructions.Operation{Opcode: instructions.StoreRegs, X: 0x8}},
		{0xf965, instructions.Operation{Opcode: instructions.LoadRegs, X: 0x9}},
	}

	for _, v := range vectors {
		op, ok := instructions.Decode(v.word)
		test.DemandEquality(t, ok, true, fmt.Sprintf("%#04x", v.word))
		test.ExpectEquality(t, op, v.op, fmt.Sprintf("%#04x", v.word))
	}
}

// the shift operations drop the y nibble on decode.
func TestDecodeShifts(t *testing.T) {
	op, ok := instructions.Decode(0x8ab6)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, op, instructions.Operation{Opcode: instructions.ShiftRight, X: 0xa})
	test.ExpectEquality(t, instructions.Encode(op), 0x8a06)

	op, ok = instructions.Decode(0x8abe)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, op, instructions.Operation{Opcode: instructions.ShiftLeft, X: 0xa})
	test.ExpectEquality(t, instructions.Encode(op), 0x8a0e)
}

func TestUndecodableWords(t *testing.T) {
	words := []uint16{
		0x0000, 0x0123, 0x00e1, 0x00ef,
		0x5ab1, 0x5abf,
		0x8ab8, 0x8ab9, 0x8abd, 0x8abf,
		0x9ab5,
		0xe000, 0xe19f, 0xe2a2,
		0xf000, 0xf101, 0xf166, 0xffff,
	}

	for _, w := range words {
		_, ok := instructions.Decode(w)
		test.ExpectEquality(t, ok, false, fmt.Sprintf("%#04x", w))
	}
}

func TestOperationString(t *testing.T) {
	vectors := []struct {
		word uint16
		s    string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x1abc, "JP $abc"},
		{0x2123, "CALL $123"},
		{0x3a7f, "SE VA, $7f"},
		{0x5ab0, "SE VA, VB"},
		{0x6c12, "LD VC, $12"},
		{0x8ab0, "LD VA, VB"},
		{0x8ab6, "SHR VA"},
		{0x8abe, "SHL VA"},
		{0xaabc, "LD I, $abc"},
		{0xbdef, "JP V0, $def"},
		{0xc2ff, "RND V2, $ff"},
		{0xd12f, "DRW V1, V2, 15"},
		{0xe19e, "SKP V1"},
		{0xe2a1, "SKNP V2"},
		{0xf107, "LD V1, DT"},
		{0xf20a, "LD V2, K"},
		{0xf315, "LD DT, V3"},
		{0xf418, "LD ST, V4"},
		{0xf51e, "ADD I, V5"},
		{0xf629, "LD F, V6"},
		{0xf733, "LD B, V7"},
		{0xf855, "LD [I], V8"},
		{0xf965, "LD V9, [I]"},
	}

	for _, v := range vectors {
		op, ok := instructions.Decode(v.word)
		test.DemandEquality(t, ok, true, fmt.Sprintf("%#04x", v.word))
		test.ExpectEquality(t, op.String(), v.s)
	}
}

func TestOpcodeString(t *testing.T) {
	test.ExpectEquality(t, instructions.Jump.String(), "JP")
	test.ExpectEquality(t, instructions.Draw.String(), "DRW")
	test.ExpectEquality(t, instructions.LoadRegs.String(), "LD")
}
