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

package instructions

// Decode an instruction word into an Operation. The boolean return value is
// false if the word does not encode any operation. An undecodable word is
// not an error, the run loop treats it as the halt condition, so no error
// value is involved.
func Decode(word uint16) (Operation, bool) {
	x := uint8(word >> 8 & 0x0f)
	y := uint8(word >> 4 & 0x0f)
	n := uint8(word & 0x0f)
	kk := uint8(word & 0xff)
	nnn := word & 0x0fff

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			return Operation{Opcode: Clear}, true
		case 0x00ee:
			return Operation{Opcode: Return}, true
		}

	case 0x1:
		return Operation{Opcode: Jump, NNN: nnn}, true

	case 0x2:
		return Operation{Opcode: Call, NNN: nnn}, true

	case 0x3:
		return Operation{Opcode: SkipEq, X: x, KK: kk}, true

	case 0x4:
		return Operation{Opcode: SkipNeq, X: x, KK: kk}, true

	case 0x5:
		if n == 0x0 {
			return Operation{Opcode: SkipEqReg, X: x, Y: y}, true
		}

	case 0x6:
		return Operation{Opcode: Load, X: x, KK: kk}, true

	case 0x7:
		return Operation{Opcode: AddImm, X: x, KK: kk}, true

	case 0x8:
		switch n {
		case 0x0:
			return Operation{Opcode: Move, X: x, Y: y}, true
		case 0x1:
			return Operation{Opcode: Or, X: x, Y: y}, true
		case 0x2:
			return Operation{Opcode: And, X: x, Y: y}, true
		case 0x3:
			return Operation{Opcode: Xor, X: x, Y: y}, true
		case 0x4:
			return Operation{Opcode: AddReg, X: x, Y: y}, true
		case 0x5:
			return Operation{Opcode: SubReg, X: x, Y: y}, true
		case 0x6:
			// the y nibble takes no part in the shift operations. it is
			// dropped on decode and emitted as zero on encode, keeping the
			// round trip law intact for canonical operations
			return Operation{Opcode: ShiftRight, X: x}, true
		case 0x7:
			return Operation{Opcode: SubRegRev, X: x, Y: y}, true
		case 0xe:
			return Operation{Opcode: ShiftLeft, X: x}, true
		}

	case 0x9:
		if n == 0x0 {
			return Operation{Opcode: SkipNeqReg, X: x, Y: y}, true
		}

	case 0xa:
		return Operation{Opcode: LoadI, NNN: nnn}, true

	case 0xb:
		return Operation{Opcode: JumpOffset, NNN: nnn}, true

	case 0xc:
		return Operation{Opcode: Random, X: x, KK: kk}, true

	case 0xd:
		return Operation{Opcode: Draw, X: x, Y: y, N: n}, true

	case 0xe:
		switch kk {
		case 0x9e:
			return Operation{Opcode: SkipKeyDown, X: x}, true
		case 0xa1:
			return Operation{Opcode: SkipKeyUp, X: x}, true
		}

	case 0xf:
		switch kk {
		case 0x07:
			return Operation{Opcode: GetDelay, X: x}, true
		case 0x0a:
			return Operation{Opcode: WaitKey, X: x}, true
		case 0x15:
			return Operation{Opcode: SetDelay, X: x}, true
		case 0x18:
			return Operation{Opcode: SetSound, X: x}, true
		case 0x1e:
			return Operation{Opcode: AddToI, X: x}, true
		case 0x29:
			return Operation{Opcode: FontAddr, X: x}, true
		case 0x33:
			return Operation{Opcode: ToBCD, X: x}, true
		case 0x55:
			return Operation{Opcode: StoreRegs, X: x}, true
		case 0x65:
			return Operation{Opcode: LoadRegs, X: x}, true
		}
	}

	return Operation{}, false
}

// Encode an Operation into an instruction word. Every opcode has an
// encoding so the function is total over well formed operations. Operand
// fields are masked to the width their encoding slot allows.
//
// Encode panics if the operation's opcode is not in the definitions table.
// That is a programming error, not a data condition.
func Encode(op Operation) uint16 {
	x := uint16(op.X&0x0f) << 8
	y := uint16(op.Y&0x0f) << 4
	n := uint16(op.N & 0x0f)
	kk := uint16(op.KK)
	nnn := op.NNN & 0x0fff

	switch op.Opcode {
	case Clear:
		return 0x00e0
	case Return:
		return 0x00ee
	case Jump:
		return 0x1000 | nnn
	case Call:
		return 0x2000 | nnn
	case SkipEq:
		return 0x3000 | x | kk
	case SkipNeq:
		return 0x4000 | x | kk
	case SkipEqReg:
		return 0x5000 | x | y
	case Load:
		return 0x6000 | x | kk
	case AddImm:
		return 0x7000 | x | kk
	case Move:
		return 0x8000 | x | y
	case Or:
		return 0x8001 | x | y
	case And:
		return 0x8002 | x | y
	case Xor:
		return 0x8003 | x | y
	case AddReg:
		return 0x8004 | x | y
	case SubReg:
		return 0x8005 | x | y
	case ShiftRight:
		return 0x8006 | x
	case SubRegRev:
		return 0x8007 | x | y
	case ShiftLeft:
		return 0x800e | x
	case SkipNeqReg:
		return 0x9000 | x | y
	case LoadI:
		return 0xa000 | nnn
	case JumpOffset:
		return 0xb000 | nnn
	case Random:
		return 0xc000 | x | kk
	case Draw:
		return 0xd000 | x | y | n
	case SkipKeyDown:
		return 0xe09e | x
	case SkipKeyUp:
		return 0xe0a1 | x
	case GetDelay:
		return 0xf007 | x
	case WaitKey:
		return 0xf00a | x
	case SetDelay:
		return 0xf015 | x
	case SetSound:
		return 0xf018 | x
	case AddToI:
		return 0xf01e | x
	case FontAddr:
		return 0xf029 | x
	case ToBCD:
		return 0xf033 | x
	case StoreRegs:
		return 0xf055 | x
	case LoadRegs:
		return 0xf065 | x
	}
	panic("unknown opcode")
}
