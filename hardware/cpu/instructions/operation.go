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

import "fmt"

// Operation is a single decoded instruction: an opcode plus the operand
// fields its encoding carries.
//
// Operand fields not carried by the opcode's form are zero. Decode() only
// fills the fields the form names and Encode() only reads them, so the
// canonical form of an operation is the one with the unused fields zeroed.
type Operation struct {
	Opcode Opcode

	// register index operands. X is bits 8-11 of the instruction word, Y is
	// bits 4-7.
	X uint8
	Y uint8

	// N is the nibble operand in bits 0-3. the sprite height of Draw.
	N uint8

	// KK is the byte operand in bits 0-7.
	KK uint8

	// NNN is the address operand in bits 0-11.
	NNN uint16
}

// String returns the operation rendered with conventional mnemonics and
// operands.
func (op Operation) String() string {
	switch op.Opcode {
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP $%03x", op.NNN)
	case Call:
		return fmt.Sprintf("CALL $%03x", op.NNN)
	case SkipEq:
		return fmt.Sprintf("SE V%X, $%02x", op.X, op.KK)
	case SkipNeq:
		return fmt.Sprintf("SNE V%X, $%02x", op.X, op.KK)
	case SkipEqReg:
		return fmt.Sprintf("SE V%X, V%X", op.X, op.Y)
	case Load:
		return fmt.Sprintf("LD V%X, $%02x", op.X, op.KK)
	case AddImm:
		return fmt.Sprintf("ADD V%X, $%02x", op.X, op.KK)
	case Move:
		return fmt.Sprintf("LD V%X, V%X", op.X, op.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", op.X, op.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", op.X, op.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", op.X, op.Y)
	case AddReg:
		return fmt.Sprintf("ADD V%X, V%X", op.X, op.Y)
	case SubReg:
		return fmt.Sprintf("SUB V%X, V%X", op.X, op.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X", op.X)
	case SubRegRev:
		return fmt.Sprintf("SUBN V%X, V%X", op.X, op.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X", op.X)
	case SkipNeqReg:
		return fmt.Sprintf("SNE V%X, V%X", op.X, op.Y)
	case LoadI:
		return fmt.Sprintf("LD I, $%03x", op.NNN)
	case JumpOffset:
		return fmt.Sprintf("JP V0, $%03x", op.NNN)
	case Random:
		return fmt.Sprintf("RND V%X, $%02x", op.X, op.KK)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, %d", op.X, op.Y, op.N)
	case SkipKeyDown:
		return fmt.Sprintf("SKP V%X", op.X)
	case SkipKeyUp:
		return fmt.Sprintf("SKNP V%X", op.X)
	case GetDelay:
		return fmt.Sprintf("LD V%X, DT", op.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", op.X)
	case SetDelay:
		return fmt.Sprintf("LD DT, V%X", op.X)
	case SetSound:
		return fmt.Sprintf("LD ST, V%X", op.X)
	case AddToI:
		return fmt.Sprintf("ADD I, V%X", op.X)
	case FontAddr:
		return fmt.Sprintf("LD F, V%X", op.X)
	case ToBCD:
		return fmt.Sprintf("LD B, V%X", op.X)
	case StoreRegs:
		return fmt.Sprintf("LD [I], V%X", op.X)
	case LoadRegs:
		return fmt.Sprintf("LD V%X, [I]", op.X)
	}
	panic("unknown opcode")
}
