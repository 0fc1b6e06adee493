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

// Opcode identifies one of the thirty-four operations of the instruction
// set.
type Opcode int

// List of opcodes. The names follow what the operation does rather than the
// various mnemonic conventions, which overload LD and ADD heavily.
const (
	Clear Opcode = iota
	Return
	Jump
	Call
	SkipEq
	SkipNeq
	SkipEqReg
	Load
	AddImm
	Move
	Or
	And
	Xor
	AddReg
	SubReg
	ShiftRight
	SubRegRev
	ShiftLeft
	SkipNeqReg
	LoadI
	JumpOffset
	Random
	Draw
	SkipKeyDown
	SkipKeyUp
	GetDelay
	WaitKey
	SetDelay
	SetSound
	AddToI
	FontAddr
	ToBCD
	StoreRegs
	LoadRegs
)

// String returns the conventional mnemonic for the opcode. Mnemonics are not
// unique, LD in particular names many opcodes. Operation.String() includes
// the operands and is unambiguous.
func (op Opcode) String() string {
	return Definitions[op].Mnemonic
}

// OperandForm describes which operand fields an opcode carries in its
// encoding.
type OperandForm int

// List of operand forms.
const (
	FormNone OperandForm = iota
	FormNNN
	FormXKK
	FormXY
	FormX
	FormXYN
)

// Effect categorises an opcode by what it does to the program counter.
type Effect int

// List of effect categories.
const (
	// the program counter moves to the following instruction.
	Advance Effect = iota

	// the instruction loads the program counter itself. Return is in this
	// category even though it also advances after the load.
	Flow

	// the program counter moves by one or two instructions depending on a
	// condition.
	Skip
)

// Definition records the static properties of an opcode.
type Definition struct {
	Opcode   Opcode
	Mnemonic string
	Form     OperandForm
	Effect   Effect
}

// Definitions is the table of all opcodes, indexed by Opcode.
var Definitions = []Definition{
	Clear:       {Opcode: Clear, Mnemonic: "CLS", Form: FormNone, Effect: Advance},
	Return:      {Opcode: Return, Mnemonic: "RET", Form: FormNone, Effect: Flow},
	Jump:        {Opcode: Jump, Mnemonic: "JP", Form: FormNNN, Effect: Flow},
	Call:        {Opcode: Call, Mnemonic: "CALL", Form: FormNNN, Effect: Flow},
	SkipEq:      {Opcode: SkipEq, Mnemonic: "SE", Form: FormXKK, Effect: Skip},
	SkipNeq:     {Opcode: SkipNeq, Mnemonic: "SNE", Form: FormXKK, Effect: Skip},
	SkipEqReg:   {Opcode: SkipEqReg, Mnemonic: "SE", Form: FormXY, Effect: Skip},
	Load:        {Opcode: Load, Mnemonic: "LD", Form: FormXKK, Effect: Advance},
	AddImm:      {Opcode: AddImm, Mnemonic: "ADD", Form: FormXKK, Effect: Advance},
	Move:        {Opcode: Move, Mnemonic: "LD", Form: FormXY, Effect: Advance},
	Or:          {Opcode: Or, Mnemonic: "OR", Form: FormXY, Effect: Advance},
	And:         {Opcode: And, Mnemonic: "AND", Form: FormXY, Effect: Advance},
	Xor:         {Opcode: Xor, Mnemonic: "XOR", Form: FormXY, Effect: Advance},
	AddReg:      {Opcode: AddReg, Mnemonic: "ADD", Form: FormXY, Effect: Advance},
	SubReg:      {Opcode: SubReg, Mnemonic: "SUB", Form: FormXY, Effect: Advance},
	ShiftRight:  {Opcode: ShiftRight, Mnemonic: "SHR", Form: FormX, Effect: Advance},
	SubRegRev:   {Opcode: SubRegRev, Mnemonic: "SUBN", Form: FormXY, Effect: Advance},
	ShiftLeft:   {Opcode: ShiftLeft, Mnemonic: "SHL", Form: FormX, Effect: Advance},
	SkipNeqReg:  {Opcode: SkipNeqReg, Mnemonic: "SNE", Form: FormXY, Effect: Skip},
	LoadI:       {Opcode: LoadI, Mnemonic: "LD", Form: FormNNN, Effect: Advance},
	JumpOffset:  {Opcode: JumpOffset, Mnemonic: "JP", Form: FormNNN, Effect: Flow},
	Random:      {Opcode: Random, Mnemonic: "RND", Form: FormXKK, Effect: Advance},
	Draw:        {Opcode: Draw, Mnemonic: "DRW", Form: FormXYN, Effect: Advance},
	SkipKeyDown: {Opcode: SkipKeyDown, Mnemonic: "SKP", Form: FormX, Effect: Skip},
	SkipKeyUp:   {Opcode: SkipKeyUp, Mnemonic: "SKNP", Form: FormX, Effect: Skip},
	GetDelay:    {Opcode: GetDelay, Mnemonic: "LD", Form: FormX, Effect: Advance},
	WaitKey:     {Opcode: WaitKey, Mnemonic: "LD", Form: FormX, Effect: Advance},
	SetDelay:    {Opcode: SetDelay, Mnemonic: "LD", Form: FormX, Effect: Advance},
	SetSound:    {Opcode: SetSound, Mnemonic: "LD", Form: FormX, Effect: Advance},
	AddToI:      {Opcode: AddToI, Mnemonic: "ADD", Form: FormX, Effect: Advance},
	FontAddr:    {Opcode: FontAddr, Mnemonic: "LD", Form: FormX, Effect: Advance},
	ToBCD:       {Opcode: ToBCD, Mnemonic: "LD", Form: FormX, Effect: Advance},
	StoreRegs:   {Opcode: StoreRegs, Mnemonic: "LD", Form: FormX, Effect: Advance},
	LoadRegs:    {Opcode: LoadRegs, Mnemonic: "LD", Form: FormX, Effect: Advance},
}
