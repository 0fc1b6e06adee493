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

// Package instructions defines the CHIP-8 instruction set and the codec
// between instruction words and Operation values.
//
// An instruction word is sixteen bits, stored big-endian in memory. The
// operand fields are carved out of the word in the conventional way: x is
// bits 8-11, y is bits 4-7, n is bits 0-3, kk is bits 0-7 and nnn is bits
// 0-11.
//
// Decode() and Encode() are inverses over canonical operations: encoding an
// operation and decoding the result gives back the operation.
//
// The one wrinkle is the pair of shift opcodes. Their encodings have room
// for a y operand but the operation does not use one, so Decode() drops the
// nibble and Encode() writes zero. Both 0x8126 and 0x8106 decode to the same
// operation; the canonical word for it is 0x8106.
//
// Not every word is an instruction. Decode() reports failure with a false
// boolean rather than an error because an undecodable word has a defined
// meaning to the run loop: it is the halt condition.
package instructions
