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

package memory

// GlyphSize is the number of bytes in one font glyph. Each byte is one row
// of a sprite four pixels wide.
const GlyphSize = 5

// the sixteen hexadecimal digit glyphs. the high nibble of each byte
// carries the pixels.
var font = [16][GlyphSize]uint8{
	{0xf0, 0x90, 0x90, 0x90, 0xf0}, // 0
	{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
	{0xf0, 0x10, 0xf0, 0x80, 0xf0}, // 2
	{0xf0, 0x10, 0xf0, 0x10, 0xf0}, // 3
	{0x90, 0x90, 0xf0, 0x10, 0x10}, // 4
	{0xf0, 0x80, 0xf0, 0x10, 0xf0}, // 5
	{0xf0, 0x80, 0xf0, 0x90, 0xf0}, // 6
	{0xf0, 0x10, 0x20, 0x40, 0x40}, // 7
	{0xf0, 0x90, 0xf0, 0x90, 0xf0}, // 8
	{0xf0, 0x90, 0xf0, 0x10, 0xf0}, // 9
	{0xf0, 0x90, 0xf0, 0x90, 0x90}, // A
	{0xe0, 0x90, 0xe0, 0x90, 0xe0}, // B
	{0xf0, 0x80, 0x80, 0x80, 0xf0}, // C
	{0xe0, 0x90, 0x90, 0x90, 0xe0}, // D
	{0xf0, 0x80, 0xf0, 0x80, 0xf0}, // E
	{0xf0, 0x80, 0xf0, 0x80, 0x80}, // F
}

// InstallFont writes the glyph table into memory at origin and records the
// location for GlyphAddr(). Convention places the table at 0x000, below the
// program space, but any origin that keeps the 80 bytes inside the address
// space works.
func (mem *Memory) InstallFont(origin uint16) {
	for i, glyph := range font {
		mem.StoreMany(origin+uint16(i*GlyphSize), glyph[:])
	}
	mem.fontOrigin = origin
	mem.fontInstalled = true
}

// FontInstalled returns true once InstallFont() has been called.
func (mem *Memory) FontInstalled() bool {
	return mem.fontInstalled
}

// GlyphAddr returns the address of the glyph for digit, relative to where
// the font table was installed. Digits above 0xf address past the end of
// the table. That is what the hardware convention does with them, the
// resulting sprite is whatever bytes happen to be there.
func (mem *Memory) GlyphAddr(digit uint8) uint16 {
	return mem.fontOrigin + uint16(digit)*GlyphSize
}
