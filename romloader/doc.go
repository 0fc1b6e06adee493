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

// Package romloader is used to specify the ROM data that is to be attached
// to the emulated console.
//
// When the ROM is ready to be loaded into the emulator the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Currently local files, files inside zip archives (through the
// archivefs package) and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := romloader.NewLoader("roms/pong.ch8")
//
// A ROM is raw bytes. There is no header and no validation beyond an
// optional SHA1 hash comparison, a CHIP-8 binary is simply copied into
// memory at the load origin.
package romloader
