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

// Package prefs facilitates the storage of preference values alongside the
// live emulation.
//
// A preference value is an instance of one of the prefs types: Bool, String,
// Int, Float or Generic. The live value is read with Get() and changed with
// Set(). All types are safe for concurrent use, the front end typically reads
// a preference from a different goroutine to the one servicing the emulation.
//
// Preference values are made persistent by adding them to a Disk instance.
// Disk collates the values under unique keys and stores them in a single
// text file, one "key :: value" entry per line. More than one Disk instance
// can refer to the same file, entries not added to a particular instance are
// left untouched by a Save().
//
// Values can be overridden for the duration of the program with the command
// line stack. A string of the form "key::value; key::value" pushed with
// PushCommandLineStack() takes precedence over the stored entry on the next
// Load().
package prefs
