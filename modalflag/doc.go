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

// Package modalflag is a wrapper around the flag package in the Go standard
// library. It provides a way of defining a command line that is divided
// into modes, each mode with its own flags and arguments, and with modes
// able to have sub-modes of their own.
//
// The basic pattern is to initialise a Modes struct with the program's
// arguments and the list of top level modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("PLAY", "DISASM")
//
// and then to call Parse(), switching on the result:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help has already been printed
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// The mode the user asked for is available with the Mode() function. Each
// mode handler then defines the flags meaningful to that mode and parses
// again:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stdout")
//		p, err := md.Parse()
//		...
//	}
//
// Any arguments left over once a mode's flags have been parsed are available
// with the RemainingArgs() and GetArg() functions. For the example above
// that is where the name of the file to play would be found.
//
// Help is handled by the package itself. The -help flag (or -h) prints the
// flag summary for the mode reached so far, along with the list of
// available sub-modes, to the Output field of the Modes struct.
package modalflag
