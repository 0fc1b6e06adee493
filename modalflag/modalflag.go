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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes is a wrapper around the flag package that splits a command line into
// a series of modes, each with its own flags and arguments.
//
// The Output field should be specified before calling Parse() or help
// messages will not be seen.
type Modes struct {
	// where to print help messages. nothing is printed when not specified
	Output io.Writer

	// the underlying flagset. a new flagset is created on every call to
	// NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list given to NewArgs() and how far through it parsing
	// has progressed
	args    []string
	argsIdx int

	// the sub-modes valid for the next call to Parse(). the first entry in
	// the list is the default
	subModes []string

	// the series of modes selected by previous calls to Parse()
	path []string

	// text printed after the flag summary when help is requested
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be selected by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins parsing of a fresh argument list. Usually the list is
// os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// a fresh argument list begins with a fresh mode
	md.NewMode()
}

// NewMode indicates that further flag definitions, and the next call to
// Parse(), are for a new mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes adds to the list of sub-modes for the next call to Parse().
// The first sub-mode added is the default, selected when none of the others
// appears on the command line.
//
// Sub-mode comparison is case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AdditionalHelp supplements the flag summary for the current mode with a
// longer explanation.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// carry on processing the command line. if sub-modes were added before
	// the call to Parse() then the Mode() function says which one was
	// selected.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error occurred and is returned alongside this value.
	ParseError
)

// Parse the command line from the point the previous call to Parse()
// reached. Help requests are handled here, the ParseHelp result means the
// message has already been printed and the program should stop without
// further comment.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag is not an error when sub-modes are in play.
		// the flag may belong to the default sub-mode, so select that mode
		// and let its own call to Parse() deal with the flag
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])

		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		md.path = append(md.path, md.selectMode())
	}

	return ParseContinue, nil
}

// selectMode matches the next argument against the list of sub-modes. the
// argument is consumed if it matches, otherwise the default sub-mode is
// returned and the argument left for the next mode to deal with.
func (md *Modes) selectMode() string {
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			md.argsIdx++
			return m
		}
	}
	return md.subModes[0]
}

// RemainingArgs returns the arguments left over after the previous call to
// Parse(). Arguments that selected a sub-mode are not included.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from the RemainingArgs() list.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}
