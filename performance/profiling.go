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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/kamchy/libchip8/curated"
	"github.com/kamchy/libchip8/resources"
)

// Profile is a bit pattern of the profile types to generate.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString converts a string to a Profile value. The string is a
// comma separated list of "cpu", "mem" and "trace", or one of the catch-all
// values "none" and "all".
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	for _, e := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(e) {
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p = ProfileAll
		case "none":
			p = ProfileNone
		case "":
		default:
			return ProfileNone, curated.Errorf("profiling: unrecognised profile (%s)", e)
		}
	}

	return p, nil
}

// profileFile creates a file in the profiling area of the resource path.
func profileFile(suffix string, tag string) (*os.File, error) {
	fn, err := resources.JoinPath("profiling", fmt.Sprintf("%s_%s", tag, suffix))
	if err != nil {
		return nil, err
	}
	return os.Create(fn)
}

// RunProfiler runs the supplied function, generating the requested profile
// types as it goes. The tag distinguishes the output files of different
// sessions.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := profileFile("cpu.profile", tag)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := profileFile("trace.profile", tag)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := profileFile("mem.profile", tag)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
	}

	return nil
}
