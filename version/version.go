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

// Package version records the version of the current build.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "libchip8"

// the release number. set from the linker command line when making a release:
//
//	-ldflags "-X github.com/kamchy/libchip8/version.number=v0.5.0"
var number string

// the version reported by Version(). derived in init() from the release
// number and the vcs information compiled into the binary
//
// a version of "unreleased" means the build was made from a vcs checkout
// without a release number. a version of "local" means there is no vcs
// information at all, which happens when building with "go run ."
var version string

// the vcs revision of the build. suffixed with "+dirty" if the working tree
// had uncommitted changes
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release. for numbered releases the revision information is of
// secondary interest
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = s.Value
			case "vcs.modified":
				vcsModified = s.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
