// This file is part of Gopher32X.
//
// Gopher32X is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher32X is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher32X.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher32X"

// release number. set with the linker flag:
//
//	-ldflags "-X github.com/jetsetilly/gopher32x/version.number=v0.1.0"
var number string

// the values returned by Version(). filled in by init()
var version, revision string

// Version returns the version string, the revision string and whether this is a
// numbered release.
//
// The version string is "unreleased" if there is no release number but there
// is VCS information. It is "local" if there is neither, which is the case
// with "go run .".
//
// The revision string is suffixed with "+dirty" if the working tree had
// uncommitted changes when the binary was built.
func Version() (string, string, bool) {
	return version, revision, number != ""
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = fromSettings(number, settings)
}

// fromSettings decides the version and revision strings from the release
// number and the VCS settings of the build.
func fromSettings(number string, settings []debug.BuildSetting) (string, string) {
	var vcs, dirty bool
	var rev string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case dirty:
		rev += "+dirty"
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// String returns the application name and version information on one line.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
