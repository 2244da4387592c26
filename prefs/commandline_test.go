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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/prefs"
	"github.com/jetsetilly/gopher32x/test"
)

func TestCommandLineParsing(t *testing.T) {
	// the unused string returned by PopCommandLineStack() shows how the
	// command line was interpreted
	cases := []struct {
		cmdline string
		unused  string
	}{
		{"", ""},
		{"mars.pal::true", "mars.pal::true"},
		{"  mars.pal ::  true ", "mars.pal::true"},
		{"mars.pal::true; mars.hle::false", "mars.hle::false; mars.pal::true"},
		{"mars.pal", ""},
		{"mars.pal;mars.hle::false", "mars.hle::false"},
		{"mars.pal::true;;", "mars.pal::true"},
	}

	for _, c := range cases {
		prefs.PushCommandLineStack(c.cmdline)
		test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1, c.cmdline)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.unused, c.cmdline)
	}

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLinePref(t *testing.T) {
	prefs.PushCommandLineStack("mars.poll.threshold::8;mars.hle")
	defer prefs.PopCommandLineStack()

	// malformed entries are never found
	ok, _ := prefs.GetCommandLinePref("mars.hle")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("mars.poll.threshold")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("8"))

	// a value can only be taken once
	ok, _ = prefs.GetCommandLinePref("mars.poll.threshold")
	test.ExpectFailure(t, ok)
}

func TestCommandLineGroups(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("mars.pal::true")
	prefs.PushCommandLineStack("mars.hle::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is searched
	ok, _ := prefs.GetCommandLinePref("mars.pal")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "mars.hle::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "mars.pal::true")
}
