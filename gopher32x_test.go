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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher32x/test"
)

// prepares a working directory containing a blank cartridge image. the
// preferences directory is created in the working directory
func prepare(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.WriteFile("blank.32x", make([]byte, 0x10000), 0o600))
}

func TestHelp(t *testing.T) {
	prepare(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"-help"}), exitOK)
	test.ExpectSuccess(t, w.Contains("available sub-modes: MAP, SCRIPT, MEMVIZ, VERSION"))
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"version"}), exitOK)
	test.ExpectSuccess(t, w.Contains("Gopher32X"))
}

func TestMapMode(t *testing.T) {
	prepare(t)

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch(w, []string{"map", "-addr", "$a15120", "blank.32x"}), exitOK)

	test.ExpectSuccess(t, w.Contains("blank.32x: "))
	test.ExpectSuccess(t, w.Contains(" bytes, 1 banks, sha1 "))
	test.ExpectSuccess(t, w.Contains("primary (read)"))
	test.ExpectSuccess(t, w.Contains("master (read)"))
	test.ExpectSuccess(t, w.Contains("slave (read)"))
	test.ExpectSuccess(t, w.Contains("$00a15120 read:"))

	// the preferences directory is created on demand
	_, err := os.Stat(".gopher32x")
	test.ExpectSuccess(t, err)
}

func TestMapModeArguments(t *testing.T) {
	prepare(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"map"}), exitModeError)
	test.ExpectSuccess(t, w.Contains("32X cartridge required"))

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"map", "a.32x", "b.32x"}), exitModeError)
	test.ExpectSuccess(t, w.Contains("too many arguments"))

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"map", "missing.32x"}), exitModeError)
}

func TestScriptMode(t *testing.T) {
	prepare(t)

	src := strings.Join([]string{
		"write16(0xa15100, 3)",
		"write16(0xa15120, 0xbeef)",
		`print("%04x" % read16(0x20004020, SLAVE))`,
	}, "\n")
	test.DemandSuccess(t, os.WriteFile("test.star", []byte(src), 0o600))

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch(w, []string{"script", "-wav", "out.wav", "blank.32x", "test.star"}), exitOK)
	test.ExpectEquality(t, w.String(), "beef\n")

	_, err := os.Stat("out.wav")
	test.ExpectSuccess(t, err)

	w.Clear()
	test.DemandEquality(t, launch(w, []string{"script", "-digest", "blank.32x", "test.star"}), exitOK)
	test.ExpectSuccess(t, w.Contains("beef\npwm: 0 samples "))
	test.ExpectSuccess(t, w.Contains("\nstate: "))
}

func TestScriptError(t *testing.T) {
	prepare(t)

	test.DemandSuccess(t, os.WriteFile("bad.star", []byte("read16("), 0o600))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"script", "blank.32x", "bad.star"}), exitModeError)
	test.ExpectSuccess(t, w.Contains("* error in SCRIPT mode"))
}

func TestMemvizMode(t *testing.T) {
	prepare(t)

	out := filepath.Join(t.TempDir(), "regs.dot")

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch(w, []string{"memviz", "-out", out, "blank.32x"}), exitOK)

	data, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}
