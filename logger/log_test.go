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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher32x/logger"
	"github.com/jetsetilly/gopher32x/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "mars", "VDP FS: 1")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mars: VDP FS: 1\n")

	w.Reset()
	log.Log(logger.Allow, "pwm", "write to unused register 3a")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mars: VDP FS: 1\npwm: write to unused register 3a\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "mars: VDP FS: 1\npwm: write to unused register 3a\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "pwm: write to unused register 3a\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "mars anomaly", "FIFO w16 1234 while full")
	log.Log(logger.Allow, "mars anomaly", "FIFO w16 1234 while full")
	log.Log(logger.Allow, "mars anomaly", "FIFO w16 1234 while full")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mars anomaly: FIFO w16 1234 while full (repeat x3)\n")

	log.BorrowLog(func(entries []logger.Entry) {
		test.DemandEquality(t, len(entries), 1)
		test.ExpectEquality(t, entries[0].Tag(), "mars anomaly")
		test.ExpectEquality(t, entries[0].Detail(), "FIFO w16 1234 while full")
		test.ExpectEquality(t, entries[0].Repeated(), 3)
	})
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(w, false)
	log.Log(logger.Allow, "a", "1")
	test.ExpectEquality(t, w.String(), "a: 1\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "b", "2")
	test.ExpectEquality(t, w.String(), "a: 1\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "mars anomaly", "FIFO w16 1234 while full")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "mars anomaly: FIFO w16 1234 while full\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("empty cartridge")

	log.Log(logger.Allow, "cartridge", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cartridge: empty cartridge\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "cartridge", "loading: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cartridge: loading: empty cartridge\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "pwm: stopped"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "mars", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mars: pwm: stopped\n")
}

func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "dmac", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "dmac: 100\n")
}
