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

package script_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher32x/environment"
	"github.com/jetsetilly/gopher32x/hardware/mars"
	"github.com/jetsetilly/gopher32x/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher32x/hardware/preferences"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
	"github.com/jetsetilly/gopher32x/script"
	"github.com/jetsetilly/gopher32x/test"
)

func newBus(t *testing.T) (*mars.Mars, map[processor.ID]*processor.Stub) {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewEphemeral())
	test.DemandSuccess(t, err)

	data := make([]byte, 0x10000)
	binary.BigEndian.PutUint32(data[cartridge.HeaderIDLSize:], 0)
	cart, err := cartridge.NewCartridge(data)
	test.DemandSuccess(t, err)

	stubs := map[processor.ID]*processor.Stub{
		processor.Primary: processor.NewStub(processor.Primary),
		processor.Master:  processor.NewStub(processor.Master),
		processor.Slave:   processor.NewStub(processor.Slave),
	}

	m, err := mars.NewMars(env, cart, stubs[processor.Primary], stubs[processor.Master], stubs[processor.Slave], mars.BIOS{})
	test.DemandSuccess(t, err)

	return m, stubs
}

const commScript = `
write16(0xa15100, 3)
print("%x" % read16(0xa15100))
write16(0xa15120, 0x1234)
print("%04x" % read16(0x20004020, MASTER))
print(read16(0xa130ec) == 0x4d41)
print(peek(0xa15120) == None, peek(0x06000000, MASTER))
advance(PRIMARY, 100)
print(cycles(PRIMARY))
log("hello")
`

func TestComm(t *testing.T) {
	m, stubs := newBus(t)
	logger.Clear()

	w := &test.CompareWriter{}
	err := script.Run("comm", commScript, m, stubs, w)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, w.String(), "83\n1234\nTrue\nTrue 0\n100\n")
	test.ExpectSuccess(t, m.Started())

	tail := &strings.Builder{}
	logger.Tail(tail, 1)
	test.ExpectEquality(t, tail.String(), "script: hello\n")
}

func TestKeywordArguments(t *testing.T) {
	m, stubs := newBus(t)

	w := &test.CompareWriter{}
	err := script.Run("keywords", `
write16(value=3, addr=0xa15100)
write32(0xa15120, 0xdeadbeef, cpu=PRIMARY)
print("%08x" % read32(addr=0x20004020, cpu=SLAVE))
`, m, stubs, w)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "deadbeef\n")
}

func TestDigest(t *testing.T) {
	m, stubs := newBus(t)

	w := &test.CompareWriter{}
	err := script.Run("digest", `
a = digest()
print(a == digest())
write16(0xa15120, 1)
print(a == digest())
`, m, stubs, w)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "True\nFalse\n")
}

func TestErrors(t *testing.T) {
	m, stubs := newBus(t)
	w := &test.CompareWriter{}

	// syntax error
	test.ExpectFailure(t, script.Run("syntax", "write16(", m, stubs, w))

	// unknown processor
	test.ExpectFailure(t, script.Run("cpu", "read8(0, 3)", m, stubs, w))

	// address out of range
	test.ExpectFailure(t, script.Run("range", "read8(-1)", m, stubs, w))

	// negative cycle count
	test.ExpectFailure(t, script.Run("cycles", "advance(MASTER, -1)", m, stubs, w))

	// processor without a stub
	delete(stubs, processor.Slave)
	test.ExpectFailure(t, script.Run("stub", "advance(SLAVE, 1)", m, stubs, w))

	// no bus
	test.ExpectFailure(t, script.Run("nil", "", nil, stubs, w))

	test.ExpectEquality(t, w.String(), "")
}
