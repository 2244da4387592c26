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

package digest_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopher32x/digest"
	"github.com/jetsetilly/gopher32x/environment"
	"github.com/jetsetilly/gopher32x/hardware/mars"
	"github.com/jetsetilly/gopher32x/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher32x/hardware/preferences"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/test"
)

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// enough samples to cause the buffer to be flushed more than once
	for i := range 5000 {
		test.DemandSuccess(t, a.SetSample(int16(i), int16(-i)))
		test.DemandSuccess(t, b.SetSample(int16(i), int16(-i)))
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// a single differing sample changes the digest
	test.DemandSuccess(t, a.SetSample(1, 0))
	test.DemandSuccess(t, b.SetSample(0, 1))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), digest.NewAudio().Hash())
	test.ExpectEquality(t, a.String(), "0 samples "+a.Hash())
}

func TestState(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewEphemeral())
	test.DemandSuccess(t, err)

	data := make([]byte, 0x10000)
	binary.BigEndian.PutUint32(data[cartridge.HeaderIDLSize:], 0)
	cart, err := cartridge.NewCartridge(data)
	test.DemandSuccess(t, err)

	m, err := mars.NewMars(env, cart,
		processor.NewStub(processor.Primary), processor.NewStub(processor.Master), processor.NewStub(processor.Slave),
		mars.BIOS{})
	test.DemandSuccess(t, err)

	state := func() string {
		t.Helper()
		d, err := digest.State(m)
		test.DemandSuccess(t, err)
		return d
	}

	before := state()
	test.ExpectEquality(t, state(), before)

	// comm port writes are visible
	m.Write16(0xa15120, 0x1234, processor.Primary)
	after := state()
	test.ExpectInequality(t, after, before)

	// reading does not change the digest
	m.Read16(0xa15120, processor.Primary)
	test.ExpectEquality(t, state(), after)
}
