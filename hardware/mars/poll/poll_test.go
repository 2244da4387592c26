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

package poll_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/mars/poll"
	"github.com/jetsetilly/gopher32x/test"
)

func TestEdgeTrigger(t *testing.T) {
	var flags poll.Flags
	pd := poll.NewDetector(&flags, poll.Master, 21, poll.DefaultThreshold)

	const addr = 0x20004020

	// the first access establishes the address
	cycles := uint32(1000)
	test.ExpectFailure(t, pd.Detect(addr, cycles, poll.Registers))

	// five qualifying accesses do not fire
	for range 5 {
		cycles += 20
		test.ExpectFailure(t, pd.Detect(addr, cycles, poll.Registers))
		test.ExpectFailure(t, pd.Polling(poll.Registers))
	}

	// sixth qualifying access
	cycles += 20
	test.ExpectSuccess(t, pd.Detect(addr, cycles, poll.Registers))
	test.ExpectSuccess(t, pd.Polling(poll.Registers))
	test.ExpectEquality(t, flags, poll.Master)

	// further accesses do not fire again
	for range 10 {
		cycles += 20
		test.ExpectFailure(t, pd.Detect(addr, cycles, poll.Registers))
	}
	test.ExpectSuccess(t, pd.Polling(poll.Registers))

	// undetect clears the flag and the detection can fire again
	test.ExpectSuccess(t, pd.Undetect(poll.Registers))
	test.ExpectFailure(t, pd.Polling(poll.Registers))
	test.ExpectFailure(t, pd.Undetect(poll.Registers))

	test.ExpectFailure(t, pd.Detect(addr, cycles, poll.Registers))
	for range 5 {
		test.ExpectFailure(t, pd.Detect(addr, cycles, poll.Registers))
	}
	test.ExpectSuccess(t, pd.Detect(addr, cycles, poll.Registers))
}

func TestTolerance(t *testing.T) {
	var flags poll.Flags
	pd := poll.NewDetector(&flags, poll.Slave, 16, poll.DefaultThreshold)

	// accesses alternating between two nearby words qualify
	test.ExpectFailure(t, pd.Detect(0x4020, 0, poll.Registers))
	for i := range 5 {
		test.ExpectFailure(t, pd.Detect(0x4020+uint32(i&1)*2, uint32(i+1)*10, poll.Registers))
	}
	test.ExpectSuccess(t, pd.Detect(0x4022, 60, poll.Registers))

	// an address outside the tolerance resets the count
	pd.Undetect(poll.Registers)
	test.ExpectFailure(t, pd.Detect(0x4020, 100, poll.Registers))
	test.ExpectFailure(t, pd.Detect(0x4020, 110, poll.Registers))
	test.ExpectEquality(t, pd.Count, 1)
	test.ExpectFailure(t, pd.Detect(0x4024, 120, poll.Registers))
	test.ExpectEquality(t, pd.Count, 0)
	test.ExpectEquality(t, pd.Addr, 0x4024)

	// a gap that is too long resets the count
	test.ExpectFailure(t, pd.Detect(0x4024, 130, poll.Registers))
	test.ExpectEquality(t, pd.Count, 1)
	test.ExpectFailure(t, pd.Detect(0x4024, 147, poll.Registers))
	test.ExpectEquality(t, pd.Count, 0)
}

func TestWrappingCycles(t *testing.T) {
	var flags poll.Flags
	pd := poll.NewDetector(&flags, poll.Primary, 64, poll.DefaultThreshold)

	cycles := uint32(0xffffff00)
	pd.Detect(0xa15120, cycles, poll.Registers)
	for range 5 {
		cycles += 60
		test.ExpectFailure(t, pd.Detect(0xa15120, cycles, poll.Registers))
	}
	cycles += 60
	test.ExpectSuccess(t, pd.Detect(0xa15120, cycles, poll.Registers))
}

func TestVDPClass(t *testing.T) {
	var flags poll.Flags
	master := poll.NewDetector(&flags, poll.Master, 21, poll.DefaultThreshold)
	slave := poll.NewDetector(&flags, poll.Slave, 16, poll.DefaultThreshold)

	for i := range 7 {
		master.Detect(0x410a, uint32(i), poll.VDP)
		slave.Detect(0x4020, uint32(i), poll.Registers)
	}
	test.ExpectEquality(t, flags, poll.MasterVDP|poll.Slave)
	test.ExpectEquality(t, flags.String(), "slave|master(vdp)")

	// undetecting the register class clears both flags of the processor
	test.ExpectSuccess(t, master.Undetect(poll.Registers))
	test.ExpectEquality(t, flags, poll.Slave)

	// undetecting the VDP class does not clear the register flag
	test.ExpectFailure(t, slave.Undetect(poll.VDP))
	test.ExpectEquality(t, flags, poll.Slave)
	test.ExpectSuccess(t, slave.PollingAny())
}
