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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/preferences"
	"github.com/jetsetilly/gopher32x/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewEphemeral()
	test.ExpectEquality(t, p.SyncCommRead.Get().(int), 500)
	test.ExpectEquality(t, p.SyncIntRead.Get().(int), 64)
	test.ExpectEquality(t, p.SyncCommWrite.Get().(int), 120)
	test.ExpectEquality(t, p.PollThreshold.Get().(int), 6)
	test.ExpectEquality(t, p.PollGapPrimary.Get().(int), 64)
	test.ExpectEquality(t, p.PollGapMaster.Get().(int), 21)
	test.ExpectEquality(t, p.PollGapSlave.Get().(int), 16)
	test.ExpectEquality(t, p.SH2CycleMultiplier.Get().(int), 3)
	test.ExpectEquality(t, p.PAL.Get().(bool), false)
	test.ExpectEquality(t, p.HLE.Get().(bool), true)

	// ephemeral preferences have no disk so saving is a no-op
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())

	p.PollThreshold.Set(10)
	p.SetDefaults()
	test.ExpectEquality(t, p.PollThreshold.Get().(int), 6)
}

func TestRangeChecks(t *testing.T) {
	p := preferences.NewEphemeral()

	test.ExpectFailure(t, p.PollThreshold.Set(0))
	test.ExpectEquality(t, p.PollThreshold.Get().(int), 6)

	test.ExpectFailure(t, p.SH2CycleMultiplier.Set("-1"))
	test.ExpectEquality(t, p.SH2CycleMultiplier.Get().(int), 3)

	test.ExpectSuccess(t, p.SyncCommRead.Set(0))
	test.ExpectEquality(t, p.SyncCommRead.Get().(int), 0)
}
