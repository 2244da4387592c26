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

package processor_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/test"
)

func TestCyclesAfter(t *testing.T) {
	test.ExpectSuccess(t, processor.CyclesAfter(10, 5))
	test.ExpectFailure(t, processor.CyclesAfter(5, 10))
	test.ExpectFailure(t, processor.CyclesAfter(5, 5))

	// wrapping
	test.ExpectSuccess(t, processor.CyclesAfter(2, 0xfffffffe))
	test.ExpectFailure(t, processor.CyclesAfter(0xfffffffe, 2))
	test.ExpectEquality(t, processor.CyclesSince(2, 0xfffffffe), 4)
}

func TestID(t *testing.T) {
	test.ExpectSuccess(t, processor.Master.IsSH2())
	test.ExpectSuccess(t, processor.Slave.IsSH2())
	test.ExpectFailure(t, processor.Primary.IsSH2())
	test.ExpectEquality(t, processor.Master.SH2(), 0)
	test.ExpectEquality(t, processor.Slave.SH2(), 1)
	test.ExpectEquality(t, processor.Master.Other(), processor.Slave)
	test.ExpectEquality(t, processor.Slave.Other(), processor.Master)
	test.ExpectEquality(t, processor.SH2ID(1), processor.Slave)
	test.ExpectEquality(t, processor.Primary.String(), "primary")
}

func TestStub(t *testing.T) {
	var p processor.Processor = processor.NewStub(processor.Master)
	test.DemandImplements(t, p, processor.Haltable(nil))
	test.DemandImplements(t, p, processor.BootRegisters(nil))
	test.DemandImplements(t, p, processor.OnChipInterrupts(nil))
	test.DemandImplements(t, p, processor.BusAttacher(nil))

	s := p.(*processor.Stub)
	test.ExpectEquality(t, s.Run(100), 100)
	test.ExpectEquality(t, s.CyclesDone(), 100)

	s.Step = func(stub *processor.Stub, cycles int) int {
		stub.EndTimeslice(0)
		return cycles / 2
	}
	test.ExpectEquality(t, s.Run(100), 50)
	test.ExpectEquality(t, s.CyclesDone(), 150)
	test.ExpectSuccess(t, s.TimesliceEnded)
	test.ExpectEquality(t, len(s.RunLog), 2)

	s.RaiseInterrupt(14, 71)
	i, ok := s.LastInterrupt()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, processor.Interrupt{Level: 14, Vector: 71})
}
