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

package processor

import "github.com/jetsetilly/gopher32x/hardware/memory/bus"

// ID identifies one of the three processors attached to the bus.
type ID int

// List of valid ID values. The order of the SH2 processors is significant.
// Master and Slave can be used as indexes into two element arrays by
// subtracting Master.
const (
	Primary ID = iota
	Master
	Slave
)

func (id ID) String() string {
	switch id {
	case Primary:
		return "primary"
	case Master:
		return "master"
	case Slave:
		return "slave"
	}
	return "unknown processor"
}

// IsSH2 returns true if the ID is one of the two SH2 processors.
func (id ID) IsSH2() bool {
	return id == Master || id == Slave
}

// SH2 returns the index of the SH2 processor. Master is zero and Slave is one.
// The result is undefined for the Primary ID.
func (id ID) SH2() int {
	return int(id - Master)
}

// Other returns the ID of the other SH2 processor.
func (id ID) Other() ID {
	if id == Master {
		return Slave
	}
	return Master
}

// SH2ID returns the ID for the SH2 index, as returned by the SH2() function.
func SH2ID(idx int) ID {
	return Master + ID(idx&1)
}

// Processor is the capability interface for an instruction interpreter.
type Processor interface {
	// Reset the processor. The processor should fetch the reset vector from
	// the bus.
	Reset()

	// Run the processor for the number of cycles. Returns the number of
	// cycles actually consumed, which may be fewer than requested if the
	// timeslice was ended early with EndTimeslice()
	Run(cycles int) int

	// CyclesDone returns the free running cycle count. The value wraps
	// around on overflow
	CyclesDone() uint32

	// RaiseInterrupt requests an interrupt at the level and with the vector
	// number. A level of zero clears any pending interrupt
	RaiseInterrupt(level int, vector int)

	// EndTimeslice requests that the current call to Run() returns early,
	// leaving the specified number of cycles of the timeslice
	EndTimeslice(remaining int)

	// PC returns the current program counter. It is used for diagnostics only
	PC() uint32
}

// Haltable is implemented by processors that can be stopped while they are
// spinning on a register that can only be changed by another processor.
type Haltable interface {
	SetHalt(halt bool)
}

// BootRegisters is implemented by processors whose boot registers can be set
// directly. This is required when the bus performs the work of a missing BIOS.
type BootRegisters interface {
	SetGBR(value uint32)
	SetVBR(value uint32)
}

// OnChipInterrupts is implemented by processors with interrupt sources
// internal to the chip. Processors that do not implement it receive on-chip
// interrupts through RaiseInterrupt().
type OnChipInterrupts interface {
	OnChipInterrupt(level int, vector int)
}

// BusAttacher is implemented by processors that are told which bus to use
// when they are attached.
type BusAttacher interface {
	AttachBus(bus bus.CPUBus)
}

// CyclesAfter returns true if cycle count a is later than cycle count b. The
// comparison uses wrapping arithmetic so is correct across counter overflow
// provided the two values are less than 2^31 cycles apart.
func CyclesAfter(a uint32, b uint32) bool {
	return int32(a-b) > 0
}

// CyclesSince returns the number of cycles from b to a, using wrapping
// arithmetic.
func CyclesSince(a uint32, b uint32) uint32 {
	return a - b
}
