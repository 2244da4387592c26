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

// Interrupt records a call to Stub.RaiseInterrupt()
type Interrupt struct {
	Level  int
	Vector int
}

// Stub implements the Processor, Haltable, BootRegisters, OnChipInterrupts
// and BusAttacher interfaces. It executes no instructions but records how it
// has been driven.
type Stub struct {
	ID ID

	// the free running cycle count. can be changed directly to simulate the
	// passage of time
	Cycles uint32

	// the value returned by PC()
	ProgramCounter uint32

	// the number of times Reset() has been called
	Resets int

	// every call to RaiseInterrupt() in order
	Interrupts []Interrupt

	// every call to OnChipInterrupt() in order
	OnChip []Interrupt

	// the number of cycles requested by each call to Run()
	RunLog []int

	// the bus given to AttachBus()
	Bus bus.CPUBus

	Halted bool
	GBR    uint32
	VBR    uint32

	// the timeslice has been ended by a call to EndTimeslice(). the flag is
	// cleared at the start of every call to Run()
	TimesliceEnded bool

	// Step is called by Run() if it is not nil. It should return the number
	// of cycles consumed. It can use the Stub's Bus to simulate the
	// instruction stream of a real program
	Step func(stub *Stub, cycles int) int
}

// NewStub is the preferred method of initialisation for the Stub type.
func NewStub(id ID) *Stub {
	return &Stub{ID: id}
}

// Reset implements the Processor interface.
func (s *Stub) Reset() {
	s.Resets++
	s.ProgramCounter = 0
	s.Halted = false
}

// Run implements the Processor interface.
func (s *Stub) Run(cycles int) int {
	s.RunLog = append(s.RunLog, cycles)
	s.TimesliceEnded = false

	consumed := cycles
	if s.Step != nil {
		consumed = s.Step(s, cycles)
	}

	s.Cycles += uint32(consumed)
	return consumed
}

// CyclesDone implements the Processor interface.
func (s *Stub) CyclesDone() uint32 {
	return s.Cycles
}

// RaiseInterrupt implements the Processor interface.
func (s *Stub) RaiseInterrupt(level int, vector int) {
	s.Interrupts = append(s.Interrupts, Interrupt{Level: level, Vector: vector})
}

// LastInterrupt returns the most recent interrupt raised and false if no
// interrupt has been raised.
func (s *Stub) LastInterrupt() (Interrupt, bool) {
	if len(s.Interrupts) == 0 {
		return Interrupt{}, false
	}
	return s.Interrupts[len(s.Interrupts)-1], true
}

// OnChipInterrupt implements the OnChipInterrupts interface.
func (s *Stub) OnChipInterrupt(level int, vector int) {
	s.OnChip = append(s.OnChip, Interrupt{Level: level, Vector: vector})
}

// EndTimeslice implements the Processor interface.
func (s *Stub) EndTimeslice(_ int) {
	s.TimesliceEnded = true
}

// PC implements the Processor interface.
func (s *Stub) PC() uint32 {
	return s.ProgramCounter
}

// AttachBus implements the BusAttacher interface.
func (s *Stub) AttachBus(bus bus.CPUBus) {
	s.Bus = bus
}

// SetHalt implements the Haltable interface.
func (s *Stub) SetHalt(halt bool) {
	s.Halted = halt
}

// SetGBR implements the BootRegisters interface.
func (s *Stub) SetGBR(value uint32) {
	s.GBR = value
}

// SetVBR implements the BootRegisters interface.
func (s *Stub) SetVBR(value uint32) {
	s.VBR = value
}

// Advance the cycle count without calling Run(). Useful for simulating the
// passage of time of the primary processor.
func (s *Stub) Advance(cycles int) {
	s.Cycles += uint32(cycles)
}
