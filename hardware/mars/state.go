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

package mars

import (
	"github.com/jetsetilly/gopher32x/environment"
	"github.com/jetsetilly/gopher32x/hardware/mars/dmac"
	"github.com/jetsetilly/gopher32x/hardware/mars/poll"
	"github.com/jetsetilly/gopher32x/hardware/mars/pwm"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/processor"
)

// memory sizes
const (
	romPageSize     = 0x10000
	primaryBIOSSize = 0x100
	masterBIOSSize  = 0x800
	slaveBIOSSize   = 0x400
	dramSize        = 0x20000
	sdramSize       = 0x40000
	dataArraySize   = 0x1000
)

// State is everything in the 32X that can be changed by the processors. It is
// produced by the Snapshot() function and can be restored with the Plumb()
// function.
type State struct {
	Regs registers.Bank

	// poll flags and the detectors that set them. the detectors are indexed
	// by processor ID
	Flags poll.Flags
	Poll  [3]poll.Detector

	// channel zero of the master SH2 DMA controller and the FIFO that feeds
	// it
	DMAC dmac.Channel

	PWM *pwm.PWM

	// comm ports that have been written by one side and not yet read by
	// the other. bit n is the 16-bit comm port n
	CommDirtyPrimary uint8
	CommDirtySH2     uint8

	// the time, in primary processor cycles, that each SH2 has been run to
	Synced [2]uint32

	// the time, in primary processor cycles, that the PWM has been run to
	PWMSynced uint32

	Events [numEvents]event

	// framebuffer to display from the next vertical blank
	PendingFB uint16

	// the palette has changed since the flag was last cleared
	DirtyPalette bool

	// lines until the next H interrupt
	HintCounter int

	// the adapter has been enabled
	Started bool

	// the DRAM bank that is currently mapped for drawing
	DRAMBank int

	// the first 64KiB of the primary address space after the adapter has been
	// enabled. the first 256 bytes are the primary BIOS
	ROMPage [romPageSize]byte

	DRAM      [2][dramSize]byte
	SDRAM     [sdramSize]byte
	DataArray [2][dataArraySize]byte

	MasterROM [masterBIOSSize]byte
	SlaveROM  [slaveBIOSSize]byte
}

func newState(env *environment.Environment) *State {
	st := &State{
		PWM: pwm.NewPWM(env),
	}

	prefs := env.Prefs
	threshold := prefInt(&prefs.PollThreshold)
	st.Poll[processor.Primary] = *poll.NewDetector(nil, poll.Primary, uint32(prefInt(&prefs.PollGapPrimary)), threshold)
	st.Poll[processor.Master] = *poll.NewDetector(nil, poll.Master, uint32(prefInt(&prefs.PollGapMaster)), threshold)
	st.Poll[processor.Slave] = *poll.NewDetector(nil, poll.Slave, uint32(prefInt(&prefs.PollGapSlave)), threshold)

	return st
}

// connect the pointers inside the state to the state
func (m *Mars) plumbState() {
	st := m.state
	for i := range st.Poll {
		st.Poll[i].Plumb(&st.Flags)
	}
	st.DMAC.Plumb(&st.Regs)
	st.PWM.Plumb(m.env, m.mixer)
}

// Snapshot creates a copy of the 32X state.
func (m *Mars) Snapshot() *State {
	n := *m.state
	n.PWM = m.state.PWM.Snapshot()
	return &n
}

// Plumb a previously snapshotted state. The state is copied so that the
// snapshot can be plumbed more than once.
func (m *Mars) Plumb(state *State) {
	if state == nil {
		panic("mars: cannot plumb in a nil state")
	}

	n := *state
	n.PWM = state.PWM.Snapshot()
	m.state = &n
	m.plumbState()

	// memory entries in the address spaces refer to the previous state
	if m.state.Started {
		m.mapPrimaryEnabled()
	} else {
		m.mapPrimaryDisabled()
	}
	m.mapSH2(processor.Master)
	m.mapSH2(processor.Slave)

	m.OnStateRestored()
}

// poll detector for the processor
func (m *Mars) detector(id processor.ID) *poll.Detector {
	return &m.state.Poll[id]
}
