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
	"fmt"

	"github.com/jetsetilly/gopher32x/curated"
	"github.com/jetsetilly/gopher32x/environment"
	"github.com/jetsetilly/gopher32x/hardware/clocks"
	"github.com/jetsetilly/gopher32x/hardware/mars/pwm"
	"github.com/jetsetilly/gopher32x/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher32x/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/prefs"
)

// Log tags used by the package.
const (
	LogTag     = "mars"
	AnomalyTag = "mars anomaly"
)

// BIOS images for the three processors. A nil image means that a
// replacement will be generated. The images must be in the byte order of the
// emulated hardware.
type BIOS struct {
	Primary []byte
	Master  []byte
	Slave   []byte
}

// Mars is the 32X expansion bus.
type Mars struct {
	env  *environment.Environment
	cart *cartridge.Cartridge
	bios BIOS

	primary processor.Processor
	sh2     [2]processor.Processor

	// all state that can be changed by the processors
	state *State

	// address spaces and ports indexed by processor ID
	views [3]*addrspace.View
	ports [3]*Port

	mixer pwm.Mixer
}

// NewMars is the preferred method of initialisation for the Mars type. The
// master and slave processors must be distinct from each other and from the
// primary processor.
//
// The initial state is the state at power on. The adapter is disabled and
// the SH2 processors are held in reset.
func NewMars(env *environment.Environment, cart *cartridge.Cartridge,
	primary processor.Processor, master processor.Processor, slave processor.Processor,
	bios BIOS) (*Mars, error) {

	if env == nil || env.Prefs == nil {
		return nil, curated.Errorf("mars: %v", "no environment")
	}
	if cart == nil || cart.Size() == 0 {
		return nil, curated.Errorf("mars: %v", "no cartridge")
	}
	if primary == nil || master == nil || slave == nil {
		return nil, curated.Errorf("mars: %v", "missing processor")
	}
	if master == slave || primary == master || primary == slave {
		return nil, curated.Errorf("mars: %v", "processors must be distinct")
	}

	for _, b := range []struct {
		name string
		data []byte
		size int
	}{
		{name: "primary", data: bios.Primary, size: primaryBIOSSize},
		{name: "master", data: bios.Master, size: masterBIOSSize},
		{name: "slave", data: bios.Slave, size: slaveBIOSSize},
	} {
		if b.data != nil && len(b.data) < b.size {
			return nil, curated.Errorf("mars: %v", fmt.Errorf("%s bios too short (%d bytes)", b.name, len(b.data)))
		}
	}

	m := &Mars{
		env:     env,
		cart:    cart,
		bios:    bios,
		primary: primary,
		sh2:     [2]processor.Processor{master, slave},
	}

	m.state = newState(env)
	m.plumbState()

	m.views[processor.Primary] = addrspace.NewView("primary", env, addrspace.PrimaryLayout, addrspace.PrimaryLayout)
	m.views[processor.Master] = addrspace.NewView("master", env, addrspace.SH2ReadLayout, addrspace.SH2WriteLayout)
	m.views[processor.Slave] = addrspace.NewView("slave", env, addrspace.SH2ReadLayout, addrspace.SH2WriteLayout)

	for id := range m.ports {
		m.ports[id] = &Port{m: m, id: processor.ID(id), view: m.views[id]}
	}

	for id := range m.ports {
		if a, ok := m.Processor(processor.ID(id)).(processor.BusAttacher); ok {
			a.AttachBus(m.ports[id])
		}
	}

	m.mapPrimaryDisabled()
	m.mapSH2(processor.Master)
	m.mapSH2(processor.Slave)

	return m, nil
}

func (m *Mars) String() string {
	return fmt.Sprintf("%s started=%v poll=%s", &m.state.Regs, m.state.Started, m.state.Flags)
}

// Port returns the bus of the processor.
func (m *Mars) Port(id processor.ID) *Port {
	return m.ports[id]
}

// View returns the address space of the processor.
func (m *Mars) View(id processor.ID) *addrspace.View {
	return m.views[id]
}

// Processor returns the processor with the ID.
func (m *Mars) Processor(id processor.ID) processor.Processor {
	if id == processor.Primary {
		return m.primary
	}
	return m.sh2[id.SH2()]
}

// AttachMixer sets the mixer for the output of the PWM. A nil value detaches
// the current mixer.
func (m *Mars) AttachMixer(mixer pwm.Mixer) {
	m.mixer = mixer
	m.state.PWM.AttachMixer(mixer)
}

// PWMSampleRate returns the number of samples per second currently produced
// by the PWM. Returns zero if the PWM is stopped.
func (m *Mars) PWMSampleRate() int {
	return m.state.PWM.SampleRate(clocks.SH2(m.env.Prefs.PAL.Get().(bool)))
}

// Started returns true if the adapter has been enabled.
func (m *Mars) Started() bool {
	return m.state.Started
}

// Read8 reads a byte from the address space of the processor.
func (m *Mars) Read8(address uint32, id processor.ID) uint8 {
	return m.ports[id].Read8(address)
}

// Read16 reads a 16-bit value from the address space of the processor.
func (m *Mars) Read16(address uint32, id processor.ID) uint16 {
	return m.ports[id].Read16(address)
}

// Read32 reads a 32-bit value from the address space of the processor.
func (m *Mars) Read32(address uint32, id processor.ID) uint32 {
	return m.ports[id].Read32(address)
}

// Write8 writes a byte to the address space of the processor. Returns true if
// the write may have raised an interrupt.
func (m *Mars) Write8(address uint32, data uint8, id processor.ID) bool {
	return m.ports[id].Write8(address, data)
}

// Write16 writes a 16-bit value to the address space of the processor.
// Returns true if the write may have raised an interrupt.
func (m *Mars) Write16(address uint32, data uint16, id processor.ID) bool {
	return m.ports[id].Write16(address, data)
}

// Write32 writes a 32-bit value to the address space of the processor.
// Returns true if the write may have raised an interrupt.
func (m *Mars) Write32(address uint32, data uint32, id processor.ID) bool {
	return m.ports[id].Write32(address, data)
}

// the number of SH2 cycles for each cycle of the primary processor
func (m *Mars) multiplier() int {
	return max(prefInt(&m.env.Prefs.SH2CycleMultiplier), 1)
}

func prefInt(v *prefs.Int) int {
	return v.Get().(int)
}
