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
	"github.com/jetsetilly/gopher32x/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher32x/hardware/memory/bus"
	"github.com/jetsetilly/gopher32x/hardware/processor"
)

// Port is the connection of a single processor to the bus. It implements the
// bus.CPUBus and bus.DebuggerBus interfaces.
type Port struct {
	m    *Mars
	id   processor.ID
	view *addrspace.View

	// wait states charged since the last call to Waits()
	waits int
}

var _ bus.CPUBus = (*Port)(nil)
var _ bus.DebuggerBus = (*Port)(nil)
var _ bus.WaitStates = (*Port)(nil)

// ID returns the ID of the processor connected to the port.
func (p *Port) ID() processor.ID {
	return p.id
}

func (p *Port) read(address uint32, width addrspace.Width) uint32 {
	r := p.view.Read(address, width)
	p.waits += r.Cycles
	return r.Value
}

func (p *Port) write(address uint32, width addrspace.Width, data uint32) bool {
	p.waits += p.view.WriteCycles(address, width)
	return p.view.Write(address, width, data)
}

// Read8 implements the bus.CPUBus interface.
func (p *Port) Read8(address uint32) uint8 {
	return uint8(p.read(address, addrspace.Width8))
}

// Read16 implements the bus.CPUBus interface.
func (p *Port) Read16(address uint32) uint16 {
	return uint16(p.read(address, addrspace.Width16))
}

// Read32 implements the bus.CPUBus interface.
func (p *Port) Read32(address uint32) uint32 {
	return p.read(address, addrspace.Width32)
}

// Write8 implements the bus.CPUBus interface.
func (p *Port) Write8(address uint32, data uint8) bool {
	return p.write(address, addrspace.Width8, uint32(data))
}

// Write16 implements the bus.CPUBus interface.
func (p *Port) Write16(address uint32, data uint16) bool {
	return p.write(address, addrspace.Width16, uint32(data))
}

// Write32 implements the bus.CPUBus interface.
func (p *Port) Write32(address uint32, data uint32) bool {
	return p.write(address, addrspace.Width32, data)
}

// Waits implements the bus.WaitStates interface.
func (p *Port) Waits() int {
	w := p.waits
	p.waits = 0
	return w
}

// Peek implements the bus.DebuggerBus interface.
func (p *Port) Peek(address uint32) (uint8, bool) {
	return p.view.Peek(address)
}
