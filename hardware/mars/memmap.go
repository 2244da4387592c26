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

	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher32x/hardware/processor"
)

// primary address space
const (
	cartOrigin     = 0x000000
	cartMemtop     = 0x3fffff
	romPageOrigin  = 0x000000
	romPageMemtop  = 0x00ffff
	dramOrigin     = 0x840000
	dramMemtop     = 0x85ffff
	unbankedOrigin = 0x880000
	unbankedSize   = 0x80000
	systemOrigin   = 0xa10000
	systemMemtop   = 0xa1ffff
)

// SH2 read slots
const (
	slotReadCS0       = 0x00
	slotReadROM       = 0x01
	slotReadDRAM      = 0x02
	slotReadSDRAM     = 0x03
	slotReadThrough   = 0x04
	slotReadDataArray = 0x18
	slotReadPeriph    = 0x1f
)

// SH2 write slots
const (
	slotWriteCS0       = 0x00
	slotWriteDRAM      = 0x02
	slotWriteSDRAM     = 0x03
	slotWriteThrough   = 0x10
	slotWritePurge     = 0x20
	slotWritePurgeEnd  = 0x2f
	slotWriteDataArray = 0x60
	slotWritePeriph    = 0x7f
)

// the on-chip peripherals as seen by the SH2
const periphOrigin = 0xfffffe00

// wait states of an SH2 access by area. the on-chip areas have none
const (
	waitCS0   = 4
	waitROM   = 6
	waitDRAM  = 5
	waitSDRAM = 2
)

// map the primary address space for when the adapter is disabled. only the
// cartridge and the system registers are visible.
func (m *Mars) mapPrimaryDisabled() {
	v := m.views[processor.Primary]
	v.Unmap(0, 0xffffff)

	v.MapRead(cartOrigin, cartMemtop, addrspace.Memory("cartridge", m.cart.Data(), cartOrigin, cartMemtop))

	v.Read8.Map(systemOrigin, systemMemtop, addrspace.ReadHandler("system (disabled)", m.readDisabled8))
	v.Read16.Map(systemOrigin, systemMemtop, addrspace.ReadHandler("system (disabled)", m.readDisabled16))
	v.Write8.Map(systemOrigin, systemMemtop, addrspace.WriteHandler("system (disabled)", m.writeDisabled8))
	v.Write16.Map(systemOrigin, systemMemtop, addrspace.WriteHandler("system (disabled)", m.writeDisabled16))
}

// map the primary address space for when the adapter is enabled
func (m *Mars) mapPrimaryEnabled() {
	m.mapPrimaryDisabled()

	v := m.views[processor.Primary]

	// the first page of the cartridge is replaced by the ROM page. the hint
	// vector can be written
	v.MapRead(romPageOrigin, romPageMemtop, addrspace.Memory("rom page", m.state.ROMPage[:], romPageOrigin, romPageMemtop))
	v.Write8.Map(romPageOrigin, romPageMemtop, addrspace.WriteHandler("hint vector", m.writeHint8))
	v.Write16.Map(romPageOrigin, romPageMemtop, addrspace.WriteHandler("hint vector", m.writeHint16))

	// unbanked cartridge
	size := min(m.roundedCartSize(), unbankedSize)
	v.MapRead(unbankedOrigin, unbankedOrigin+size-1, addrspace.Memory("rom", m.cart.Data(), unbankedOrigin, unbankedSize-1))

	v.Read8.Map(systemOrigin, systemMemtop, addrspace.ReadHandler("system", m.readSystem8))
	v.Read16.Map(systemOrigin, systemMemtop, addrspace.ReadHandler("system", m.readSystem16))
	v.Write8.Map(systemOrigin, systemMemtop, addrspace.WriteHandler("system", m.writeSystem8))
	v.Write16.Map(systemOrigin, systemMemtop, addrspace.WriteHandler("system", m.writeSystem16))

	m.selectBank(int(m.state.Regs.System[registers.BankSet/2] & 7))
	m.swapDRAM(m.state.DRAMBank)
}

// map the address space of the SH2
func (m *Mars) mapSH2(id processor.ID) {
	v := m.views[id]
	idx := id.SH2()

	setRead := func(e8 addrspace.Entry, e16 addrspace.Entry, slots ...int) {
		v.Read8.SetSlot(e8, slots...)
		v.Read16.SetSlot(e16, slots...)
	}
	setWrite := func(e8 addrspace.Entry, e16 addrspace.Entry, slots ...int) {
		v.Write8.SetSlot(e8, slots...)
		v.Write16.SetSlot(e16, slots...)
	}

	// the through slots are the cache-through mirrors
	setRead(addrspace.ReadHandler("cs0", func(a uint32) uint32 { return m.readCS08(a, id) }).WithCycles(waitCS0),
		addrspace.ReadHandler("cs0", func(a uint32) uint32 { return m.readCS016(a, id) }).WithCycles(waitCS0),
		slotReadCS0, slotReadCS0|slotReadThrough)
	setWrite(addrspace.WriteHandler("cs0", func(a uint32, d uint32) bool { return m.writeCS08(a, d, id) }).WithCycles(waitCS0),
		addrspace.WriteHandler("cs0", func(a uint32, d uint32) bool { return m.writeCS016(a, d, id) }).WithCycles(waitCS0),
		slotWriteCS0, slotWriteCS0|slotWriteThrough)

	rom := addrspace.Memory("rom", m.cart.Data(), 0, 0x3fffff).WithCycles(waitROM)
	setRead(rom, rom, slotReadROM, slotReadROM|slotReadThrough)

	sdram := addrspace.Memory("sdram", m.state.SDRAM[:], 0, sdramSize-1).WithCycles(waitSDRAM)
	setRead(sdram, sdram, slotReadSDRAM, slotReadSDRAM|slotReadThrough)
	setWrite(sdram, sdram, slotWriteSDRAM, slotWriteSDRAM|slotWriteThrough)

	da := addrspace.Memory("data array", m.state.DataArray[idx][:], 0, dataArraySize-1)
	setRead(da, da, slotReadDataArray)
	setWrite(da, da, slotWriteDataArray)

	ignore := addrspace.WriteHandler("purge", func(_ uint32, _ uint32) bool { return false })
	for s := slotWritePurge; s <= slotWritePurgeEnd; s++ {
		setWrite(ignore, ignore, s)
	}

	setRead(addrspace.ReadHandler("peripherals", func(a uint32) uint32 { return uint32(m.state.Regs.Periph8(idx, a)) }),
		addrspace.ReadHandler("peripherals", func(a uint32) uint32 { return uint32(m.state.Regs.Periph16(idx, a)) }),
		slotReadPeriph)
	setWrite(addrspace.WriteHandler("peripherals", func(a uint32, d uint32) bool { return m.writePeriph8(a, d, idx) }),
		addrspace.WriteHandler("peripherals", func(a uint32, d uint32) bool { return m.writePeriph16(a, d, idx) }),
		slotWritePeriph)
	v.SetNative32(periphOrigin,
		func(a uint32) uint32 { return m.state.Regs.Periph32(idx, a) },
		func(a uint32, d uint32) bool { return m.writePeriph32(a, d, idx) })

	m.mapSH2DRAM(id)
}

// map the current DRAM bank into the SH2 address space
func (m *Mars) mapSH2DRAM(id processor.ID) {
	v := m.views[id]
	b := m.state.DRAMBank
	name := fmt.Sprintf("dram %d", b)

	// reads of the overwrite area see the same memory
	dram := addrspace.Memory(name, m.state.DRAM[b][:], 0, dramSize-1).WithCycles(waitDRAM)
	v.Read8.SetSlot(dram, slotReadDRAM, slotReadDRAM|slotReadThrough)
	v.Read16.SetSlot(dram, slotReadDRAM, slotReadDRAM|slotReadThrough)

	w8 := addrspace.WriteHandler(name, m.writeDRAM8).WithCycles(waitDRAM)
	w16 := addrspace.WriteHandler(name, m.writeDRAM16).WithCycles(waitDRAM)
	v.Write8.SetSlot(w8, slotWriteDRAM, slotWriteDRAM|slotWriteThrough)
	v.Write16.SetSlot(w16, slotWriteDRAM, slotWriteDRAM|slotWriteThrough)
}

// make the DRAM bank visible to all processors
func (m *Mars) swapDRAM(b int) {
	m.state.DRAMBank = b & 1

	if m.state.Started {
		dram := addrspace.Memory(fmt.Sprintf("dram %d", m.state.DRAMBank), m.state.DRAM[m.state.DRAMBank][:], dramOrigin, dramSize-1)
		v := m.views[processor.Primary]
		v.MapRead(dramOrigin, dramMemtop, dram)
		v.MapWrite(dramOrigin, dramMemtop, dram)
	}

	m.mapSH2DRAM(processor.Master)
	m.mapSH2DRAM(processor.Slave)
}
