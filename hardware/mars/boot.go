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
	"encoding/binary"

	"github.com/jetsetilly/gopher32x/hardware/mars/poll"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

// startup code of the generated master BIOS. it waits for the primary
// processor to finish its initialisation, writes "M_OK" to the comm port and
// jumps to the start address in the cartridge header.
var masterCode = []uint16{
	0xaffe, // bra <self>
	0x0009, // nop
	0xd004, // mov.l   @(_m_ok,pc), r0
	0xd105, // mov.l   @(_cnt,pc), r1
	0xd205, // mov.l   @(_start,pc), r2
	0x71ff, // add     #-1, r1
	0x4115, // cmp/pl  r1
	0x89fc, // bt      -2
	0xc208, // mov.l   r0, @(h'20,gbr)
	0x6822, // mov.l   @r2, r8
	0x482b, // jmp     @r8
	0x0009, // nop
	'M'<<8 | '_', 'O'<<8 | 'K',
	0x0001, 0x0000,
	0x2200, 0x03e0,
}

// startup code of the generated slave BIOS. it waits for "M_OK", writes
// "S_OK" to the comm port and jumps to the start address in the cartridge
// header.
var slaveCode = []uint16{
	0xaffe, // bra <self>
	0x0009, // nop
	0xd104, // mov.l   @(_m_ok,pc), r1
	0xd206, // mov.l   @(_start,pc), r2
	0xc608, // mov.l   @(h'20,gbr), r0
	0x3100, // cmp/eq  r0, r1
	0x8bfc, // bf      #-2
	0xd003, // mov.l   @(_s_ok,pc), r0
	0xc209, // mov.l   r0, @(h'24,gbr)
	0x6822, // mov.l   @r2, r8
	0x482b, // jmp     @r8
	0x0009, // nop
	'M'<<8 | '_', 'O'<<8 | 'K',
	'S'<<8 | '_', 'O'<<8 | 'K',
	0x2200, 0x03e4,
}

// values used when generating the SH2 BIOS
const (
	biosCodeOrigin = 0x200
	biosStart      = 0x204
	masterStack    = 0x6040000
	slaveStack     = 0x603f800
	bootGBR        = 0x20004000
)

// initial data load limits
const maxIDLSize = sdramSize

// generate the SH2 BIOS. the exception vectors all point to the trap at the
// start of the code
func generateSH2BIOS(rom []byte, code []uint16, stack uint32) {
	for i := range 128 {
		binary.BigEndian.PutUint32(rom[i*4:], biosCodeOrigin)
	}
	for i, w := range code {
		binary.BigEndian.PutUint16(rom[biosCodeOrigin+i*2:], w)
	}

	// power on and manual reset vectors
	binary.BigEndian.PutUint32(rom[0:], biosStart)
	binary.BigEndian.PutUint32(rom[4:], stack)
	binary.BigEndian.PutUint32(rom[8:], biosStart)
	binary.BigEndian.PutUint32(rom[12:], stack)
}

// fill the ROM page and the SH2 BIOS ROMs
func (m *Mars) prepareBIOS() {
	st := m.state

	if m.bios.Primary != nil {
		logger.Log(m.env, LogTag, "using supplied primary BIOS")
		copy(st.ROMPage[:primaryBIOSSize], m.bios.Primary)
	} else {
		clear(st.ROMPage[:primaryBIOSSize])

		// exception vectors point into the jump table of the unbanked ROM
		for i := 1; i < 0xc0/4; i++ {
			binary.BigEndian.PutUint32(st.ROMPage[i*4:], unbankedOrigin+0x200+uint32(i-1)*6)
		}

		// nop fill and return
		for i := 0xc0; i < primaryBIOSSize; i += 2 {
			binary.BigEndian.PutUint16(st.ROMPage[i:], 0x4e71)
		}
		binary.BigEndian.PutUint16(st.ROMPage[0xfe:], 0x4e75)
	}

	// the remainder of the ROM page is the start of the cartridge
	clear(st.ROMPage[primaryBIOSSize:])
	if w, ok := m.cart.Window(primaryBIOSSize, romPageSize-primaryBIOSSize); ok {
		copy(st.ROMPage[primaryBIOSSize:], w)
	}

	if m.bios.Master != nil {
		logger.Log(m.env, LogTag, "using supplied master BIOS")
		copy(st.MasterROM[:], m.bios.Master)
	} else {
		generateSH2BIOS(st.MasterROM[:], masterCode, masterStack)
	}

	if m.bios.Slave != nil {
		logger.Log(m.env, LogTag, "using supplied slave BIOS")
		copy(st.SlaveROM[:], m.bios.Slave)
	} else {
		generateSH2BIOS(st.SlaveROM[:], slaveCode, slaveStack)
	}
}

// the adapter has been enabled
func (m *Mars) startup() {
	logger.Log(m.env, LogTag, "startup")

	st := m.state
	st.Started = true

	sys := &st.Regs.System[registers.AdapterCtrl/2]
	*sys |= registers.REN
	if !m.env.Prefs.PAL.Get().(bool) {
		st.Regs.VDP[registers.VDPMode/2] |= registers.NPAL
	}
	st.Regs.VDP[registers.VDPFBCtrl/2] |= registers.PEN
	st.Regs.SH2[registers.SH2Ctrl] = registers.SH2ADEN

	for i := range 2 {
		st.Regs.SetPeriph8(i, registers.PeriphSCISSR, 0x84)
	}

	m.prepareBIOS()
	st.DRAMBank = 1
	m.mapPrimaryEnabled()
	m.state.DirtyPalette = true
}

// reset the SH2 processors. if BIOS images have not been supplied the work
// of the BIOS is performed here
func (m *Mars) resetSH2s() {
	logger.Log(m.env, LogTag, "sh2 reset")

	st := m.state
	for i, sh2 := range m.sh2 {
		sh2.Reset()

		clear(st.Regs.Peripherals[i][:])
		st.Regs.SetPeriph8(i, registers.PeriphSCISSR, 0x84)

		m.detector(processor.SH2ID(i)).Undetect(poll.Registers)
	}

	if m.env.Prefs.HLE.Get().(bool) {
		if m.bios.Master == nil {
			m.bootMaster()
		}
		if m.bios.Slave == nil {
			m.setBootRegisters(processor.Slave, cartridge.HeaderSlaveVBR)
		}
	}

	now := m.primary.CyclesDone()
	st.Synced[0] = now
	st.Synced[1] = now
	st.PWMSynced = now
}

func (m *Mars) setBootRegisters(id processor.ID, vbrOffset int) {
	br, ok := m.sh2[id.SH2()].(processor.BootRegisters)
	if !ok {
		return
	}
	vbr, _ := m.cart.Read32(vbrOffset)
	br.SetGBR(bootGBR)
	br.SetVBR(vbr)
}

// perform the initial data load from the cartridge to SDRAM and set the
// master boot registers
func (m *Mars) bootMaster() {
	src, _ := m.cart.Read32(cartridge.HeaderIDLSource)
	dst, _ := m.cart.Read32(cartridge.HeaderIDLDestination)
	size, _ := m.cart.Read32(cartridge.HeaderIDLSize)
	src &^= 0xf0000000
	dst &^= 0xf0000000

	romSize := uint64(m.cart.Size())
	if uint64(size) > romSize || uint64(src)+uint64(size) > romSize ||
		size > maxIDLSize || uint64(dst)+uint64(size) > maxIDLSize ||
		src&3 != 0 || dst&3 != 0 {
		logger.Logf(m.env, AnomalyTag, "invalid initial data load: %08x->%08x %08x", src, dst, size)
	} else {
		copy(m.state.SDRAM[dst:dst+size], m.cart.Data()[src:src+size])
	}

	m.setBootRegisters(processor.Master, cartridge.HeaderMasterVBR)

	// checksum for the primary program
	csum, _ := m.cart.Read16(cartridge.HeaderChecksum)
	registers.SetWord(m.state.Regs.System[:], 0x28, csum)
}
