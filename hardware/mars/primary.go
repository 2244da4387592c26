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
	"github.com/jetsetilly/gopher32x/hardware/mars/poll"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

// the ID string at $a130ec
const marsID = "MARS"

// end timeslice values used when a processor is found to be polling
const (
	primaryPollEnd = 16
	sh2PollEnd     = 8
	sh2DMAEnd      = 16
)

func isSystemReg(a uint32) bool {
	return a&0xffc0 == 0x5100
}

func isSystemPage(a uint32) bool {
	return a&0xfc00 == 0x5000
}

func isVDP(a uint32) bool {
	return a&0xfff0 == 0x5180
}

func isPalette(a uint32) bool {
	return a&0xfe00 == 0x5200
}

func isMarsID(a uint32) bool {
	return a&0xfffc == 0x30ec
}

// convert a 16-bit value to the byte for the address
func byteOf(a uint32, d uint32) uint32 {
	if a&1 == 1 {
		return d & 0xff
	}
	return d >> 8
}

func (m *Mars) unmappedRead(id processor.ID, width addrspace.Width, a uint32) uint32 {
	logger.Logf(m.env, addrspace.UnmappedTag, "%s r%d [%08x]", id, width, a)
	return 0
}

func (m *Mars) unmappedWrite(id processor.ID, width addrspace.Width, a uint32, d uint32) bool {
	logger.Logf(m.env, addrspace.UnmappedTag, "%s w%d [%08x] %x", id, width, a, d)
	return false
}

// system page before the adapter has been enabled. the registers are always
// readable
func (m *Mars) readDisabled8(a uint32) uint32 {
	if isSystemReg(a) {
		return uint32(registers.Byte(m.state.Regs.System[:], a&0x3f))
	}
	if isMarsID(a) {
		return uint32(marsID[a&3])
	}
	return m.unmappedRead(processor.Primary, addrspace.Width8, a)
}

func (m *Mars) readDisabled16(a uint32) uint32 {
	if isSystemReg(a) {
		return uint32(registers.Word(m.state.Regs.System[:], a&0x3e))
	}
	if isMarsID(a) {
		a &= 2
		return uint32(marsID[a])<<8 | uint32(marsID[a+1])
	}
	return m.unmappedRead(processor.Primary, addrspace.Width16, a)
}

// enable the adapter. the nRES bit is cleared so that the forwarded write
// resets the SH2s if it sets the bit
func (m *Mars) enable() {
	m.startup()
	sys := &m.state.Regs.System[registers.AdapterCtrl/2]
	*sys &^= registers.NRES
	*sys |= registers.ADEN
}

func (m *Mars) writeDisabled8(a uint32, d uint32) bool {
	if !isSystemReg(a) {
		return m.unmappedWrite(processor.Primary, addrspace.Width8, a, d)
	}

	a &= 0x3f
	sys := m.state.Regs.System[:]

	if a == 1 {
		if (d^uint32(sys[0]))&d&registers.ADEN != 0 {
			m.enable()
			m.writeReg8(a, d)
		}
		return false
	}

	// only the comm ports are writable
	if registers.IsComm(a) {
		registers.SetByte(sys, a, uint8(d))
		return false
	}

	logger.Logf(m.env, AnomalyTag, "w8 [%02x] %02x with adapter disabled", a, d)
	return false
}

func (m *Mars) writeDisabled16(a uint32, d uint32) bool {
	if !isSystemReg(a) {
		return m.unmappedWrite(processor.Primary, addrspace.Width16, a, d)
	}

	a &= 0x3e
	sys := m.state.Regs.System[:]

	if a == 0 {
		if (d^uint32(sys[0]))&d&registers.ADEN != 0 {
			m.enable()
			m.writeReg16(a, d)
		}
		return false
	}

	if registers.IsComm(a) {
		registers.SetWord(sys, a, uint16(d))
		return false
	}

	logger.Logf(m.env, AnomalyTag, "w16 [%02x] %04x with adapter disabled", a, d)
	return false
}

// system page after the adapter has been enabled
func (m *Mars) readSystem16(a uint32) uint32 {
	switch {
	case isSystemReg(a):
		return uint32(m.readReg16(a))
	case isMarsID(a):
		return m.readDisabled16(a)
	case !isSystemPage(a):
		return m.unmappedRead(processor.Primary, addrspace.Width16, a)
	case isVDP(a):
		return uint32(m.readVDP16(a))
	case isPalette(a):
		return uint32(m.state.Regs.Palette[(a&0x1ff)/2])
	}
	return m.unmappedRead(processor.Primary, addrspace.Width16, a)
}

func (m *Mars) readSystem8(a uint32) uint32 {
	switch {
	case isSystemReg(a):
		return byteOf(a, uint32(m.readReg16(a)))
	case isMarsID(a):
		return uint32(marsID[a&3])
	case !isSystemPage(a):
		return m.unmappedRead(processor.Primary, addrspace.Width8, a)
	case isVDP(a):
		return byteOf(a, uint32(m.readVDP16(a)))
	case isPalette(a):
		return byteOf(a, uint32(m.state.Regs.Palette[(a&0x1ff)/2]))
	}
	return m.unmappedRead(processor.Primary, addrspace.Width8, a)
}

func (m *Mars) writeSystem8(a uint32, d uint32) bool {
	switch {
	case isSystemReg(a):
		m.writeReg8(a, d)
	case !isSystemPage(a):
		return m.unmappedWrite(processor.Primary, addrspace.Width8, a, d)
	case isVDP(a):
		m.writeVDP8(a, d)
	case isPalette(a):
		logger.Logf(m.env, AnomalyTag, "primary palette w8 [%06x] %02x", a, d)
		registers.SetByte(m.state.Regs.Palette[:], a&0x1ff, uint8(d))
		m.state.DirtyPalette = true
	default:
		return m.unmappedWrite(processor.Primary, addrspace.Width8, a, d)
	}
	return false
}

func (m *Mars) writeSystem16(a uint32, d uint32) bool {
	switch {
	case isSystemReg(a):
		m.writeReg16(a, d)
	case !isSystemPage(a):
		return m.unmappedWrite(processor.Primary, addrspace.Width16, a, d)
	case isVDP(a):
		m.writeVDP16(a, d, 0)
	case isPalette(a):
		m.state.Regs.Palette[(a&0x1ff)/2] = uint16(d)
		m.state.DirtyPalette = true
	default:
		return m.unmappedWrite(processor.Primary, addrspace.Width16, a, d)
	}
	return false
}

// the hint vector in the ROM page is writable
func (m *Mars) writeHint8(a uint32, d uint32) bool {
	if a&0xfffc == 0x0070 {
		m.state.ROMPage[a&0xffff] = uint8(d)
		return false
	}
	return m.unmappedWrite(processor.Primary, addrspace.Width8, a, d)
}

func (m *Mars) writeHint16(a uint32, d uint32) bool {
	if a&0xfffc == 0x0070 {
		a &= 0xfffe
		m.state.ROMPage[a] = uint8(d >> 8)
		m.state.ROMPage[a+1] = uint8(d)
		return false
	}
	return m.unmappedWrite(processor.Primary, addrspace.Width16, a, d)
}

// comm port bit for the byte offset
func commBit(a uint32) uint8 {
	return 1 << ((a & 0x0f) / 2)
}

// the primary processor is polling. it is stopped until an SH2 writes to a
// comm port
func (m *Mars) primaryPolling() {
	if h, ok := m.primary.(processor.Haltable); ok {
		h.SetHalt(true)
	}
	m.primary.EndTimeslice(primaryPollEnd)
}

func (m *Mars) readReg16(a uint32) uint16 {
	a &= 0x3e
	st := m.state
	prefs := m.env.Prefs

	switch {
	case registers.IsComm(a):
		now := m.primary.CyclesDone()
		m.syncIfBehind(now, prefInt(&prefs.SyncCommRead))

		bit := commBit(a)
		if st.CommDirtySH2&bit != 0 {
			st.CommDirtySH2 &^= bit
		} else if m.detector(processor.Primary).Detect(a, now, poll.Registers) {
			m.primaryPolling()
		}
		return registers.Word(st.Regs.System[:], a)

	case a == registers.IntCtrl:
		now := m.primary.CyclesDone()
		m.syncIfBehind(now, prefInt(&prefs.SyncIntRead))
		return uint16((st.Regs.IRQCPU[0]&registers.IRQCMD)>>4 | (st.Regs.IRQCPU[1]&registers.IRQCMD)>>3)

	case registers.IsPWM(a):
		m.updatePWM(m.primary.CyclesDone())
		return st.PWM.Read(a)
	}

	return registers.Word(st.Regs.System[:], a)
}

// write to a comm port. the write is ignored if the value is unchanged
func (m *Mars) writeComm(a uint32, d uint32, width addrspace.Width) {
	st := m.state
	sys := st.Regs.System[:]

	if width == addrspace.Width8 {
		if registers.Byte(sys, a) == uint8(d) {
			return
		}
	} else if registers.Word(sys, a) == uint16(d) {
		return
	}

	now := m.primary.CyclesDone()

	// the previous write has not been seen by an SH2
	bit := commBit(a)
	if st.CommDirtyPrimary&bit != 0 {
		m.SyncSH2s(now)
	}

	if width == addrspace.Width8 {
		registers.SetByte(sys, a, uint8(d))
	} else {
		registers.SetWord(sys, a, uint16(d))
	}

	m.detector(processor.Master).Undetect(poll.Registers)
	m.detector(processor.Slave).Undetect(poll.Registers)
	st.CommDirtyPrimary |= bit

	m.syncIfBehind(now, prefInt(&m.env.Prefs.SyncCommWrite))
}

func (m *Mars) writeReg8(a uint32, d uint32) {
	a &= 0x3f
	st := m.state
	sys := st.Regs.System[:]

	m.detector(processor.Primary).ResetCount()

	switch a {
	case 0:
		sys[0] = sys[0]&^registers.FM | uint16(d<<8)&registers.FM
		return

	case 1:
		if (d^uint32(sys[0]))&d&registers.NRES != 0 {
			m.resetSH2s()
		}
		sys[0] = sys[0]&^registers.NRES | uint16(d)&registers.NRES
		return

	case 3:
		for i := range 2 {
			if d&(1<<i) != 0 && st.Regs.IRQCPU[i]&registers.IRQCMD == 0 {
				m.SyncSH2s(m.primary.CyclesDone())
				st.Regs.IRQCPU[i] |= registers.IRQCMD
				m.updateIRLs()
			}
		}
		return

	case 5:
		d &= 7
		if uint32(sys[registers.BankSet/2]) != d {
			sys[registers.BankSet/2] = uint16(d)
			m.selectBank(int(d))
		}
		return

	case 7:
		r := &sys[registers.DREQCtrl/2]
		*r = *r&registers.FULL | uint16(d)&(registers.S68|registers.DMA|registers.RV)
		return

	case 0x1b:
		sys[0x1a/2] = uint16(d & 0xff)
		return
	}

	switch {
	case registers.IsComm(a):
		m.writeComm(a, d, addrspace.Width8)
	case registers.IsPWM(a):
		m.updatePWM(m.primary.CyclesDone())
		st.PWM.Write8(a, uint8(d))
	}
}

func (m *Mars) writeReg16(a uint32, d uint32) {
	a &= 0x3e
	st := m.state
	sys := st.Regs.System[:]

	m.detector(processor.Primary).ResetCount()

	switch a {
	case 0:
		if (d^uint32(sys[0]))&d&registers.NRES != 0 {
			m.resetSH2s()
		}
		sys[0] = sys[0]&^(registers.FM|registers.NRES) | uint16(d)&(registers.FM|registers.NRES)
		return

	case registers.DREQLen:
		sys[a/2] = uint16(d) &^ 3
		return

	case registers.FIFO:
		m.pushFIFO(uint16(d))
		return
	}

	switch {
	case a&0x38 == 0x08:
		sys[a/2] = uint16(d)
	case registers.IsComm(a):
		m.writeComm(a, d, addrspace.Width16)
	case registers.IsPWM(a):
		m.updatePWM(m.primary.CyclesDone())
		st.PWM.Write(a, uint16(d))
	default:
		m.writeReg8(a+1, d&0xff)
	}
}

// stage a word for the DMA controller
func (m *Mars) pushFIFO(d uint16) {
	st := m.state
	ctrl := &st.Regs.System[registers.DREQCtrl/2]

	if *ctrl&registers.S68 == 0 {
		logger.Logf(m.env, AnomalyTag, "FIFO w16 %04x without 68S", d)
		return
	}

	if !st.DMAC.FIFO.Push(d) {
		logger.Logf(m.env, AnomalyTag, "FIFO w16 %04x while full", d)
		return
	}

	if st.DMAC.FIFO.Ready() && st.DMAC.Enabled() {
		m.runDMA()
	}

	if st.DMAC.FIFO.Full() {
		*ctrl |= registers.FULL
	}
}

// transfer staged words to the SH2 address space
func (m *Mars) runDMA() {
	st := m.state
	sys := st.Regs.System[:]

	logger.Logf(m.env, LogTag, "dma %s", &st.DMAC)

	master := m.views[processor.Master]
	r := st.DMAC.Transfer(&sys[registers.DREQLen/2], func(a uint32, d uint16) {
		master.Write(a, addrspace.Width16, uint32(d))
	})

	if r.Mismatch {
		logger.Logf(m.env, AnomalyTag, "tcr0 and dreq len differ: %d != %d", r.TCR, r.DREQLength)
	}

	if !st.DMAC.FIFO.Full() {
		sys[registers.DREQCtrl/2] &^= registers.FULL
	}
	if sys[registers.DREQLen/2] == 0 {
		sys[registers.DREQCtrl/2] &^= registers.S68
	}
	if r.Complete {
		m.detector(processor.Master).Undetect(poll.Registers)
	}
}
