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
)

// areas of the SH2 chip select zero
func isCS0Reg(a uint32) bool {
	return a&0x3ff00 == 0x4000
}

func isCS0VDP(a uint32) bool {
	return a&0x3ff00 == 0x4100
}

func isCS0Palette(a uint32) bool {
	return a&0x3fe00 == 0x4200
}

// the SH2 has found the value it is waiting for has not changed
func (m *Mars) sh2Polling(id processor.ID) {
	m.sh2[id.SH2()].EndTimeslice(sh2PollEnd)
}

// the free running cycle count of the SH2
func (m *Mars) sh2Cycles(id processor.ID) uint32 {
	return m.sh2[id.SH2()].CyclesDone()
}

func (m *Mars) biosROM(id processor.ID) []byte {
	if id == processor.Master {
		return m.state.MasterROM[:]
	}
	return m.state.SlaveROM[:]
}

func (m *Mars) readCS016(a uint32, id processor.ID) uint32 {
	st := m.state

	switch {
	case isCS0Reg(a):
		return uint32(m.readSH2Reg16(a, id))

	case isCS0VDP(a):
		d := m.readVDP16(a)
		if m.detector(id).Detect(a, m.sh2Cycles(id), poll.VDP) {
			m.sh2Polling(id)
		}
		return uint32(d)
	}

	if rom := m.biosROM(id); a < uint32(len(rom)) {
		a &^= 1
		return uint32(rom[a])<<8 | uint32(rom[a+1])
	}

	if isCS0Palette(a) {
		return uint32(st.Regs.Palette[(a&0x1ff)/2])
	}

	return m.unmappedRead(id, addrspace.Width16, a)
}

func (m *Mars) readCS08(a uint32, id processor.ID) uint32 {
	if rom := m.biosROM(id); a < uint32(len(rom)) {
		return uint32(rom[a])
	}
	if isCS0Reg(a) || isCS0VDP(a) || isCS0Palette(a) {
		return byteOf(a, m.readCS016(a, id))
	}
	return m.unmappedRead(id, addrspace.Width8, a)
}

func (m *Mars) writeCS08(a uint32, d uint32, id processor.ID) bool {
	switch {
	case isCS0VDP(a):
		m.writeVDP8(a, d)
		return false
	case isCS0Reg(a):
		m.writeSH2Reg8(a, d, id)
		return true
	}
	return m.unmappedWrite(id, addrspace.Width8, a, d)
}

func (m *Mars) writeCS016(a uint32, d uint32, id processor.ID) bool {
	switch {
	case isCS0VDP(a):
		m.detector(id).ResetCount()
		m.writeVDP16(a, d, m.state.Synced[id.SH2()])
		return false
	case isCS0Palette(a):
		m.state.Regs.Palette[(a&0x1ff)/2] = uint16(d)
		m.state.DirtyPalette = true
		return false
	case isCS0Reg(a):
		m.writeSH2Reg16(a, d, id)
		return true
	}
	return m.unmappedWrite(id, addrspace.Width16, a, d)
}

// the system registers are mirrored every 64 bytes over the 256 byte area
func (m *Mars) readSH2Reg16(a uint32, id processor.ID) uint16 {
	a &= 0x3e
	st := m.state
	sys := st.Regs.System[:]

	switch a {
	case registers.AdapterCtrl:
		return sys[0]&registers.FM | st.Regs.SH2[registers.SH2Ctrl] | uint16(st.Regs.IRQMask[id.SH2()])

	case registers.BankSet:
		// the H count register is also used as a comm port
		if m.detector(id).Detect(a, m.sh2Cycles(id), poll.Registers) {
			m.sh2Polling(id)
		}
		return st.Regs.SH2[registers.SH2HCount]

	case registers.DREQLen:
		return sys[a/2]
	}

	switch {
	case a&0x38 == 0x08:
		return sys[a/2]

	case registers.IsComm(a):
		bit := commBit(a)
		if st.CommDirtyPrimary&bit != 0 {
			st.CommDirtyPrimary &^= bit
		} else if m.detector(id).Detect(a, m.sh2Cycles(id), poll.Registers) {
			m.sh2Polling(id)
		}
		return sys[a/2]

	case registers.IsPWM(a):
		m.detector(id).ResetCount()
		m.updatePWM(st.Synced[id.SH2()])
		return st.PWM.Read(a)
	}

	return 0
}

// an SH2 has written to a comm port
func (m *Mars) sh2CommWritten(a uint32, id processor.ID) {
	if m.detector(processor.Primary).Undetect(poll.Registers) {
		if h, ok := m.primary.(processor.Haltable); ok {
			h.SetHalt(false)
		}
	}
	m.detector(id.Other()).Undetect(poll.Registers)
	m.state.CommDirtySH2 |= commBit(a)
}

func (m *Mars) writeSH2Reg8(a uint32, d uint32, id processor.ID) {
	a &= 0x3f
	st := m.state
	sys := st.Regs.System[:]
	idx := id.SH2()

	switch a {
	case registers.AdapterCtrl:
		sys[0] = sys[0]&^registers.FM | uint16(d<<8)&registers.FM
		return

	case registers.AdapterCtrl + 1:
		st.Regs.IRQMask[idx] = uint8(d & 0x8f)
		st.Regs.SH2[registers.SH2Ctrl] = st.Regs.SH2[registers.SH2Ctrl]&^registers.HEN | uint16(d)&registers.HEN
		if d&1 != 0 {
			m.schedulePWM(st.Synced[idx])
		}
		m.updateIRLs()
		return

	case registers.BankSet + 1:
		st.Regs.SH2[registers.SH2HCount] = uint16(d & 0xff)
		m.detector(id.Other()).Undetect(poll.Registers)
		return
	}

	if registers.IsComm(a) {
		if registers.Byte(sys, a) == uint8(d) {
			return
		}
		registers.SetByte(sys, a, uint8(d))
		m.sh2CommWritten(a, id)
	}
}

func (m *Mars) writeSH2Reg16(a uint32, d uint32, id processor.ID) {
	a &= 0x3e
	st := m.state
	sys := st.Regs.System[:]
	idx := id.SH2()

	switch {
	case registers.IsComm(a):
		if sys[a/2] == uint16(d) {
			return
		}
		sys[a/2] = uint16(d)
		m.sh2CommWritten(a, id)
		return

	case registers.IsPWM(a):
		m.updatePWM(st.Synced[idx])
		st.PWM.Write(a, uint16(d))
		return
	}

	switch a {
	case registers.AdapterCtrl:
		sys[0] = sys[0]&^registers.FM | uint16(d)&registers.FM
		return
	case registers.VRESClear:
		st.Regs.IRQShared &^= registers.IRQVRES
	case registers.VINTClear:
		st.Regs.IRQShared &^= registers.IRQVINT
	case registers.HINTClear:
		st.Regs.IRQShared &^= registers.IRQHINT
	case registers.CMDClear:
		st.Regs.IRQCPU[idx] &^= registers.IRQCMD
	case registers.PWMClear:
		st.Regs.IRQShared &^= registers.IRQPWM
		if st.Flags&poll.PWMPending == 0 {
			m.schedulePWM(st.Synced[idx])
		}
	default:
		m.writeSH2Reg8(a|1, d, id)
		return
	}

	m.updateIRLs()
}
