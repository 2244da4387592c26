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
	"github.com/jetsetilly/gopher32x/hardware/mars/divu"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

// watchdog timer keys. the high byte of a 16-bit write selects the register
const (
	wdtKeyControl = 0xa500
	wdtKeyCounter = 0x5a00
)

// SCI bits
const (
	sciTransmitEnable = 0x20
	sciTDRE           = 0x80
	sciReceiveIRQ     = 0x50
)

// the other SH2 receives a byte when the transmitter is enabled or when the
// transmit data register is filled. returns true if an interrupt was raised
func (m *Mars) sciTransmit(a uint32, d uint32, idx int) bool {
	if !(a == registers.PeriphSCISCR && d&sciTransmitEnable != 0) &&
		!(a == registers.PeriphSCISSR && d&sciTDRE == 0) {
		return false
	}

	other := idx ^ 1
	regs := &m.state.Regs
	if regs.Periph8(other, registers.PeriphSCISCR)&sciReceiveIRQ != sciReceiveIRQ {
		return false
	}

	level := int(regs.Periph8(other, registers.PeriphIPRB) >> 4)
	vector := int(regs.Periph8(other, registers.PeriphVCRB) & 0x7f)
	logger.Logf(m.env, LogTag, "%s SCI receive irq (%d, %d)", processor.SH2ID(other), level, vector)

	sh2 := m.sh2[other]
	if oc, ok := sh2.(processor.OnChipInterrupts); ok {
		oc.OnChipInterrupt(level, vector)
	} else {
		sh2.RaiseInterrupt(level, vector)
	}
	return true
}

func (m *Mars) writePeriph8(a uint32, d uint32, idx int) bool {
	a &= registers.PeriphBlockLen - 1
	m.state.Regs.SetPeriph8(idx, a, uint8(d))
	return m.sciTransmit(a, d, idx)
}

func (m *Mars) writePeriph16(a uint32, d uint32, idx int) bool {
	a &= registers.PeriphBlockLen - 1
	regs := &m.state.Regs

	if a == registers.PeriphWDT {
		switch d & 0xff00 {
		case wdtKeyControl:
			regs.SetPeriph8(idx, registers.PeriphWDT, uint8(d))
		case wdtKeyCounter:
			regs.SetPeriph8(idx, registers.PeriphWDT+1, uint8(d))
		}
		return false
	}

	regs.SetPeriph16(idx, a, uint16(d))
	return false
}

func (m *Mars) writePeriph32(a uint32, d uint32, idx int) bool {
	a &= registers.PeriphBlockLen - 4
	st := m.state
	st.Regs.SetPeriph32(idx, a, d)

	switch a {
	case registers.PeriphDVDNT:
		divu.Divide32(&st.Regs, idx)
	case registers.PeriphDVDNTL:
		divu.Divide64(&st.Regs, idx)
	case registers.PeriphDMAOR, registers.PeriphCHCR0:
		// the FIFO feeds channel zero of the master only
		if idx == processor.Master.SH2() && st.DMAC.Enabled() {
			logger.Logf(m.env, LogTag, "sh2 dma programmed: %s", &st.DMAC)
			m.sh2[idx].EndTimeslice(sh2DMAEnd)
			if st.DMAC.Programmed() {
				m.runDMA()
			}
		}
	}

	return false
}
