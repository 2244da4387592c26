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
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

// raise an interrupt shared by both SH2s at the time of the primary processor
func (m *Mars) triggerIRQ(irq uint8) {
	m.SyncSH2s(m.primary.CyclesDone())
	m.state.Regs.IRQShared |= irq
	m.updateIRLs()
}

// SetBlanking is called by the driver at the start and the end of the
// vertical blank. The start of the blank applies any pending framebuffer
// change and raises the V interrupt.
func (m *Mars) SetBlanking(vblank bool) {
	st := m.state
	if !st.Started {
		return
	}
	fb := &st.Regs.VDP[registers.VDPFBCtrl/2]

	if !vblank {
		*fb &^= registers.VBLK | registers.PEN
		st.HintCounter = int(st.Regs.SH2[registers.SH2HCount])
		return
	}

	*fb |= registers.VBLK | registers.PEN

	if (*fb^st.PendingFB)&registers.FS != 0 {
		*fb = *fb&^registers.FS | st.PendingFB
		m.swapDRAM(int(st.PendingFB ^ 1))
		logger.Logf(m.env, LogTag, "VDP FS: %d (at vblank)", st.PendingFB)
	}

	m.triggerIRQ(registers.IRQVINT)

	// processors waiting for the blank
	m.detector(processor.Master).Undetect(poll.VDP)
	m.detector(processor.Slave).Undetect(poll.VDP)
}

// SetHBlank is called by the driver at the start and end of every horizontal
// blank. The H interrupt is raised when the line counter expires. The counter
// only runs during the vertical blank if the HEN bit is set.
func (m *Mars) SetHBlank(hblank bool) {
	st := m.state
	if !st.Started {
		return
	}
	fb := &st.Regs.VDP[registers.VDPFBCtrl/2]

	if !hblank {
		*fb &^= registers.HBLK
		return
	}
	*fb |= registers.HBLK

	if *fb&registers.VBLK != 0 && st.Regs.SH2[registers.SH2Ctrl]&registers.HEN == 0 {
		return
	}

	st.HintCounter--
	if st.HintCounter >= 0 {
		return
	}
	st.HintCounter = int(st.Regs.SH2[registers.SH2HCount])

	m.triggerIRQ(registers.IRQHINT)
}
