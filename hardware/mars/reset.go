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

// ResetAll is called by the driver when the reset button is pressed. The
// SH2s receive the VRES interrupt if the adapter has been enabled.
func (m *Mars) ResetAll() {
	if !m.state.Started {
		return
	}

	logger.Log(m.env, LogTag, "reset")

	m.triggerIRQ(registers.IRQVRES)
	m.detector(processor.Master).Undetect(poll.Registers)
	m.detector(processor.Slave).Undetect(poll.Registers)

	m.state.Flags &^= poll.PWMPending
	m.schedulePWM(m.primary.CyclesDone())
}

// OnStateRestored is called after the registers have been changed by
// something other than the processors. Mapping and flags that depend on the
// registers are derived again.
func (m *Mars) OnStateRestored() {
	st := m.state

	if st.Started {
		m.selectBank(int(st.Regs.System[registers.BankSet/2] & 7))
	}
	m.swapDRAM(int(st.Regs.VDP[registers.VDPFBCtrl/2]&registers.FS) ^ 1)

	for id := range processor.ID(len(st.Poll)) {
		m.detector(id).Undetect(poll.Registers)
	}
	st.Flags = 0

	// the restored comm values are taken as already seen by both sides. the
	// next access will synchronise according to the thresholds
	st.CommDirtyPrimary = 0
	st.CommDirtySH2 = 0

	st.DirtyPalette = true

	m.schedulePWM(st.PWMSynced)
}
