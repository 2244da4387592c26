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
	"math/bits"

	"github.com/jetsetilly/gopher32x/hardware/mars/poll"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/processor"
)

// InterruptLevel returns the interrupt level of the highest priority pending
// interrupt that has not been masked. The level is twice the bit index of the
// interrupt source. The VRES interrupt cannot be masked.
func InterruptLevel(pending uint8, mask uint8) int {
	irqs := uint(pending) & (uint(mask)<<3 | registers.IRQVRES)
	if irqs == 0 {
		return 0
	}
	return (bits.Len(irqs) - 1) * 2
}

// InterruptVector returns the vector number for the interrupt level.
func InterruptVector(level int) int {
	return 64 + level/2
}

// update the interrupt level of both SH2s. returns true if an interrupt is
// pending on either SH2
func (m *Mars) updateIRLs() bool {
	var raised bool

	regs := &m.state.Regs
	for i := range m.sh2 {
		level := InterruptLevel(regs.IRQShared|regs.IRQCPU[i], regs.IRQMask[i])
		if level > 0 {
			m.detector(processor.SH2ID(i)).Undetect(poll.Registers)
			raised = true
		}
		m.sh2[i].RaiseInterrupt(level, InterruptVector(level))
	}

	return raised
}
