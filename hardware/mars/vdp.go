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
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

func (m *Mars) readVDP16(a uint32) uint16 {
	return m.state.Regs.VDP[(a&0x0e)/2]
}

func (m *Mars) writeVDP8(a uint32, d uint32) {
	a &= 0x0f
	st := m.state
	vdp := st.Regs.VDP[:]

	// a fill in progress is checked for between writes
	m.detector(processor.Master).ResetCount()

	switch a {
	case registers.VDPMode + 1:
		// priority is handled by the palette
		if (uint32(vdp[0])^d)&registers.PRI != 0 {
			st.DirtyPalette = true
		}
		vdp[0] = vdp[0]&registers.NPAL | uint16(d&0xff)

	case registers.VDPShift + 1:
		vdp[registers.VDPShift/2] = uint16(d & 1)

	case registers.VDPFillLen + 1:
		vdp[registers.VDPFillLen/2] = uint16(d & 0xff)

	case registers.VDPFBCtrl + 1:
		d &= 1
		st.PendingFB = uint16(d)

		// the framebuffer can only be changed immediately during blanking
		fb := &vdp[registers.VDPFBCtrl/2]
		if (*fb&registers.VBLK != 0 || vdp[0]&registers.Mx == 0) && (uint32(*fb)^d)&registers.FS != 0 {
			*fb ^= registers.FS
			m.swapDRAM(int(d ^ 1))
			logger.Logf(m.env, LogTag, "VDP FS: %d", *fb&registers.FS)
		}
	}
}

// write to a VDP register. the cycles value is the time of the write in
// primary cycles. a value of zero means that the write is from the primary
// processor and that the fill completes immediately
func (m *Mars) writeVDP16(a uint32, d uint32, cycles uint32) {
	a &= 0x0e
	st := m.state
	vdp := st.Regs.VDP[:]

	switch a {
	case registers.VDPFillStart:
		vdp[registers.VDPFillStart/2] = uint16(d)
		return

	case registers.VDPFillData:
		dram := st.DRAM[(vdp[registers.VDPFBCtrl/2]&registers.FS)^1][:]
		n := int(vdp[registers.VDPFillLen/2]) + 1

		// the fill wraps at 256 word boundaries
		w := vdp[registers.VDPFillStart/2]
		for range n {
			dram[uint32(w)*2] = uint8(d >> 8)
			dram[uint32(w)*2+1] = uint8(d)
			w = w&0xff00 | (w+1)&0x00ff
		}

		vdp[registers.VDPFillStart/2] = w
		vdp[registers.VDPFillData/2] = uint16(d)

		if cycles > 0 {
			vdp[registers.VDPFBCtrl/2] |= registers.NFEN
			m.schedule(EventFillEnd, cycles, n)
		}
		return
	}

	m.writeVDP8(a|1, d)
}
