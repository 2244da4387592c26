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

// the frame buffer occupies the first half of the DRAM slot. the second half
// is the overwrite area
const (
	dramMask      = dramSize - 1
	overwriteArea = 0x20000
)

// only non-zero bytes are written. this is true in both the frame buffer and
// the overwrite area
func (m *Mars) writeDRAM8(a uint32, d uint32) bool {
	if d&0xff != 0 {
		m.state.DRAM[m.state.DRAMBank][a&dramMask] = uint8(d)
	}
	return false
}

// bytes of zero are transparent in the overwrite area
func (m *Mars) writeDRAM16(a uint32, d uint32) bool {
	dram := m.state.DRAM[m.state.DRAMBank][:]
	o := a & dramMask &^ 1

	hi := uint8(d >> 8)
	lo := uint8(d)
	if a&overwriteArea == 0 {
		dram[o] = hi
		dram[o+1] = lo
		return false
	}

	if hi != 0 {
		dram[o] = hi
	}
	if lo != 0 {
		dram[o+1] = lo
	}
	return false
}
