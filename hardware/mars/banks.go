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

	"github.com/jetsetilly/gopher32x/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

// the banked cartridge window in the primary address space
const (
	bankOrigin = 0x900000
	bankMemtop = 0x9fffff
	bankSize   = 0x100000
	bankShift  = 20
)

// the storage size of the cartridge rounded up to the size of a primary
// address space slot
func (m *Mars) roundedCartSize() uint32 {
	span := addrspace.PrimaryLayout.Span
	return (uint32(m.cart.Size()) + span - 1) &^ (span - 1)
}

// map the 1MiB bank of cartridge storage into the banked window. the mapping
// is left unchanged if the bank is outside of the storage.
func (m *Mars) selectBank(b int) {
	bank := uint32(b) << bankShift
	if bank >= uint32(m.cart.Size()) {
		logger.Logf(m.env, AnomalyTag, "missing bank @ %06x", bank)
		return
	}

	size := min(m.roundedCartSize()-bank, bankSize)
	window, _ := m.cart.Window(int(bank), int(size))

	v := m.views[processor.Primary]
	v.Unmap(bankOrigin, bankMemtop)
	v.MapRead(bankOrigin, bankOrigin+size-1,
		addrspace.Memory(fmt.Sprintf("rom bank %d", b), window, bankOrigin, bankSize-1))

	logger.Logf(m.env, LogTag, "bank %06x-%06x -> %06x", bankOrigin, bankOrigin+size-1, bank)
}
