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

// Package mars is the expansion bus of the 32X. It connects the primary
// processor to the two SH2 processors of the expansion and implements the
// registers shared by them.
//
// Every processor has its own address space, implemented by the addrspace
// package. Handlers installed in the address spaces interpret register
// accesses, run the DMA controller and detect processors that are polling a
// register.
//
// The SH2 processors are synchronised lazily with the primary processor. The
// SH2s are run forward, with SyncSH2s(), only when the primary processor
// accesses a register that an SH2 might have changed, or when an SH2 must see
// a change made by the primary processor. An SH2 that has been detected as
// polling a register is not run at all, its clock is moved forward without
// executing instructions.
//
// Before the adapter is enabled the primary processor sees only the system
// registers and the cartridge. Enabling the adapter with the ADEN bit maps
// the 32X memory into the address space of the primary processor.
//
// Bus activity never returns an error. Accesses that the hardware would not
// expect are logged with the AnomalyTag and then handled as well as possible.
package mars
