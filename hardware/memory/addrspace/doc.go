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

// Package addrspace implements the dispatch tables that map a processor's
// address space onto memory regions and register handlers.
//
// Each processor has a View. A View holds one Table for every combination of
// access width (8 or 16 bit) and direction (read or write). A Table is a fixed
// slice of Entry values indexed by a function of the address's high bits so
// that decoding an address is O(1).
//
// An Entry is either a memory region or a handler. The Kind field
// distinguishes the two. Memory regions are big-endian byte slices. An
// address is translated into an offset in the region with:
//
//	offset := (address - entry.Base) & entry.Mask
//
// 32-bit accesses are synthesised from two 16-bit accesses, high half first,
// unless a native 32-bit handler has been installed for the slot.
//
// Every slot of a new Table is unmapped. An unmapped slot returns zero for
// reads and drops writes. In both cases the access is logged.
package addrspace
