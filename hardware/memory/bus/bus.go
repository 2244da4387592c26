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

package bus

// CPUBus defines the operations for the memory system when accessed from one
// of the processors. Each processor has its own CPUBus because the address
// space of each processor is different.
//
// Write functions return true if the write may have raised an interrupt.
type CPUBus interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Read32(address uint32) uint32
	Write8(address uint32, data uint8) bool
	Write16(address uint32, data uint16) bool
	Write32(address uint32, data uint32) bool
}

// DebuggerBus defines the meta-operations for memory. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Peek never synchronises processors or
// affects poll detection.
type DebuggerBus interface {
	Peek(address uint32) (uint8, bool)
}

// WaitStates is implemented by buses that charge extra cycles for accesses to
// slow memory. Waits returns the cycles charged since the previous call.
type WaitStates interface {
	Waits() int
}
