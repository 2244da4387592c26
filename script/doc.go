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

// Package script runs Starlark scripts against the expansion bus. It takes
// the place of an interactive debugger: scripts drive the bus from any of the
// three processors, advance the cycle counts of the stub processors and
// print the results.
//
// The following builtins are available to a script:
//
//	read8(addr, cpu)          read16(addr, cpu)          read32(addr, cpu)
//	write8(addr, value, cpu)  write16(addr, value, cpu)  write32(addr, value, cpu)
//	advance(cpu, cycles)      cycles(cpu)
//	reset()                   blank(bool)                hblank(bool)
//	peek(addr, cpu)           log(msg)                   digest()
//
// The cpu argument is one of the predeclared constants PRIMARY, MASTER or
// SLAVE. The cpu argument of the read, write and peek functions is optional
// and defaults to PRIMARY. The peek function reads memory without side
// effects and returns None for addresses that are not backed by memory.
//
// The digest function returns the SHA-1 digest of the registers and memory
// of the bus, as a string.
package script
